// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

import (
	"math"
	"sync"

	"code.hybscloud.com/atomix"
)

// Queue is a bounded, in-process, multi-producer/multi-consumer
// broadcast ring buffer: every Reader created during setup observes the
// complete stream of items published by every Writer, in publication
// (claim) order. Queue is not a work-distribution queue — items are
// never partitioned across readers.
//
// Queue owns the slot storage and the claim counter. Reader and Writer
// endpoints hold a back-reference to their Queue and must be created
// during setup, before any Write or Read call; see CreateReader and
// CreateWriter.
type Queue[T any] struct {
	ring         *ring[T]
	nextSequence atomix.Int64
	sealed       atomix.Bool

	setupMu sync.Mutex
	readers []*Reader[T]
	writers []*Writer[T]
}

// NewQueue constructs a Queue with the given capacity, which must be a
// positive power of two. NewQueue panics if capacity is invalid,
// mirroring the compile-time static_assert of the C++ implementation
// this package is modeled on; use NewQueueSafe for a checked
// constructor.
func NewQueue[T any](capacity int) *Queue[T] {
	q, err := NewQueueSafe[T](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

// NewQueueSafe is the checked counterpart to NewQueue: it returns
// ErrInvalidCapacity instead of panicking when capacity is not a
// positive power of two.
func NewQueueSafe[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 || !IsPowerOfTwo(uint64(capacity)) {
		return nil, ErrInvalidCapacity
	}
	return &Queue[T]{ring: newRing[T](uint64(capacity))}, nil
}

// Capacity returns the number of slots in the queue.
func (q *Queue[T]) Capacity() int {
	return len(q.ring.buffer)
}

// CreateReader appends a new reader to the queue and returns it.
//
// CreateReader must be called only during setup, before any Write or
// Read call has occurred on this queue; once the queue has sealed setup
// it returns ErrSetupClosed instead. It is safe to call CreateReader
// concurrently with other setup calls on the same queue.
func (q *Queue[T]) CreateReader(opts ...EndpointOption) (*Reader[T], error) {
	cfg := newEndpointConfig(opts)

	q.setupMu.Lock()
	defer q.setupMu.Unlock()
	if q.sealed.LoadAcquire() {
		return nil, ErrSetupClosed
	}
	r := &Reader[T]{queue: q, wait: cfg.wait}
	r.consumerSequence.StoreRelaxed(initialSequence)
	q.readers = append(q.readers, r)
	return r, nil
}

// CreateWriter appends a new writer to the queue and returns it.
//
// CreateWriter must be called only during setup, before any Write or
// Read call has occurred on this queue; once the queue has sealed setup
// it returns ErrSetupClosed instead. It is safe to call CreateWriter
// concurrently with other setup calls on the same queue.
func (q *Queue[T]) CreateWriter(opts ...EndpointOption) (*Writer[T], error) {
	cfg := newEndpointConfig(opts)

	q.setupMu.Lock()
	defer q.setupMu.Unlock()
	if q.sealed.LoadAcquire() {
		return nil, ErrSetupClosed
	}
	w := &Writer[T]{queue: q, wait: cfg.wait, cachedMinConsumerSequence: initialSequence}
	q.writers = append(q.writers, w)
	return w, nil
}

// minConsumerSequence returns the minimum consumer sequence across all
// readers, using acquire loads. If there are no readers, it returns the
// maximum representable sequence so writers never back-pressure.
//
// minConsumerSequence is called only from writer back-pressure and reads
// q.readers without the setup mutex: by contract no CreateReader call
// races with a Write (section 4.2 of the design this package implements
// forbids endpoint creation once traffic has begun), so the hot path
// never touches the setup lock.
func (q *Queue[T]) minConsumerSequence() int64 {
	if len(q.readers) == 0 {
		return math.MaxInt64
	}
	min := int64(math.MaxInt64)
	for _, r := range q.readers {
		if s := r.consumerSequence.LoadAcquire(); s < min {
			min = s
		}
	}
	return min
}

// seal closes setup. It is idempotent and called once, by the writer
// that claims sequence 0.
func (q *Queue[T]) seal() {
	q.sealed.StoreRelease(true)
}
