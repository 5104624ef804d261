// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

import "code.hybscloud.com/atomix"

// Reader tracks one consumer's position in a Queue's broadcast stream.
// A Reader must be driven by exactly one goroutine at a time. Multiple
// Readers on the same Queue observe the identical stream independently:
// reader A may run arbitrarily far ahead of reader B, up to Capacity
// items, after which A's writers stall on back-pressure.
//
// A Reader that exists but is never driven still counts toward
// back-pressure: writers cannot advance past it. This is a consequence
// of broadcast semantics, not a bug.
type Reader[T any] struct {
	_                pad
	queue            *Queue[T]
	consumerSequence atomix.Int64
	wait             waiter
	_                pad
}

// Read consumes and returns the next item in the broadcast stream,
// busy-waiting until the writer that owns it has published.
func (r *Reader[T]) Read() T {
	next := r.nextSequence()
	i := r.queue.ring.indexFor(next)
	r.waitForData(i, next)
	value := r.queue.ring.buffer[i]
	r.advance(next)
	return value
}

// ReadInto consumes the next item into *out, avoiding the extra copy a
// return-by-value Read would incur when the caller already owns a
// destination.
func (r *Reader[T]) ReadInto(out *T) {
	next := r.nextSequence()
	i := r.queue.ring.indexFor(next)
	r.waitForData(i, next)
	*out = r.queue.ring.buffer[i]
	r.advance(next)
}

func (r *Reader[T]) nextSequence() int64 {
	return r.consumerSequence.LoadRelaxed() + 1
}

// waitForData busy-waits until the slot's stamp, loaded with acquire
// ordering, equals next. Equality is required: a stamp greater than
// next would mean the slot was reused while this reader lagged, which
// cannot happen under a correctly back-pressured writer.
func (r *Reader[T]) waitForData(index uint64, next int64) {
	for r.queue.ring.stamps[index].LoadAcquire() != next {
		r.wait.Wait()
	}
	r.wait.Reset()
}

// advance publishes "slot i is free" to writers via a release store of
// the new consumer sequence.
func (r *Reader[T]) advance(next int64) {
	r.consumerSequence.StoreRelease(next)
}
