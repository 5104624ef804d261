// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

// Writer claims sequence numbers from its Queue, writes the payload into
// the mapped slot, and publishes by stamping the slot with the claimed
// sequence. A Writer must be driven by exactly one goroutine at a time;
// multiple Writers on the same Queue may run concurrently.
type Writer[T any] struct {
	_                         pad
	queue                     *Queue[T]
	cachedMinConsumerSequence int64
	wait                      waiter
	_                         pad
}

// Write publishes value as the next item in claim order. Write blocks
// (busy-waiting) until every reader has consumed through the slot being
// overwritten, i.e. until back-pressure clears.
func (w *Writer[T]) Write(value T) {
	claimed := w.claim()
	i := w.queue.ring.indexFor(claimed)
	w.queue.ring.buffer[i] = value
	w.publish(i, claimed)
}

// WriteEmplace publishes the value returned by build as the next item in
// claim order. It mirrors the reference implementation's write_emplace:
// the value is constructed directly for this call rather than moved in
// from an existing variable.
func (w *Writer[T]) WriteEmplace(build func() T) {
	w.Write(build())
}

// claim atomically reserves the next sequence number and blocks until
// the wrap point for that sequence is clear of any reader.
func (w *Writer[T]) claim() int64 {
	claimed := w.queue.nextSequence.Add(1) - 1
	if claimed == 0 {
		w.queue.seal()
	}
	w.waitForNoWrap(claimed)
	return claimed
}

// waitForNoWrap blocks until every reader has consumed through
// claimed-capacity, refreshing the cached minimum consumer sequence only
// when the cache would otherwise force a wait. The cache is a
// single-writer field: it may be stale behind the true minimum (safe,
// causes an extra spin) but never ahead (which would be unsafe).
func (w *Writer[T]) waitForNoWrap(claimed int64) {
	wrapPoint := claimed - int64(w.queue.Capacity())
	if wrapPoint <= w.cachedMinConsumerSequence {
		return
	}

	for wrapPoint > w.cachedMinConsumerSequence {
		w.cachedMinConsumerSequence = w.queue.minConsumerSequence()
		if wrapPoint > w.cachedMinConsumerSequence {
			w.wait.Wait()
		}
	}
	w.wait.Reset()
}

// publish stores the slot's stamp with release ordering. This is the
// sole publication point; every reader synchronizes on it via an
// acquire load of the same stamp.
func (w *Writer[T]) publish(index uint64, claimed int64) {
	w.queue.ring.stamps[index].StoreRelease(claimed)
}
