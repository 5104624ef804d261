// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

import "code.hybscloud.com/atomix"

// initialSequence is the sentinel meaning "never published" (slot stamp)
// or "never consumed" (reader/writer cursor).
const initialSequence int64 = -1

// pad is cache line padding used to keep a Writer's or Reader's hot
// fields from sharing a cache line with unrelated data.
type pad [64]byte

// ring is the fixed-capacity slot storage shared by a Queue's readers
// and writers: buffer holds payloads, stamps holds each slot's
// last-publication sequence. Both are indexed by sequence mod capacity,
// computed as a bitmask because capacity is always a power of two.
type ring[T any] struct {
	buffer []T
	stamps []atomix.Int64
	mask   uint64
}

func newRing[T any](capacity uint64) *ring[T] {
	r := &ring[T]{
		buffer: make([]T, capacity),
		stamps: make([]atomix.Int64, capacity),
		mask:   capacity - 1,
	}
	for i := range r.stamps {
		r.stamps[i].StoreRelaxed(initialSequence)
	}
	return r
}

func (r *ring[T]) indexFor(sequence int64) uint64 {
	return ModPowerOfTwo(uint64(sequence), r.mask+1)
}
