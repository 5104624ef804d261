// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package disruptorq provides a bounded, in-process, multi-producer/
// multi-consumer broadcast ring buffer in the style of the LMAX
// Disruptor.
//
// Unlike a work-distribution queue, every Reader observes the complete
// stream of items published to a Queue, in publication order. This
// makes disruptorq a fan-out primitive: N readers each see all M
// published items, rather than the M items being partitioned across the
// N readers.
//
// # Quick Start
//
//	q := disruptorq.NewQueue[Event](1024)
//	w, _ := q.CreateWriter()
//	r, _ := q.CreateReader()
//
//	w.Write(Event{ID: 1})
//	ev := r.Read()
//
// Builder API, mirroring the capacity-only configuration surface of the
// reference implementation:
//
//	q := disruptorq.Build[Event](disruptorq.New(1024))
//
// # Setup and Steady State
//
// Readers and writers must be created during an explicit setup phase,
// before any Write or Read call. CreateReader and CreateWriter are safe
// to call concurrently with each other during setup, but once the first
// Write has been claimed, the queue seals: further CreateReader or
// CreateWriter calls return ErrSetupClosed rather than corrupting
// broadcast state.
//
//	q := disruptorq.NewQueue[int](64)
//	for range 4 {
//	    q.CreateReader() // fan-out consumers, created up front
//	}
//	w, _ := q.CreateWriter()
//	w.Write(1) // setup is now sealed
//	q.CreateReader() // returns ErrSetupClosed
//
// # Back-pressure
//
// A Writer blocks (busy-waiting) before overwriting a slot until every
// Reader has consumed through that slot's previous occupant. A Reader
// that is created but never driven therefore still back-presses every
// Writer on the same Queue, bounding all writers to Capacity outstanding
// items — this is a direct consequence of broadcast semantics: the
// queue cannot know a reader will never be driven again.
//
// # Ordering and Memory Model
//
// Publication order is the total order induced by fetch-add on the
// queue's claim counter. A Writer's slot store happens-before its
// release store of the slot's stamp; a Reader's acquire load of a
// matching stamp happens-before its read of the payload. This pairing
// is the only synchronization edge in the hot path — there is no lock in
// either Write or Read.
//
//	// Producer (any number of goroutines, one Writer each)
//	go func() {
//	    for ev := range source {
//	        w.Write(ev)
//	    }
//	}()
//
//	// Consumer (one goroutine per Reader; every Reader sees every ev)
//	go func() {
//	    for {
//	        ev := r.Read()
//	        process(ev)
//	    }
//	}()
//
// # Error Handling
//
// The hot path — Write, WriteEmplace, Read, ReadInto — has no failure
// modes: claim, publish and read never fail. The only errors surfaced
// are at construction (ErrInvalidCapacity, via NewQueueSafe/BuildSafe)
// and at setup (ErrSetupClosed, via CreateReader/CreateWriter after
// steady state has begun). Both are ordinary sentinel errors usable with
// errors.Is; IsSetupClosed is provided for convenience.
//
// # Busy-Wait Policy
//
// Write and Read busy-wait rather than block on a lock or channel. The
// default strategy is [code.hybscloud.com/iox].Backoff (adaptive
// backoff); WithSpinWait selects [code.hybscloud.com/spin].Wait (a flat
// CPU pause hint) per endpoint instead, for callers whose spins are
// expected to be brief:
//
//	r, _ := q.CreateReader(disruptorq.WithSpinWait())
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established purely through atomic acquire/release memory ordering; it
// tracks only explicit synchronization primitives such as mutexes and
// channels. disruptorq's core correctness rests on acquire/release
// pairing between the stamp array and the (non-atomic) payload buffer,
// so the stress tests skip themselves under the race detector by
// checking the RaceEnabled constant, which build tags set.
//
// # Non-Goals
//
// disruptorq does not persist items, operate across processes, resize
// at runtime, reorder by priority, discard unread data on overflow,
// support read/write timeouts, or support adding/removing readers after
// steady state has begun. Callers needing cancellation should wrap
// Read/Write externally, e.g. with a sentinel payload or a separate
// done channel checked between calls.
package disruptorq
