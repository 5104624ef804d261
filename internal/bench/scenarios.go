// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"sync"
	"time"

	"github.com/valyala/fastrand"

	"code.hybscloud.com/disruptorq"
	"code.hybscloud.com/disruptorq/internal/fixtures"
	"code.hybscloud.com/disruptorq/internal/obslog"
)

// Result is one scenario's measured outcome.
type Result struct {
	Name       string
	Items      int
	Elapsed    time.Duration
	Throughput float64 // items/sec
}

func newResult(name string, items int, elapsed time.Duration) Result {
	var throughput float64
	if elapsed > 0 {
		throughput = float64(items) / elapsed.Seconds()
	}
	return Result{Name: name, Items: items, Elapsed: elapsed, Throughput: throughput}
}

// Scenarios returns the fixed-size end-to-end scenarios disruptorq's
// specification calls out, in the order they should run.
func Scenarios() []func() Result {
	return []func() Result{
		ScenarioSPSC,
		ScenarioCompositePayload,
		ScenarioBroadcast,
		ScenarioMPMC,
		ScenarioBackPressure,
	}
}

// ScenarioSPSC measures a single writer, single reader stream of plain
// integers.
func ScenarioSPSC() Result {
	const (
		capacity = 1024
		items    = 1_000_000
	)
	obslog.Scenario("spsc", capacity, items)

	q := disruptorq.NewQueue[int](capacity)
	w, _ := q.CreateWriter()
	r, _ := q.CreateReader()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range items {
			w.Write(i)
		}
	}()
	for range items {
		r.Read()
	}
	wg.Wait()
	elapsed := time.Since(start)

	result := newResult("spsc", items, elapsed)
	obslog.Result(result.Name, result.Items, elapsed.Nanoseconds())
	return result
}

// ScenarioCompositePayload measures throughput of a multi-field payload
// written via WriteEmplace and consumed via ReadInto, exercising the
// non-trivial-copy path.
func ScenarioCompositePayload() Result {
	const (
		capacity = 1024
		items    = 500_000
	)
	obslog.Scenario("composite-payload", capacity, items)

	q := disruptorq.NewQueue[fixtures.Event](capacity)
	w, _ := q.CreateWriter()
	r, _ := q.CreateReader()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range items {
			w.WriteEmplace(func() fixtures.Event {
				return fixtures.Event{A: i, B: "event", C: float32(i)}
			})
		}
	}()
	var ev fixtures.Event
	for range items {
		r.ReadInto(&ev)
	}
	wg.Wait()
	elapsed := time.Since(start)

	result := newResult("composite-payload", items, elapsed)
	obslog.Result(result.Name, result.Items, elapsed.Nanoseconds())
	return result
}

// ScenarioBroadcast measures fan-out: one writer, four readers, each
// observing every item.
func ScenarioBroadcast() Result {
	const (
		capacity   = 1024
		numReaders = 4
		items      = 100_000
	)
	obslog.Scenario("broadcast", capacity, items)

	q := disruptorq.NewQueue[int](capacity)
	w, _ := q.CreateWriter()
	readers := make([]*disruptorq.Reader[int], numReaders)
	for i := range readers {
		readers[i], _ = q.CreateReader()
	}

	start := time.Now()
	var wg sync.WaitGroup
	for _, r := range readers {
		wg.Add(1)
		go func(r *disruptorq.Reader[int]) {
			defer wg.Done()
			for range items {
				r.Read()
			}
		}(r)
	}
	for i := range items {
		w.Write(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := items * numReaders
	result := newResult("broadcast", total, elapsed)
	obslog.Result(result.Name, result.Items, elapsed.Nanoseconds())
	return result
}

// ScenarioMPMC measures four writers publishing concurrently to a
// single reader, with fastrand-jittered write pacing so the writers do
// not lock-step.
func ScenarioMPMC() Result {
	const (
		capacity     = 4096
		numWriters   = 4
		itemsPerProd = 200_000
	)
	obslog.Scenario("mpmc", capacity, numWriters*itemsPerProd)

	q := disruptorq.NewQueue[int](capacity)
	r, _ := q.CreateReader()
	writers := make([]*disruptorq.Writer[int], numWriters)
	for i := range writers {
		writers[i], _ = q.CreateWriter()
	}

	start := time.Now()
	var wg sync.WaitGroup
	for id := range numWriters {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range itemsPerProd {
				if fastrand.Uint32n(64) == 0 {
					time.Sleep(time.Duration(fastrand.Uint32n(1000)) * time.Nanosecond)
				}
				writers[id].Write(i)
			}
		}(id)
	}
	total := numWriters * itemsPerProd
	for range total {
		r.Read()
	}
	wg.Wait()
	elapsed := time.Since(start)

	result := newResult("mpmc", total, elapsed)
	obslog.Result(result.Name, result.Items, elapsed.Nanoseconds())
	return result
}

// ScenarioBackPressure measures a capacity-2 queue with one writer and
// one reader: the writer waits on back-pressure whenever it gets two
// items ahead of the reader, so throughput reflects back-pressure cost
// rather than raw claim/publish cost. The reader is not artificially
// slowed.
func ScenarioBackPressure() Result {
	const (
		capacity = 2
		items    = 50_000
	)
	obslog.Scenario("back-pressure", capacity, items)

	q := disruptorq.NewQueue[int](capacity)
	w, _ := q.CreateWriter()
	r, _ := q.CreateReader()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range items {
			w.Write(i)
		}
	}()
	for range items {
		r.Read()
	}
	wg.Wait()
	elapsed := time.Since(start)

	result := newResult("back-pressure", items, elapsed)
	obslog.Result(result.Name, result.Items, elapsed.Nanoseconds())
	return result
}
