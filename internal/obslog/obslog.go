// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package obslog provides structured logging for disruptorq's benchmark
// harness (cmd/disruptorqbench). It is never imported by the core
// package: the hot path logs nothing.
package obslog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once    sync.Once
	handler slog.Handler
)

// Logger returns the shared benchmark-harness logger, writing leveled,
// key-value text to stderr. Its handler is created once per process;
// each call wraps that handler in a new Logger.
func Logger() *slog.Logger {
	once.Do(func() {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	})
	return slog.New(handler)
}

// Scenario logs the start of a named benchmark scenario at its
// configured size, so a long-running harness invocation leaves a trail
// of what ran and in what order.
func Scenario(name string, capacity, items int) {
	Logger().Info("scenario starting", "name", name, "capacity", capacity, "items", items)
}

// Result logs a completed scenario's throughput.
func Result(name string, items int, elapsedNanos int64) {
	var throughput float64
	if elapsedNanos > 0 {
		throughput = float64(items) / (float64(elapsedNanos) / 1e9)
	}
	Logger().Info("scenario finished", "name", name, "items", items, "throughput_items_per_sec", throughput)
}
