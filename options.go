// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// waiter is the busy-wait strategy used by Writer.waitForNoWrap and
// Reader.waitForData. The specification mandates completion but not
// spin discipline (section 9, "Busy-wait policy"); waiter lets callers
// pick between the two strategies the ecosystem already provides.
type waiter interface {
	Wait()
	Reset()
}

// backoffWaiter adapts iox.Backoff to waiter: adaptive backoff between
// spin iterations. This is the default strategy.
type backoffWaiter struct{ b iox.Backoff }

func (w *backoffWaiter) Wait()  { w.b.Wait() }
func (w *backoffWaiter) Reset() { w.b.Reset() }

// spinWaiter adapts spin.Wait to waiter: a plain CPU pause hint on every
// iteration, with no backoff growth. Selected via WithSpinWait.
type spinWaiter struct{ s spin.Wait }

func (w *spinWaiter) Wait()  { w.s.Once() }
func (w *spinWaiter) Reset() { w.s.Reset() }

// EndpointOption configures a Reader or Writer at creation time.
type EndpointOption func(*endpointConfig)

type endpointConfig struct {
	wait waiter
}

// WithSpinWait selects spin.Wait as the busy-wait strategy for the
// endpoint being created, instead of the default iox.Backoff. Prefer
// this for endpoints expected to spin only briefly, where the growth of
// an adaptive backoff would cost more latency than it saves.
func WithSpinWait() EndpointOption {
	return func(c *endpointConfig) { c.wait = &spinWaiter{} }
}

func newEndpointConfig(opts []EndpointOption) *endpointConfig {
	c := &endpointConfig{wait: &backoffWaiter{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Builder creates a Queue with fluent configuration, mirroring the
// capacity-only configuration surface of the reference implementation.
//
// Example:
//
//	q := disruptorq.Build[Event](disruptorq.New(1024))
type Builder struct {
	capacity int
}

// New returns a Builder for a Queue of the given capacity. Capacity must
// be a positive power of two; New itself performs no validation, the
// check happens in Build/BuildSafe.
func New(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// Build constructs a Queue[T] from b, panicking on invalid capacity
// exactly as NewQueue does.
func Build[T any](b *Builder) *Queue[T] {
	return NewQueue[T](b.capacity)
}

// BuildSafe constructs a Queue[T] from b, returning ErrInvalidCapacity
// instead of panicking.
func BuildSafe[T any](b *Builder) (*Queue[T], error) {
	return NewQueueSafe[T](b.capacity)
}
