// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixtures provides payload types shared by disruptorq's tests
// and benchmark harness.
package fixtures

// Event is a composite, default-constructible payload used to exercise
// Writer.WriteEmplace and Reader.ReadInto with a value larger than a
// single machine word, mirroring ConstructableType in the C++ reference
// implementation's test suite.
type Event struct {
	A int
	B string
	C float32
}
