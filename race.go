// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package disruptorq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip stress tests whose correctness depends on
// acquire/release happens-before edges between the stamp array and the
// non-atomic payload buffer, which the race detector cannot observe.
const RaceEnabled = true
