// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

// IsPowerOfTwo reports whether n is a power of two. Zero is not a power
// of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// maxPowerOfTwo is the largest power of two representable in a uint64.
const maxPowerOfTwo = uint64(1) << 63

// CeilToPowerOfTwo returns the smallest power of two that is >= n.
// CeilToPowerOfTwo(0) returns 1. Inputs above maxPowerOfTwo saturate at
// maxPowerOfTwo.
func CeilToPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	if n > maxPowerOfTwo {
		return maxPowerOfTwo
	}
	if IsPowerOfTwo(n) {
		return n
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// ModPowerOfTwo returns x mod d. d must be a power of two; ModPowerOfTwo
// panics otherwise.
func ModPowerOfTwo(x, d uint64) uint64 {
	if !IsPowerOfTwo(d) {
		panic("disruptorq: ModPowerOfTwo divisor must be a power of two")
	}
	return x & (d - 1)
}
