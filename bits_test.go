// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq_test

import (
	"testing"

	"code.hybscloud.com/disruptorq"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[uint64]bool{
		0:   false,
		1:   true,
		2:   true,
		3:   false,
		4:   true,
		5:   false,
		1024: true,
		1023: false,
	}
	for n, want := range cases {
		if got := disruptorq.IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d): got %v, want %v", n, got, want)
		}
	}
}

func TestCeilToPowerOfTwo(t *testing.T) {
	cases := map[uint64]uint64{
		0:    1,
		1:    1,
		2:    2,
		3:    4,
		4:    4,
		5:    8,
		1000: 1024,
		1024: 1024,
	}
	for n, want := range cases {
		if got := disruptorq.CeilToPowerOfTwo(n); got != want {
			t.Errorf("CeilToPowerOfTwo(%d): got %d, want %d", n, got, want)
		}
	}
}

func TestModPowerOfTwo(t *testing.T) {
	if got := disruptorq.ModPowerOfTwo(10, 8); got != 2 {
		t.Errorf("ModPowerOfTwo(10, 8): got %d, want 2", got)
	}
	if got := disruptorq.ModPowerOfTwo(7, 8); got != 7 {
		t.Errorf("ModPowerOfTwo(7, 8): got %d, want 7", got)
	}
}

func TestModPowerOfTwoPanicsOnNonPow2Divisor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-power-of-two divisor")
		}
	}()
	disruptorq.ModPowerOfTwo(10, 6)
}
