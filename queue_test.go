// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/disruptorq"
)

func TestNewQueuePanicsOnInvalidCapacity(t *testing.T) {
	cases := []int{0, -1, 3, 100}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewQueue(%d): expected panic", c)
				}
			}()
			disruptorq.NewQueue[int](c)
		}()
	}
}

func TestNewQueueSafeRejectsInvalidCapacity(t *testing.T) {
	if _, err := disruptorq.NewQueueSafe[int](3); !errors.Is(err, disruptorq.ErrInvalidCapacity) {
		t.Fatalf("NewQueueSafe(3): got %v, want ErrInvalidCapacity", err)
	}
}

func TestQueueCapacity(t *testing.T) {
	q := disruptorq.NewQueue[int](16)
	if got := q.Capacity(); got != 16 {
		t.Fatalf("Capacity(): got %d, want 16", got)
	}
}

func TestBuilder(t *testing.T) {
	q := disruptorq.Build[int](disruptorq.New(32))
	if got := q.Capacity(); got != 32 {
		t.Fatalf("Capacity(): got %d, want 32", got)
	}

	if _, err := disruptorq.BuildSafe[int](disruptorq.New(30)); !errors.Is(err, disruptorq.ErrInvalidCapacity) {
		t.Fatalf("BuildSafe(30): got %v, want ErrInvalidCapacity", err)
	}
}

func TestCreateReaderAndWriterDuringSetup(t *testing.T) {
	q := disruptorq.NewQueue[int](16)

	for range 4 {
		if _, err := q.CreateReader(); err != nil {
			t.Fatalf("CreateReader: %v", err)
		}
	}
	for range 2 {
		if _, err := q.CreateWriter(); err != nil {
			t.Fatalf("CreateWriter: %v", err)
		}
	}
}

func TestCreateReaderFailsAfterSetupSeals(t *testing.T) {
	q := disruptorq.NewQueue[int](16)
	w, err := q.CreateWriter()
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	r, err := q.CreateReader()
	if err != nil {
		t.Fatalf("CreateReader: %v", err)
	}

	w.Write(1)
	_ = r.Read()

	if _, err := q.CreateReader(); !disruptorq.IsSetupClosed(err) {
		t.Fatalf("CreateReader after seal: got %v, want ErrSetupClosed", err)
	}
	if _, err := q.CreateWriter(); !disruptorq.IsSetupClosed(err) {
		t.Fatalf("CreateWriter after seal: got %v, want ErrSetupClosed", err)
	}
}

func TestWithSpinWaitOption(t *testing.T) {
	q := disruptorq.NewQueue[int](4)
	w, err := q.CreateWriter(disruptorq.WithSpinWait())
	if err != nil {
		t.Fatalf("CreateWriter: %v", err)
	}
	r, err := q.CreateReader(disruptorq.WithSpinWait())
	if err != nil {
		t.Fatalf("CreateReader: %v", err)
	}

	w.Write(42)
	if got := r.Read(); got != 42 {
		t.Fatalf("Read(): got %d, want 42", got)
	}
}
