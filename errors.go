// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptorq

import "errors"

// ErrInvalidCapacity indicates a capacity that is not a positive power
// of two was passed to NewQueueSafe or BuildSafe.
var ErrInvalidCapacity = errors.New("disruptorq: capacity must be a positive power of two")

// ErrSetupClosed indicates CreateReader or CreateWriter was called after
// the queue had already sealed setup: a write or read had already
// occurred. Source code for the reference implementation this package
// is modeled on left this behavior undefined; disruptorq turns it into
// a detected error instead of silent corruption.
var ErrSetupClosed = errors.New("disruptorq: setup is closed; endpoints must be created before any read or write")

// IsSetupClosed reports whether err is, or wraps, ErrSetupClosed.
func IsSetupClosed(err error) bool {
	return errors.Is(err, ErrSetupClosed)
}
