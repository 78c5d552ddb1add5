// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis302dl

import "fmt"

// IdentityError reports that the WHO_AM_I register did not read back the
// LIS302DL signature. The part on the bus may be a clone, a different device
// sharing the select line, or a wiring fault.
//
// New returns it together with a usable *Dev so the caller decides whether
// to keep talking to the device.
type IdentityError struct {
	Got  byte
	Want byte
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("lis302dl: unexpected device identity %#02x, want %#02x", e.Got, e.Want)
}
