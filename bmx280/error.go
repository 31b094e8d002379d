// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmx280

import "strconv"

// OutOfRangeError is returned when a register buffer is shorter than
// the block being decoded from it.
type OutOfRangeError struct {
	// Buffer names the offending block, "calibration" or "measurement".
	Buffer string
	Need   int
	Got    int
}

func (e *OutOfRangeError) Error() string {
	return "bmx280: " + e.Buffer + " buffer too short: need " +
		strconv.Itoa(e.Need) + " bytes, got " + strconv.Itoa(e.Got)
}
