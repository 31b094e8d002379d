// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmx280

// calibrationSize is the size of the trimming parameter block at
// register 0x88, shared by the BMP280 and BME280.
const calibrationSize = 26

// Calibration holds the factory trimming parameters read from the
// device's non-volatile memory. Each physical sensor carries its own
// set.
//
// H1 is the only humidity coefficient stored inside the 26 byte block.
// The remaining BME280 humidity coefficients live in a separate
// register bank and are not decoded by this package.
type Calibration struct {
	T1                             uint16
	T2, T3                         int16
	P1                             uint16
	P2, P3, P4, P5, P6, P7, P8, P9 int16
	H1                             uint8
}

// DecodeCalibration parses the trimming parameter block.
//
// The coefficients are 16 bit little-endian words at fixed offsets,
// per the datasheet chapter "Trimming parameter readout". Byte 24 is
// reserved.
func DecodeCalibration(buf []byte) (Calibration, error) {
	if len(buf) < calibrationSize {
		return Calibration{}, &OutOfRangeError{Buffer: "calibration", Need: calibrationSize, Got: len(buf)}
	}
	return Calibration{
		T1: decodeU16LE(buf, 0),
		T2: decodeS16LE(buf, 2),
		T3: decodeS16LE(buf, 4),
		P1: decodeU16LE(buf, 6),
		P2: decodeS16LE(buf, 8),
		P3: decodeS16LE(buf, 10),
		P4: decodeS16LE(buf, 12),
		P5: decodeS16LE(buf, 14),
		P6: decodeS16LE(buf, 16),
		P7: decodeS16LE(buf, 18),
		P8: decodeS16LE(buf, 20),
		P9: decodeS16LE(buf, 22),
		H1: buf[25],
	}, nil
}

// compensateTemp returns temperature in 0.01°C units plus tFine, the
// intermediate shared with the pressure compensation. An output of
// 5123 equals 51.23°C.
//
// raw has 20 bits of resolution. All arithmetic is signed 32 bit with
// arithmetic right shifts, per the datasheet chapter "Compensation
// formula".
func (c *Calibration) compensateTemp(raw int32) (int32, int32) {
	var1 := (((raw >> 3) - (int32(c.T1) << 1)) * int32(c.T2)) >> 11
	var2 := (((((raw >> 4) - int32(c.T1)) * ((raw >> 4) - int32(c.T1))) >> 12) * int32(c.T3)) >> 14
	tFine := var1 + var2
	return (tFine*5 + 128) >> 8, tFine
}

// compensatePressure returns pressure in Q24.8 format (24 integer and
// 8 fractional bits). An output of 24674867 represents 24674867/256 =
// 96386.2 Pa.
//
// raw has 20 bits of resolution; tFine comes from compensateTemp. All
// arithmetic is signed 64 bit. A zero divisor yields 0 rather than an
// error, matching the datasheet reference code.
func (c *Calibration) compensatePressure(raw, tFine int32) int64 {
	var1 := int64(tFine) - 128000
	var2 := var1 * var1 * int64(c.P6)
	var2 += (var1 * int64(c.P5)) << 17
	var2 += int64(c.P4) << 35
	var1 = ((var1 * var1 * int64(c.P3)) >> 8) + ((var1 * int64(c.P2)) << 12)
	var1 = ((int64(1)<<47 + var1) * int64(c.P1)) >> 33
	if var1 == 0 {
		// Avoid division by zero.
		return 0
	}
	p := int64(1048576 - raw)
	p = ((p<<31 - var2) * 3125) / var1
	var1 = (int64(c.P9) * (p >> 13) * (p >> 13)) >> 25
	var2 = (int64(c.P8) * p) >> 19
	return ((p + var1 + var2) >> 8) + int64(c.P7)<<4
}

// decodeU16LE reads an unsigned 16 bit little-endian word.
func decodeU16LE(buf []byte, off int) uint16 {
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}

// decodeS16LE reads a two's-complement 16 bit little-endian word.
func decodeS16LE(buf []byte, off int) int16 {
	return int16(decodeU16LE(buf, off))
}
