// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bmx280

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// measurementSize is the size of the burst read at register 0xF7:
// pressure in bytes 0-2, temperature in bytes 3-5 and, on the BME280,
// humidity in bytes 6-7.
const measurementSize = 8

// Measurement is one decoded and compensated sensor reading.
//
// Humidity is always 0, see the package documentation.
type Measurement struct {
	Pressure    float64 // Pa
	Temperature float64 // °C
	Humidity    float64 // %rH
}

func (m Measurement) String() string {
	return fmt.Sprintf("Pressure: %vPa, Temperature: %vC, Humidity: %v", m.Pressure, m.Temperature, m.Humidity)
}

// Decode compensates one raw measurement block.
//
// Temperature is compensated first; its tFine intermediate feeds the
// pressure compensation. When the pressure divisor degenerates to zero
// the pressure stays 0 and no error is reported.
func Decode(cal Calibration, meas []byte) (Measurement, error) {
	if len(meas) < measurementSize {
		return Measurement{}, &OutOfRangeError{Buffer: "measurement", Need: measurementSize, Got: len(meas)}
	}
	t, tFine := cal.compensateTemp(decode20bit(meas, 3))
	p := cal.compensatePressure(decode20bit(meas, 0), tFine)
	return Measurement{
		Pressure:    float64(p) / 256,
		Temperature: float64(t) / 100,
	}, nil
}

// DecodeEnv is like Decode but reports the measurement in physic
// units, converted from the integer compensation results without a
// float round trip.
func DecodeEnv(cal Calibration, meas []byte) (physic.Env, error) {
	var e physic.Env
	if len(meas) < measurementSize {
		return e, &OutOfRangeError{Buffer: "measurement", Need: measurementSize, Got: len(meas)}
	}
	t, tFine := cal.compensateTemp(decode20bit(meas, 3))
	// Convert CentiCelsius to Kelvin.
	e.Temperature = physic.Temperature(t)*10*physic.MilliCelsius + physic.ZeroCelsius
	p := cal.compensatePressure(decode20bit(meas, 0), tFine)
	// It has 8 bits of fractional Pascal.
	e.Pressure = physic.Pressure(p) * 15625 * physic.MicroPascal / 4
	return e, nil
}

// decode20bit reads a 20 bit ADC sample: the full byte at off, the
// full byte at off+1 and the high nibble of the byte at off+2. The low
// nibble of the third byte carries no signal and is discarded.
//
// The result is always in [0, 1<<20-1]; the shift pattern cannot reach
// the sign bit, so no masking is needed.
func decode20bit(buf []byte, off int) int32 {
	return int32(buf[off])<<12 | int32(buf[off+1])<<4 | int32(buf[off+2])>>4
}
