// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bmx280 decodes raw Bosch BMP280/BME280 register blocks into
// calibrated pressure and temperature measurements.
//
// It implements the integer compensation formulas from the datasheet:
// the trimming parameter block read at register 0x88 is parsed into a
// Calibration, which then compensates the 8 byte burst read at
// register 0xF7. Acquiring the bytes over I²C or SPI is left to the
// caller; this package is pure arithmetic and can be fed recorded
// register dumps.
//
// Humidity is not compensated. The BME280 stores its humidity
// coefficients outside the 26 byte trimming block decoded here, so
// decoded measurements always report 0 humidity.
//
// # Datasheets
//
// The URLs tend to rot, visit https://www.bosch-sensortec.com if they
// become invalid.
//
// BME280:
// https://www.bosch-sensortec.com/media/boschsensortec/downloads/datasheets/bst-bme280-ds002.pdf
//
// BMP280:
// https://www.bosch-sensortec.com/media/boschsensortec/downloads/datasheets/bst-bmp280-ds001.pdf
//
// C reference code can be found from Bosch at
// https://github.com/boschsensortec which can be useful for clarifying
// operation:
// https://github.com/boschsensortec/BMP2_SensorAPI
// https://github.com/boschsensortec/BME280_SensorAPI
package bmx280
