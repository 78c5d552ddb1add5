// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis302dl controls an ST LIS302DL three axis accelerometer over SPI.
//
// The device reports 8 bit signed acceleration counts at ±2g or ±8g full
// scale with an output data rate of 100Hz or 400Hz. It is driven in 4-wire
// SPI mode 3 with a dedicated chip select line.
//
// **Datasheet:** https://www.st.com/resource/en/datasheet/lis302dl.pdf
package lis302dl
