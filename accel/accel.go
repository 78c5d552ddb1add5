// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel defines the types shared by three axis accelerometer drivers
// and the tools consuming them.
package accel

import "fmt"

// RawSample is one acceleration measurement as reported by the device, in
// signed counts, one per axis.
type RawSample struct {
	X int8
	Y int8
	Z int8
}

// String returns the sample as raw counts.
func (r RawSample) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d", r.X, r.Y, r.Z)
}

// Sample is one acceleration measurement normalized to standard gravity, one
// value per axis.
type Sample struct {
	X float32
	Y float32
	Z float32
}

// String returns the sample in g.
func (s Sample) String() string {
	return fmt.Sprintf("X:%+.3fg Y:%+.3fg Z:%+.3fg", s.X, s.Y, s.Z)
}

// Reader reads acceleration from a three axis accelerometer.
type Reader interface {
	// SenseRaw returns one measurement in device counts.
	SenseRaw() (RawSample, error)
	// Sense returns one measurement normalized to standard gravity.
	Sense() (Sample, error)
	// SampleRate returns the output data rate the device is configured for,
	// in Hz, without touching the bus.
	SampleRate() float32
}
