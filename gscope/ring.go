// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gscope

import "github.com/GermanBionicSystems/motion/accel"

// ring keeps the most recent samples in insertion order.
type ring struct {
	buf  []accel.Sample
	next int
	full bool
}

func newRing(n int) *ring {
	return &ring{buf: make([]accel.Sample, n)}
}

func (r *ring) push(s accel.Sample) {
	r.buf[r.next] = s
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// ordered appends the stored samples to dst, oldest first, and returns the
// resulting slice.
func (r *ring) ordered(dst []accel.Sample) []accel.Sample {
	if r.full {
		dst = append(dst, r.buf[r.next:]...)
	}
	return append(dst, r.buf[:r.next]...)
}
