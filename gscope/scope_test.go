// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gscope

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/motion/accel"
)

func TestNewHalt(t *testing.T) {
	s := New(&Options{Width: 100, Height: 100})

	if err := s.Halt(); err != nil {
		t.Errorf("Halt() failed: %v", err)
	}
}

func TestNew_defaults(t *testing.T) {
	s := New(nil)

	if got, want := s.Bounds().Size(), (image.Point{320, 240}); got != want {
		t.Errorf("Bounds().Size() = %v, want %v", got, want)
	}
	if got, want := len(s.history.buf), 320; got != want {
		t.Errorf("history holds %d samples, want %d", got, want)
	}
	if s.fullScale != 2.3 {
		t.Errorf("full scale is %g, want 2.3", s.fullScale)
	}
}

func TestRing(t *testing.T) {
	r := newRing(3)

	if got := r.ordered(nil); len(got) != 0 {
		t.Errorf("empty ring returned %v", got)
	}

	r.push(accel.Sample{X: 1})
	r.push(accel.Sample{X: 2})
	want := []accel.Sample{{X: 1}, {X: 2}}
	if diff := cmp.Diff(want, r.ordered(nil)); diff != "" {
		t.Errorf("partially filled ring mismatch (-want +got):\n%s", diff)
	}

	r.push(accel.Sample{X: 3})
	r.push(accel.Sample{X: 4})
	want = []accel.Sample{{X: 2}, {X: 3}, {X: 4}}
	if diff := cmp.Diff(want, r.ordered(nil)); diff != "" {
		t.Errorf("wrapped ring mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordDrawsTrace(t *testing.T) {
	s := New(&Options{Width: 64, Height: 48, History: 8})
	for i := 0; i < 8; i++ {
		s.Record(accel.Sample{X: 1, Y: -1, Z: 0.5})
	}

	// The X trace must leave clearly reddish pixels above the center line.
	img := s.Image()
	b := img.Bounds()
	found := false
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r > 0x4000 && r > 2*g && r > 2*bl {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected X trace pixels in the rendering")
	}
}

func TestImageIsACopy(t *testing.T) {
	s := New(&Options{Width: 32, Height: 32})

	a := s.Image().(*image.RGBA)
	b := s.Image().(*image.RGBA)
	if &a.Pix[0] == &b.Pix[0] {
		t.Error("Image() must return a copy, not the live buffer")
	}
}
