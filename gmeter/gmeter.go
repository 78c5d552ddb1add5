// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gmeter renders acceleration samples as one line of colored bar
// meters on an ANSI terminal, one bar per axis.
//
// Useful to eyeball the output of an accelerometer without any display
// hardware attached.
package gmeter

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"

	"github.com/GermanBionicSystems/motion/accel"
)

// Opts represents the options available for the meter.
type Opts struct {
	// Cells is the number of blocks drawn per axis bar. Defaults to 16.
	Cells int
	// FullScale is the acceleration magnitude in g that fills a bar.
	// Defaults to 2.
	FullScale float32
	// Palette selects how block colors map to the terminal palette.
	Palette *ansi256.Palette

	_ struct{}
}

var (
	colorX   = color.NRGBA{R: 255, A: 255}
	colorY   = color.NRGBA{G: 255, A: 255}
	colorZ   = color.NRGBA{B: 255, A: 255}
	colorOff = color.NRGBA{R: 0x28, G: 0x28, B: 0x28, A: 255}
)

// Dev draws bar meters at the console.
type Dev struct {
	w         io.Writer
	cells     int
	fullScale float32
	palette   ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that draws to stdout. A nil opts selects the defaults.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	cells := opts.Cells
	if cells == 0 {
		cells = 16
	}
	fullScale := opts.FullScale
	if fullScale == 0 {
		fullScale = 2
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:         colorable.NewColorableStdout(),
		cells:     cells,
		fullScale: fullScale,
		palette:   *p,
	}
}

func (d *Dev) String() string {
	return "GMeter"
}

// Halt implements conn.Resource.
//
// It moves to the next line and resets the terminal attributes.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Update redraws the meter line in place for s.
func (d *Dev) Update(s accel.Sample) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	d.bar('X', s.X, colorX)
	d.bar('Y', s.Y, colorY)
	d.bar('Z', s.Z, colorZ)
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return err
}

func (d *Dev) bar(axis rune, v float32, c color.NRGBA) {
	fmt.Fprintf(&d.buf, "%c %+6.3fg ", axis, v)
	on := d.fill(v)
	for i := 0; i < d.cells; i++ {
		b := c
		if i >= on {
			b = colorOff
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(b))
	}
	_ = d.buf.WriteByte(' ')
}

// fill returns how many cells light up for v. The bar shows the magnitude,
// the sign is carried by the numeric readout.
func (d *Dev) fill(v float32) int {
	if v < 0 {
		v = -v
	}
	n := int(float32(d.cells)*v/d.fullScale + 0.5)
	if n > d.cells {
		n = d.cells
	}
	return n
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
