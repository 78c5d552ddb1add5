// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gscope

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/GermanBionicSystems/motion/accel"
)

// Trace colors, picked to stay apart on a dark background.
var (
	traceX = color.NRGBA{R: 0xe5, G: 0x48, B: 0x48, A: 0xff}
	traceY = color.NRGBA{R: 0x4c, G: 0xc2, B: 0x5c, A: 0xff}
	traceZ = color.NRGBA{R: 0x58, G: 0x9f, B: 0xf2, A: 0xff}
)

// renderLocked redraws the whole trace into the image buffer. The caller
// must hold mu.
func (s *Scope) renderLocked() {
	b := s.buffer.Bounds()
	w := float64(b.Dx())

	dc := gg.NewContextForRGBA(s.buffer)
	dc.SetFontFace(s.face)

	dc.SetRGB(0.02, 0.02, 0.05)
	dc.Clear()

	// Graticule: one line per g, a stronger one for the zero line.
	dc.SetLineWidth(1)
	dc.SetRGBA(1, 1, 1, 0.15)
	for g := 1.0; g < s.fullScale; g++ {
		dc.DrawLine(0, s.gToY(g), w, s.gToY(g))
		dc.DrawLine(0, s.gToY(-g), w, s.gToY(-g))
	}
	dc.Stroke()
	dc.SetRGBA(1, 1, 1, 0.4)
	dc.DrawLine(0, s.gToY(0), w, s.gToY(0))
	dc.Stroke()

	s.scratch = s.history.ordered(s.scratch[:0])
	samples := s.scratch
	if len(samples) >= 2 {
		// The trace grows from the left and scrolls once the history is
		// full.
		step := (w - 1) / float64(len(s.history.buf)-1)
		s.trace(dc, samples, step, traceX, func(smp accel.Sample) float64 { return float64(smp.X) })
		s.trace(dc, samples, step, traceY, func(smp accel.Sample) float64 { return float64(smp.Y) })
		s.trace(dc, samples, step, traceZ, func(smp accel.Sample) float64 { return float64(smp.Z) })
	}

	// Scale labels on the right, latest values on the left.
	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawStringAnchored(fmt.Sprintf("%+.1fg", s.fullScale), w-3, 11, 1, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%+.1fg", -s.fullScale), w-3, float64(b.Dy())-4, 1, 0)
	if len(samples) > 0 {
		last := samples[len(samples)-1]
		dc.SetColor(traceX)
		dc.DrawString(fmt.Sprintf("X %+.3fg", last.X), 3, 11)
		dc.SetColor(traceY)
		dc.DrawString(fmt.Sprintf("Y %+.3fg", last.Y), 3, 23)
		dc.SetColor(traceZ)
		dc.DrawString(fmt.Sprintf("Z %+.3fg", last.Z), 3, 35)
	}
}

func (s *Scope) trace(dc *gg.Context, samples []accel.Sample, step float64, c color.NRGBA, value func(accel.Sample) float64) {
	dc.SetColor(c)
	dc.SetLineWidth(1.5)
	for i, smp := range samples {
		x := float64(i) * step
		y := s.gToY(value(smp))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

// gToY maps an acceleration in g to a vertical pixel position.
func (s *Scope) gToY(g float64) float64 {
	h := float64(s.buffer.Bounds().Dy())
	return h/2 - g/s.fullScale*h/2
}
