// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gscope renders acceleration samples as a scrolling oscilloscope
// style trace and streams the rendering to HTTP clients.
//
// Client requests get an initial snapshot of the trace and are updated on
// every recorded sample. The protocol used is "MJPEG"
// (https://en.wikipedia.org/wiki/Motion_JPEG) which is often used by IP
// cameras. Because of its better suitability for computer-drawn graphics the
// PNG image format is used by default. JPEG as a format can be selected via
// Options.Format or using the "format" URL parameter.
//
// The current rendering can also be copied with Image, for example to blit
// it to a small attached display.
package gscope

import (
	"image"
	"net/http"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3"

	"github.com/GermanBionicSystems/motion/accel"
)

// Options for scopes.
type Options struct {
	// Width and height of the rendered image. Default to 320x240.
	Width, Height int

	// History is the number of samples kept and drawn, oldest on the left.
	// Defaults to Width.
	History int

	// FullScale is the acceleration in g mapped to the top and bottom edge.
	// Defaults to 2.3 which fits the saturated output of a ±2g device.
	FullScale float64

	// Format specifies the image format to send to clients.
	Format ImageFormat
}

// Scope draws recorded samples into an image buffer and serves the buffer
// to HTTP clients as a multipart image stream.
type Scope struct {
	defaultFormat ImageFormat
	fullScale     float64
	face          font.Face

	mu       sync.Mutex
	history  *ring
	scratch  []accel.Sample
	buffer   *image.RGBA
	clients  map[*client]struct{}
	snapshot map[imageConfig][]byte
}

var _ http.Handler = (*Scope)(nil)
var _ conn.Resource = (*Scope)(nil)

// New creates a new scope instance. A nil opt selects the defaults.
func New(opt *Options) *Scope {
	if opt == nil {
		opt = &Options{}
	}
	w := opt.Width
	if w == 0 {
		w = 320
	}
	h := opt.Height
	if h == 0 {
		h = 240
	}
	history := opt.History
	if history == 0 {
		history = w
	}
	if history < 2 {
		history = 2
	}
	fullScale := opt.FullScale
	if fullScale == 0 {
		fullScale = 2.3
	}

	// goregular.TTF is a compile time constant, a parse failure cannot be
	// handled any better at run time.
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}

	s := &Scope{
		defaultFormat: opt.Format,
		fullScale:     fullScale,
		face:          truetype.NewFace(f, &truetype.Options{Size: 11}),
		history:       newRing(history),
		buffer:        image.NewRGBA(image.Rect(0, 0, w, h)),
		clients:       map[*client]struct{}{},
		snapshot:      map[imageConfig][]byte{},
	}
	// Show the graticule before the first sample arrives.
	s.renderLocked()
	return s
}

// String returns the name of the scope.
func (s *Scope) String() string {
	return "GScope"
}

// Halt implements conn.Resource and terminates all running client requests
// asynchronously.
func (s *Scope) Halt() error {
	s.mu.Lock()
	s.terminateClientsLocked()
	s.mu.Unlock()

	return nil
}

// Record appends smp to the trace, redraws the image buffer and refreshes
// all streaming clients.
func (s *Scope) Record(smp accel.Sample) {
	s.mu.Lock()
	s.history.push(smp)
	s.renderLocked()
	s.invalidateLocked()
	s.mu.Unlock()
}

// Bounds returns the rectangle of the rendered image.
func (s *Scope) Bounds() image.Rectangle {
	return s.buffer.Bounds()
}

// Image returns a copy of the current rendering.
func (s *Scope) Image() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := image.NewRGBA(s.buffer.Bounds())
	copy(c.Pix, s.buffer.Pix)
	return c
}
