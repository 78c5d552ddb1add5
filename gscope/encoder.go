// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gscope

import (
	"image/jpeg"
	"image/png"
	"sync"
)

// jpegOptions is used for all JPEG encoding. The trace is synthetic
// graphics, a high quality setting keeps the lines legible.
var jpegOptions = jpeg.Options{Quality: 90}

// pngBufferPool recycles the PNG encoder scratch space across frames.
type pngBufferPool sync.Pool

func (p *pngBufferPool) Get() *png.EncoderBuffer {
	buf, _ := (*sync.Pool)(p).Get().(*png.EncoderBuffer)
	return buf
}

func (p *pngBufferPool) Put(buf *png.EncoderBuffer) {
	(*sync.Pool)(p).Put(buf)
}

// pngEncoder is shared by all clients. Encode is safe for concurrent use
// and the scope has no per-request compression setting.
var pngEncoder = png.Encoder{
	CompressionLevel: png.DefaultCompression,
	BufferPool:       new(pngBufferPool),
}
