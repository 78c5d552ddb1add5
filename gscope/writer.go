// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gscope

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"io"
	"net/textproto"
	"strconv"
)

// randomBoundary returns a MIME boundary long and random enough to never
// collide with encoded image bytes. RFC 2046 section 5.1.1 caps boundaries
// at 70 characters.
func randomBoundary() string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// partWriter emits a neverending multipart entity, one part per frame.
//
// The stream has no final part, so "mime/multipart".Writer does not fit:
// each part must reach the client complete with the boundary line announcing
// the next one, otherwise viewers keep showing a stale frame.
type partWriter struct {
	u        io.Writer
	boundary string
	started  bool
}

func makePartWriter(u io.Writer) partWriter {
	return partWriter{
		u:        u,
		boundary: randomBoundary(),
	}
}

// writeFrame sends one part. The caller-owned headers get a Content-Length
// set for body.
func (w *partWriter) writeFrame(header textproto.MIMEHeader, body []byte) error {
	header.Set("Content-Length", strconv.Itoa(len(body)))

	var buf bytes.Buffer
	if !w.started {
		w.started = true
		buf.WriteString("--" + w.boundary + "\r\n")
	}
	for name, values := range header {
		for _, value := range values {
			buf.WriteString(name + ": " + value + "\r\n")
		}
	}
	buf.WriteString("\r\n")

	if _, err := buf.WriteTo(w.u); err != nil {
		return err
	}
	if _, err := w.u.Write(body); err != nil {
		return err
	}
	// The closing boundary line doubles as the opening of the next part.
	_, err := io.WriteString(w.u, "\r\n--"+w.boundary+"\r\n")
	return err
}
