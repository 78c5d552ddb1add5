// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gscope

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"testing"
)

func TestRandomBoundary(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		b := randomBoundary()
		// RFC 2046 section 5.1.1 caps boundaries at 70 characters.
		if len(b) != 64 {
			t.Fatalf("boundary %q is %d characters, want 64", b, len(b))
		}
		if _, err := hex.DecodeString(b); err != nil {
			t.Fatalf("boundary %q is not hex: %v", b, err)
		}
		if seen[b] {
			t.Fatalf("boundary %q repeated", b)
		}
		seen[b] = true
	}
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	pw := makePartWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Type", "image/png")
	if err := pw.writeFrame(hdr, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := pw.writeFrame(hdr, []byte("second frame")); err != nil {
		t.Fatal(err)
	}

	mr := multipart.NewReader(&buf, pw.boundary)
	for _, want := range []string{"first", "second frame"} {
		part, err := mr.NextPart()
		if err != nil {
			t.Fatal(err)
		}
		if got := part.Header.Get("Content-Length"); got != strconv.Itoa(len(want)) {
			t.Errorf("Content-Length = %s, want %d", got, len(want))
		}
		if got := part.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("Content-Type = %q, want image/png", got)
		}
		body, err := ioutil.ReadAll(part)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != want {
			t.Errorf("part body = %q, want %q", body, want)
		}
	}
}
