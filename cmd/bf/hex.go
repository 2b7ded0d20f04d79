// This file is part of bf - https://github.com/db47h/bf
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "io"

const hexDigits = "0123456789abcdef"

// hexWriter renders each written byte as two lowercase hex digits.
type hexWriter struct {
	w io.Writer
}

func newHexWriter(w io.Writer) io.Writer {
	return &hexWriter{w}
}

func (h *hexWriter) Write(p []byte) (n int, err error) {
	var b [2]byte
	for n = 0; n < len(p); n++ {
		c := p[n]
		b[0], b[1] = hexDigits[c>>4], hexDigits[c&0x0f]
		if _, err = h.w.Write(b[:]); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (h *hexWriter) Flush() error {
	if f, ok := h.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
