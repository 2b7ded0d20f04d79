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

package code

import (
	"strings"
	"text/scanner"
)

const maxErrors = 10

// Error describes a single compile error and the source position of the
// offending delimiter.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrCompile is the error type returned by Compile, one entry per malformed
// loop delimiter, in source order, capped at 10 entries.
type ErrCompile []*Error

func (e ErrCompile) Error() string {
	var b strings.Builder
	for n, err := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ErrCompile) add(pos scanner.Position, msg string) {
	if len(*e) < maxErrors {
		*e = append(*e, &Error{Pos: pos, Msg: msg})
	}
}
