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

// Package vm implements a brainfuck virtual machine.
//
// A machine instance executes a Program, an instruction sequence produced by
// the companion package github.com/db47h/bf/code, against a fixed-size tape
// of byte cells. Loop delimiters are resolved to direct jump targets at
// compile time, so execution is a single fetch/switch loop with no bracket
// scanning.
//
// The tape is bounds-checked: moving the cursor below cell 0 or past the
// last cell stops the machine with an error whose cause is ErrTapeBounds.
// Cell arithmetic wraps modulo 256. The behavior of ',' on exhausted input
// is selected with the EOF option; the default stores 0 in the current cell.
//
// Program I/O is pluggable through the Input and Output options. Input
// readers stack: when the most recently pushed reader is exhausted, reading
// falls back to the one pushed before it.
//
// Note that the PC is incremented unconditionally after every instruction,
// taken jumps included: jump targets point at the matching loop delimiter so
// that the increment lands one cell past it. Keep this in mind if you hack
// on the dispatch code.
package vm
