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

// The bf command line tool is a showcase for the packages
// github.com/db47h/bf/vm and github.com/db47h/bf/code: it compiles the
// brainfuck source file given as argument and runs it with stdin as program
// input and stdout as program output. It exits 0 when the program halts by
// running off the end of its instruction sequence.
//
// Usage:
//
//	bf [options] file
//
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump cursor, pc and used tape upon exit
//	-eof value
//		  input exhaustion policy: zero, max or hold (default zero)
//	-hex
//		  write each output byte as two hex digits instead of raw
//	-list
//		  list the compiled program instead of running it
//	-noraw
//		  disable raw terminal IO
//	-size int
//		  tape size in cells (default 8192)
//	-with filename
//		  add filename to the program input list (can be specified multiple times)
//
// -debug: will print a full stacktrace should the program fail, along with
// the final PC, cursor and step count.
//
// -dump: after the program halts, print the cursor, PC and step count, and
// the tape contents up to the last nonzero cell.
//
// -eof: the language has no end-of-file instruction, so ',' on exhausted
// input must do something definite: "zero" stores 0 in the current cell,
// "max" stores 255 (what C implementations that assign getchar() to an
// unsigned char end up with), "hold" leaves the cell unchanged.
//
// -hex: render output bytes as two lowercase hex digits each, for programs
// whose output is binary rather than text.
//
// -list: print a disassembly of the compiled program, one instruction per
// line with resolved jump targets, and exit without running it.
//
// -noraw: upon startup, bf switches the terminal to raw mode so that ','
// reads single unbuffered bytes. This flag disables this behavior.
//
// -size: tape size in cells. Moving the cursor outside the tape is an error
// that stops the program; make sure this value fits the program's working
// set.
//
// -with: feed the specified file to the program input before stdin. If
// specified multiple times, files are consumed in order of appearance on the
// command line.
//
// Malformed programs (a ']' with no open '[', or a '[' left open at end of
// input) are reported with the source position of the offending delimiter
// and are never executed.
package main
