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
	"os"
	"text/scanner"

	"github.com/db47h/bf/vm"
	"github.com/pkg/errors"
)

// LoadFile reads the brainfuck source file fileName and returns its raw,
// unfiltered contents. A file that cannot be opened or read is a hard error,
// never an empty program.
func LoadFile(fileName string) ([]byte, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "source read failed")
	}
	return src, nil
}

// Filter returns the ordered subsequence of src made of instruction
// characters. Everything else is a comment and is silently dropped. An empty
// result is legal and compiles to a zero-length, immediately halting
// program.
func Filter(src []byte) []byte {
	var out []byte
	for _, c := range src {
		if _, ok := vm.OpForChar(c); ok {
			out = append(out, c)
		}
	}
	return out
}

// opening records a pending '[' and where it was read.
type opening struct {
	index int
	pos   scanner.Position
}

// Compile translates brainfuck source into an executable vm.Program,
// resolving each loop delimiter pair into a pair of direct jump targets.
//
// The name parameter is used only in error messages to name the source of
// the error. If src comes from a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrCompile value
// that will contain up to 10 entries.
func Compile(name string, src []byte) (vm.Program, error) {
	var (
		p    vm.Program
		open []opening
		errs ErrCompile
	)
	pos := scanner.Position{Filename: name, Line: 1, Column: 1}
	for _, c := range src {
		op, ok := vm.OpForChar(c)
		if ok {
			switch op {
			case vm.OpJmpZ:
				open = append(open, opening{len(p), pos})
				// target filled in by the matching ']'
				p = append(p, vm.Instruction{Op: vm.OpJmpZ})
			case vm.OpJmpNZ:
				if n := len(open); n > 0 {
					o := open[n-1]
					open = open[:n-1]
					p[o.index].Target = len(p)
					p = append(p, vm.Instruction{Op: vm.OpJmpNZ, Target: o.index})
				} else {
					errs.add(pos, "unmatched ']'")
					p = append(p, vm.Instruction{Op: vm.OpJmpNZ})
				}
			default:
				p = append(p, vm.Instruction{Op: op})
			}
		}
		pos.Offset++
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	for _, o := range open {
		errs.add(o.pos, "unmatched '['")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return p, nil
}
