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

package vm

import (
	"io"

	"github.com/pkg/errors"
)

// Cell is the type of a tape cell. Cell arithmetic wraps modulo 256.
type Cell uint8

// DefaultTapeSize is the default tape size in cells.
const DefaultTapeSize = 8192

// EOFPolicy selects what a read instruction does once program input is
// exhausted. The language has no end-of-file instruction, so the policy must
// be fixed up front.
type EOFPolicy int

// Supported EOF policies.
const (
	EOFZero EOFPolicy = iota // store 0 in the current cell
	EOFMax                   // store 255 in the current cell
	EOFHold                  // leave the current cell unchanged
)

// Instance represents a bf virtual machine instance.
type Instance struct {
	PC       int    // Program Counter
	Cursor   int    // tape cursor
	Tape     []Cell // data tape
	prog     Program
	insCount int64
	input    io.ByteReader
	output   byteWriter
	eof      EOFPolicy
}

// Option interface
type Option func(*Instance) error

// TapeSize sets the tape size. It will not erase the tape, but data may be
// lost if set to a smaller size. The default is DefaultTapeSize cells.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		t := make([]Cell, size)
		copy(t, i.Tape)
		i.Tape = t
		return nil
	}
}

// Input pushes the given reader on top of the input stack.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the program output stream. Output bytes are written raw;
// if w implements a Flush method, pending output is flushed before a read
// instruction blocks.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// EOF configures the input exhaustion policy. The default is EOFZero.
func EOF(p EOFPolicy) Option {
	return func(i *Instance) error {
		switch p {
		case EOFZero, EOFMax, EOFHold:
			i.eof = p
			return nil
		default:
			return errors.Errorf("unknown EOF policy %d", int(p))
		}
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new bf virtual machine instance that will execute program p.
//
// The program is usually built from source text with the companion package
// github.com/db47h/bf/code. The tape is created zeroed and the cursor and PC
// start at 0. Options will be set by calling SetOptions.
//
// A nil input makes every read instruction behave as if input were
// exhausted; a nil output silently discards written bytes.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{prog: p}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.Tape == nil {
		i.Tape = make([]Cell, DefaultTapeSize)
	}
	return i, nil
}

// Program returns the program executed by the instance. The returned slice
// must not be mutated.
func (i *Instance) Program() Program {
	return i.prog
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
