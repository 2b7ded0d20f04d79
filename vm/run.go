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

import "github.com/pkg/errors"

// ErrTapeBounds is the cause of errors returned when a move instruction
// would take the cursor out of the tape.
var ErrTapeBounds = errors.New("cursor out of tape bounds")

// Step executes the instruction at the current PC, then increments the PC.
//
// The increment is unconditional: a taken jump sets the PC to the matching
// loop delimiter and the increment moves it one past. OpJmpZ therefore
// targets the matching ']' (the increment exits the loop) and OpJmpNZ the
// matching '[' (the increment re-enters the loop body).
//
// If an error occurs, the PC is left pointing at the instruction that
// triggered it.
func (i *Instance) Step() error {
	ins := i.prog[i.PC]
	switch ins.Op {
	case OpRight:
		if i.Cursor+1 >= len(i.Tape) {
			return errors.Wrapf(ErrTapeBounds, "move right from cell %d", i.Cursor)
		}
		i.Cursor++
	case OpLeft:
		if i.Cursor == 0 {
			return errors.Wrap(ErrTapeBounds, "move left from cell 0")
		}
		i.Cursor--
	case OpInc:
		i.Tape[i.Cursor]++
	case OpDec:
		i.Tape[i.Cursor]--
	case OpOut:
		if err := i.writeCell(); err != nil {
			return err
		}
	case OpIn:
		if err := i.readCell(); err != nil {
			return err
		}
	case OpJmpZ:
		if i.Tape[i.Cursor] == 0 {
			i.PC = ins.Target
		}
	case OpJmpNZ:
		if i.Tape[i.Cursor] != 0 {
			i.PC = ins.Target
		}
	}
	i.PC++
	i.insCount++
	return nil
}

// Run starts execution of the VM and returns when the PC runs off the end of
// the program; this is the machine's only halt condition. A program stuck in
// a loop with no I/O will keep Run busy forever.
//
// If an error occurs, the PC will point to the instruction that triggered
// the error.
func (i *Instance) Run() error {
	for i.PC < len(i.prog) {
		if err := i.Step(); err != nil {
			return errors.Wrapf(err, "pc=%d", i.PC)
		}
	}
	return nil
}
