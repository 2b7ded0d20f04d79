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

import "strconv"

// Op is a brainfuck virtual machine opcode.
type Op int

// Brainfuck Virtual Machine Opcodes.
const (
	OpRight Op = iota // >
	OpLeft            // <
	OpInc             // +
	OpDec             // -
	OpOut             // .
	OpIn              // ,
	OpJmpZ            // [
	OpJmpNZ           // ]
)

var opNames = [...]string{
	"right",
	"left",
	"inc",
	"dec",
	"out",
	"in",
	"jz",
	"jnz",
}

var opChars = [...]byte{'>', '<', '+', '-', '.', ',', '[', ']'}

var opcodeIndex = make(map[byte]Op)

func init() {
	for i, c := range opChars {
		opcodeIndex[c] = Op(i)
	}
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// Char returns the source character for op.
func (op Op) Char() byte {
	if op < 0 || int(op) >= len(opChars) {
		return '?'
	}
	return opChars[op]
}

// OpForChar returns the opcode encoded by the source character c. The second
// return value is false if c is not one of the eight instruction characters.
func OpForChar(c byte) (Op, bool) {
	op, ok := opcodeIndex[c]
	return op, ok
}
