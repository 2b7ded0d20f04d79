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

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/bf/internal/bfi"
	"github.com/db47h/bf/vm"
)

// dumpVM dumps the machine counters and the used tape prefix to the
// specified io.Writer. Trailing zero cells are not dumped.
func dumpVM(i *vm.Instance, w io.Writer) error {
	if i == nil {
		return nil
	}
	ew := bfi.NewErrWriter(w)
	fmt.Fprintf(ew, "cursor: %d pc: %d steps: %d\n", i.Cursor, i.PC, i.InstructionCount())
	end := len(i.Tape)
	for end > 0 && i.Tape[end-1] == 0 {
		end--
	}
	for n := 0; n < end; n++ {
		if n > 0 {
			ew.Write([]byte{' '})
		}
		io.WriteString(ew, strconv.Itoa(int(i.Tape[n])))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
