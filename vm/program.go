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

// Instruction is a single executable operation. Instructions are plain
// values; Target holds the resolved jump index and is meaningful only for
// OpJmpZ and OpJmpNZ.
type Instruction struct {
	Op     Op
	Target int
}

// Program is an executable instruction sequence. A Program is built once,
// with every loop delimiter pair cross-linked, and is never mutated during
// execution: instruction i of the program corresponds to the i-th
// instruction character of the filtered source.
type Program []Instruction
