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

// Package code translates brainfuck source text into executable programs
// for the virtual machine in package github.com/db47h/bf/vm.
//
// Brainfuck source is a plain byte stream. The eight characters '+', '-',
// '>', '<', '.', ',', '[' and ']' are instructions; every other byte is a
// comment and is dropped. Compile
// filters the source and resolves loop delimiters in a single left-to-right
// pass over an auxiliary stack of '[' indices: when a ']' is read, the most
// recently opened '[' is popped and the two instructions are cross-linked
// with each other's index as jump target. The resulting program needs no
// bracket scanning at run time.
//
// Unlike most brainfuck runtimes, Compile validates loop delimiters: a ']'
// with no open '[' and a '[' left open at end of input are both hard errors.
// Such errors carry the source position of the offending delimiter and are
// collected into an ErrCompile list; no program is returned on error.
//
// The package also provides a disassembler for compiled programs, mostly
// useful to inspect resolved jump targets.
package code
