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
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/bf/code"
	"github.com/db47h/bf/vm"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type eofPolicy vm.EOFPolicy

func (p *eofPolicy) String() string {
	switch vm.EOFPolicy(*p) {
	case vm.EOFMax:
		return "max"
	case vm.EOFHold:
		return "hold"
	default:
		return "zero"
	}
}

func (p *eofPolicy) Set(s string) error {
	switch s {
	case "zero":
		*p = eofPolicy(vm.EOFZero)
	case "max":
		*p = eofPolicy(vm.EOFMax)
	case "hold":
		*p = eofPolicy(vm.EOFHold)
	default:
		return fmt.Errorf("unknown EOF policy %q", s)
	}
	return nil
}

func (p *eofPolicy) Get() interface{} { return vm.EOFPolicy(*p) }

var (
	noRawIO bool
	debug   bool
	dump    bool
	list    bool
	hexOut  bool
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] file\n", os.Args[0])
	flag.PrintDefaults()
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v, Cursor: %v, Steps: %v\n",
			i.PC, i.Cursor, i.InstructionCount())
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	var withFiles fileList
	eof := eofPolicy(vm.EOFZero)

	var size = flag.Int("size", vm.DefaultTapeSize, "tape size in cells")
	flag.BoolVar(&dump, "dump", false, "dump cursor, pc and used tape upon exit")
	flag.BoolVar(&list, "list", false, "list the compiled program instead of running it")
	flag.BoolVar(&hexOut, "hex", false, "write each output byte as two hex digits instead of raw")
	flag.Var(&withFiles, "with", "add `filename` to the program input list (can be specified multiple times)")
	flag.Var(&eof, "eof", "input exhaustion policy: zero, max or hold")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Usage = usage

	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && dump {
			err = dumpVM(i, os.Stdout)
		}
		atExit(i, err)
	}()

	var src []byte
	src, err = code.LoadFile(flag.Arg(0))
	if err != nil {
		return
	}
	var p vm.Program
	p, err = code.Compile(flag.Arg(0), src)
	if err != nil {
		return
	}

	if list {
		err = code.DisassembleAll(p, stdout)
		return
	}

	var output io.Writer = stdout
	if hexOut {
		output = newHexWriter(stdout)
	}

	var opts = []vm.Option{
		vm.TapeSize(*size),
		vm.Output(output),
		vm.EOF(vm.EOFPolicy(eof)),
	}

	// try to switch the terminal to raw mode so that ',' reads single
	// unbuffered bytes. If stdin is redirected this fails silently and the
	// standard buffered behavior is sufficient.
	if !noRawIO {
		if tearDown, e := setRawIO(); e == nil {
			defer tearDown()
		}
	}
	opts = append(opts, vm.Input(os.Stdin))

	// append -with files to the input stack in reverse order so that they
	// are consumed in order of appearance on the command line, before stdin.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			return
		}
		defer f.Close()
		opts = append(opts, vm.Input(bufio.NewReader(f)))
	}

	i, err = vm.New(p, opts...)
	if err != nil {
		return
	}
	err = i.Run()
}
