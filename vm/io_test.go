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

package vm_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/bf/vm"
	"github.com/pkg/errors"
)

func Test_io_EOFPolicies(t *testing.T) {
	var policies = [...]struct {
		name   string
		policy vm.EOFPolicy
		out    string
	}{
		{"zero", vm.EOFZero, "\x00"},
		{"max", vm.EOFMax, "\xff"},
		{"hold", vm.EOFHold, "\x01"},
	}
	for _, test := range policies {
		// the cell is set to 1 first so that all three policies produce
		// distinct results on empty input
		i, b := setup(t, test.name, "+,.", "", vm.EOF(test.policy))
		if err := i.Run(); err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if b.String() != test.out {
			t.Errorf("%s: expected %q, got %q", test.name, test.out, b.String())
		}
	}
}

func Test_io_EOFMidStream(t *testing.T) {
	i, b := setup(t, "midstream", ",.,.", "A")
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if b.String() != "A\x00" {
		t.Errorf("expected %q, got %q", "A\x00", b.String())
	}
}

func Test_io_NilInput(t *testing.T) {
	i, err := vm.New(compile(t, "nilin", "+,"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if i.Tape[0] != 0 {
		t.Errorf("expected cell 0 zeroed on nil input, got %d", i.Tape[0])
	}
}

func Test_io_PushInput(t *testing.T) {
	// the reader pushed last is consumed first
	i, b := setup(t, "stacked", ",.,.,.", "C", vm.Input(strings.NewReader("AB")))
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if b.String() != "ABC" {
		t.Errorf("expected %q, got %q", "ABC", b.String())
	}
}

// flushProbe records how much output had reached the underlying buffer when
// the program asked for input.
type flushProbe struct {
	out     *bytes.Buffer
	visible int
}

func (r *flushProbe) Read(p []byte) (int, error) {
	r.visible = r.out.Len()
	p[0] = 'x'
	return 1, nil
}

func Test_io_FlushBeforeRead(t *testing.T) {
	var out bytes.Buffer
	probe := &flushProbe{out: &out}
	i, err := vm.New(compile(t, "flush", "+.,"),
		vm.Input(probe),
		vm.Output(bufio.NewWriter(&out)))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if probe.visible != 1 {
		t.Errorf("expected 1 byte flushed before read, got %d", probe.visible)
	}
	if i.Tape[0] != 'x' {
		t.Errorf("expected cell 0 = 'x', got %d", i.Tape[0])
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func Test_io_WriteError(t *testing.T) {
	i, err := vm.New(compile(t, "werr", "+."), vm.Output(failWriter{}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	err = i.Run()
	if err == nil {
		t.Fatal("expected a write error")
	}
	if i.PC != 1 {
		t.Errorf("PC: expected 1, got %d", i.PC)
	}
}

type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errors.New("io timeout")
}

func Test_io_ReadError(t *testing.T) {
	// a real read error is not EOF and must stop the machine
	i, err := vm.New(compile(t, "rerr", ","), vm.Input(failReader{}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err = i.Run(); err == nil {
		t.Fatal("expected a read error")
	}
}
