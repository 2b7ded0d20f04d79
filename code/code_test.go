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

package code_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/bf/code"
	"github.com/db47h/bf/vm"
)

func TestFilter(t *testing.T) {
	src := "add two cells: ,>,< [->+<] >.\n"
	want := ",>,<[->+<]>."
	if got := string(code.Filter([]byte(src))); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := code.Filter([]byte("no instructions in here")); len(got) != 0 {
		t.Errorf("expected an empty filter result, got %q", got)
	}
}

var wellFormed = []string{
	"[]",
	"[[]]",
	"[][]",
	"+[>[-]<]",
	"++[>++[>+<-]<-]",
	"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]" +
		">>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
}

// every jump must point past itself at its matching delimiter, and the
// matching delimiter must point back.
func TestCompile_targets(t *testing.T) {
	for _, src := range wellFormed {
		p, err := code.Compile("targets", []byte(src))
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if len(p) != len(code.Filter([]byte(src))) {
			t.Errorf("%s: program length %d != filtered length %d", src, len(p), len(code.Filter([]byte(src))))
		}
		for n, ins := range p {
			switch ins.Op {
			case vm.OpJmpZ:
				if ins.Target <= n {
					t.Errorf("%s: jz at %d: target %d does not point past it", src, n, ins.Target)
				}
				if m := p[ins.Target]; m.Op != vm.OpJmpNZ || m.Target != n {
					t.Errorf("%s: jz at %d: bad match %v %d", src, n, m.Op, m.Target)
				}
			case vm.OpJmpNZ:
				if m := p[ins.Target]; m.Op != vm.OpJmpZ || m.Target != n {
					t.Errorf("%s: jnz at %d: bad match %v %d", src, n, m.Op, m.Target)
				}
			}
		}
	}
}

func TestCompile_empty(t *testing.T) {
	for _, src := range []string{"", "just a comment\n"} {
		p, err := code.Compile("empty", []byte(src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if len(p) != 0 {
			t.Errorf("%q: expected a zero-length program, got %d instructions", src, len(p))
		}
	}
}

// check that compile errors point at the offending delimiter.
func TestCompile_errors(t *testing.T) {
	var errTests = [...]struct {
		name string
		src  string
		msgs []string
	}{
		{"close", "]", []string{"1:1: unmatched ']'"}},
		{"open", "[", []string{"1:1: unmatched '['"}},
		{"leftover", "++[>[-]<", []string{"1:3: unmatched '['"}},
		{"multiline", "+[\n]]", []string{"2:2: unmatched ']'"}},
		{"both", "]+[", []string{"1:1: unmatched ']'", "1:3: unmatched '['"}},
	}
	for _, test := range errTests {
		p, err := code.Compile(test.name, []byte(test.src))
		if p != nil {
			t.Errorf("%s: got a program despite errors", test.name)
		}
		errs, ok := err.(code.ErrCompile)
		if !ok {
			t.Errorf("%s: expected ErrCompile, got %T", test.name, err)
			continue
		}
		if len(errs) != len(test.msgs) {
			t.Errorf("%s: expected %d errors, got %d: %v", test.name, len(test.msgs), len(errs), err)
			continue
		}
		for n, e := range errs {
			if want := test.name + ":" + test.msgs[n]; e.Error() != want {
				t.Errorf("%s: expected %q, got %q", test.name, want, e.Error())
			}
		}
	}
}

func TestCompile_errorCap(t *testing.T) {
	_, err := code.Compile("cap", bytes.Repeat([]byte{']'}, 20))
	errs, ok := err.(code.ErrCompile)
	if !ok {
		t.Fatalf("expected ErrCompile, got %T", err)
	}
	if len(errs) != 10 {
		t.Errorf("expected 10 errors, got %d", len(errs))
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.b")
	if err := os.WriteFile(fn, []byte("+."), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := code.LoadFile(fn)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if string(src) != "+." {
		t.Errorf("expected %q, got %q", "+.", src)
	}
	if _, err = code.LoadFile(filepath.Join(t.TempDir(), "nope.b")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDisassembleAll(t *testing.T) {
	p, err := code.Compile("dis", []byte("+[-]."))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = code.DisassembleAll(p, &b); err != nil {
		t.Fatal(err)
	}
	want := "     0\tinc\n" +
		"     1\tjz 3\n" +
		"     2\tdec\n" +
		"     3\tjnz 1\n" +
		"     4\tout\n"
	if b.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, b.String())
	}
}
