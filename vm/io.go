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

type flusher interface {
	Flush() error
}

type byteWriter interface {
	io.Writer
	WriteByte(c byte) error
}

type byteWriterWrapper struct {
	io.Writer
}

func (w *byteWriterWrapper) WriteByte(c byte) (err error) {
	_, err = w.Writer.Write([]byte{c})
	return
}

func (w *byteWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements byteWriter or wraps it up into
// a byteWriterWrapper
func newWriter(w io.Writer) byteWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case byteWriter:
		return ww
	default:
		return &byteWriterWrapper{w}
	}
}

// byteReaderWrapper wraps a basic reader into an io.ByteReader and io.Closer
type byteReaderWrapper struct {
	io.Reader
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := r.Reader.Read(b[:])
		if n > 0 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (r *byteReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newByteReader(r io.Reader) io.ByteReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return rr
	default:
		return &byteReaderWrapper{r}
	}
}

type multiByteReader struct {
	readers []io.ByteReader
}

func (mr *multiByteReader) ReadByte() (c byte, err error) {
	for len(mr.readers) > 0 {
		c, err = mr.readers[0].ReadByte()
		if err != io.EOF {
			return c, err
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiByteReader) pushReader(r io.Reader) {
	mr.readers = append([]io.ByteReader{newByteReader(r)}, mr.readers...)
}

// PushInput sets r as the current program input for the VM. When this reader
// is exhausted, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = newByteReader(r)
	case *multiByteReader:
		in.pushReader(r)
	default:
		i.input = &multiByteReader{[]io.ByteReader{newByteReader(r), i.input}}
	}
}

// readCell reads one byte of program input into the current cell. On
// exhausted input the configured EOFPolicy is applied instead.
func (i *Instance) readCell() error {
	// make pending output (prompts) visible before the read blocks
	if err := i.flushOutput(); err != nil {
		return err
	}
	if i.input != nil {
		c, err := i.input.ReadByte()
		if err == nil {
			i.Tape[i.Cursor] = Cell(c)
			return nil
		}
		if err != io.EOF {
			return errors.Wrap(err, "input read failed")
		}
	}
	switch i.eof {
	case EOFZero:
		i.Tape[i.Cursor] = 0
	case EOFMax:
		i.Tape[i.Cursor] = 255
	case EOFHold:
		// leave the cell as is
	}
	return nil
}

// writeCell emits the current cell to program output.
func (i *Instance) writeCell() error {
	if i.output == nil {
		return nil
	}
	if err := i.output.WriteByte(byte(i.Tape[i.Cursor])); err != nil {
		return errors.Wrap(err, "output write failed")
	}
	return nil
}

func (i *Instance) flushOutput() error {
	if f, ok := i.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.Wrap(err, "output flush failed")
		}
	}
	return nil
}
