// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer is the byte-stream back end of the codec. BeginChunk/EndChunk
// implement a scoped payload whose length is back-patched on end chunk,
// using a stack of temporary buffers: a chunk's length prefix must be
// written before its payload, but the payload's length (for a nested record
// or an array of records) is only known once that payload has been fully
// produced. Writing into a fresh buffer and splicing it into the parent
// once closed gives us the back-patch without seeking.
type Writer struct {
	stack    []*bytes.Buffer
	encoding string
}

// NewWriter constructs a Writer that transcodes string fields from UTF-8 to
// encoding (the container's native codepage) on write.
func NewWriter(encoding string) *Writer {
	w := &Writer{encoding: encoding}
	w.stack = []*bytes.Buffer{{}}
	return w
}

func (w *Writer) top() *bytes.Buffer {
	return w.stack[len(w.stack)-1]
}

// Bytes returns the fully assembled output. Valid only once every
// BeginChunk has a matching EndChunk.
func (w *Writer) Bytes() []byte {
	return w.top().Bytes()
}

// WriteBytes writes raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) {
	w.top().Write(b)
}

// WriteU8 writes one unsigned 8-bit integer.
func (w *Writer) WriteU8(v uint8) {
	w.top().WriteByte(v)
}

// WriteBool writes one boolean as wire byte 0/1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

// WriteU16 writes one little-endian unsigned 16-bit integer.
func (w *Writer) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.top().Write(b[:])
}

// WriteI16 writes one little-endian signed 16-bit integer.
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

// WriteU32 writes one little-endian unsigned 32-bit integer.
func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.top().Write(b[:])
}

// WriteI32 writes one little-endian signed 32-bit integer.
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

// WriteDouble writes one little-endian IEEE-754 double.
func (w *Writer) WriteDouble(v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	w.top().Write(b[:])
}

// WriteVarint writes one variable-length integer (see varint.go).
func (w *Writer) WriteVarint(v uint32) {
	var tmp []byte
	tmp = appendVarint(tmp, v)
	w.top().Write(tmp)
}

// WriteString transcodes s from UTF-8 to the writer's native codepage and
// writes the resulting bytes verbatim (no length prefix: the caller emits
// that as the enclosing chunk's length).
func (w *Writer) WriteString(s string) error {
	if s == "" {
		return nil
	}
	b, err := FromUTF8(s, w.encoding)
	if err != nil {
		return err
	}
	w.WriteBytes(b)
	return nil
}

// BeginChunk opens a new scoped payload buffer. Every BeginChunk must be
// matched by exactly one EndChunk(tag), which back-patches the tag and
// length prefix into the parent buffer.
func (w *Writer) BeginChunk() {
	w.stack = append(w.stack, &bytes.Buffer{})
}

// EndChunk closes the innermost open chunk, splicing `tag, varint(len),
// payload` into the new top of the stack.
func (w *Writer) EndChunk(tag int) {
	payload := w.stack[len(w.stack)-1].Bytes()
	w.stack = w.stack[:len(w.stack)-1]
	parent := w.top()
	var hdr []byte
	hdr = appendVarint(hdr, uint32(tag))
	hdr = appendVarint(hdr, uint32(len(payload)))
	parent.Write(hdr)
	parent.Write(payload)
}
