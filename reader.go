// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"encoding/binary"
	"math"
)

// Reader is the byte-stream front end of the codec. It operates over an
// already-materialized byte slice rather than an io.Reader: the codec
// recurses into bounded sub-slices constantly (one per nested record, one
// per array element), and bounds-checking a slice offset is cheaper and
// simpler than layering io.LimitReader. This mirrors mmapping the whole
// input once and bounds-checking offsets into it, rather than reading
// incrementally from an os.File.
type Reader struct {
	buf      []byte
	pos      int
	encoding string // native codepage name, used to transcode string fields
}

// NewReader constructs a Reader over buf. encoding names the container's
// native codepage (as returned by CodepageToEncoding or detected via
// DetectEncoding); string fields are transcoded from this encoding to UTF-8.
func NewReader(buf []byte, encoding string) *Reader {
	return &Reader{buf: buf, encoding: encoding}
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// AtEnd reports whether the stream is exhausted.
func (r *Reader) AtEnd() bool { return r.pos >= len(r.buf) }

// Remaining returns the unread tail of the stream without consuming it, for
// callers that need to sample it (e.g. DetectEncoding on a façade's body)
// before decoding continues.
func (r *Reader) Remaining() []byte { return r.buf[r.pos:] }

// SetEncoding changes the native codepage used by subsequent ReadString
// calls; used by façades that must read a length-prefixed magic header
// before the body's encoding can be determined.
func (r *Reader) SetEncoding(encoding string) { r.encoding = encoding }

func (r *Reader) need(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return newError(Truncated, "need more bytes than remain in stream")
	}
	return nil
}

// ReadBytes reads exactly n raw bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// ReadU8 reads one unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadBool reads one boolean (wire 0/1, any nonzero byte is true).
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadU16 reads one little-endian unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadI16 reads one little-endian signed 16-bit integer.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads one little-endian unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadI32 reads one little-endian signed 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadDouble reads one little-endian IEEE-754 double.
func (r *Reader) ReadDouble() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// ReadVarint reads one variable-length integer (see varint.go).
func (r *Reader) ReadVarint() (uint32, error) {
	v, n, err := decodeVarint(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadString reads exactly n wire bytes and transcodes them from the
// stream's native codepage to UTF-8.
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	u, err := ToUTF8(b, r.encoding)
	if err != nil {
		return "", err
	}
	return u, nil
}

// Sub carves out a bounded child Reader over the next n bytes and advances
// past them, so that a recursive field handler can decode a nested record or
// array-of-record without being able to read past its own chunk payload.
func (r *Reader) Sub(n int) (*Reader, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return &Reader{buf: b, encoding: r.encoding}, nil
}
