// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"encoding/hex"
	"strconv"
)

// Constructors for the primitive field kinds: signed and unsigned 8/16/32-bit
// integers, a variable-length integer, a boolean, an IEEE-754 double, a
// locale string, a raw byte blob, and a bit-flag set. Each constructor
// returns a ready-to-use Field so record schemas can build their LcfFields()
// table as a flat literal (see rpg/database.go).

// -- scalar primitives --------------------------------------------------

type int32Codec struct {
	ptr *int32
	def int32
}

func (c *int32Codec) ReadFrom(r *Reader) error { v, err := r.ReadI32(); c.set(v); return err }
func (c *int32Codec) set(v int32)              { *c.ptr = v }
func (c *int32Codec) WriteTo(w *Writer) error  { w.WriteI32(*c.ptr); return nil }
func (c *int32Codec) IsDefault() bool          { return *c.ptr == c.def }
func (c *int32Codec) ApplyDefault()            { *c.ptr = c.def }
func (c *int32Codec) SetZeroValue()            { *c.ptr = 0 }
func (c *int32Codec) WriteXML(xw *XMLWriter)   { xw.WriteInt(int64(*c.ptr)) }
func (c *int32Codec) ReadXML(s string) error   { v, err := strconv.ParseInt(s, 10, 32); *c.ptr = int32(v); return err }

// Int32Field declares a signed 32-bit integer field.
func Int32Field(tag int, name string, ptr *int32, def int32, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &int32Codec{ptr: ptr, def: def}}
}

type uint32Codec struct {
	ptr *uint32
	def uint32
}

func (c *uint32Codec) ReadFrom(r *Reader) error { v, err := r.ReadU32(); *c.ptr = v; return err }
func (c *uint32Codec) WriteTo(w *Writer) error  { w.WriteU32(*c.ptr); return nil }
func (c *uint32Codec) IsDefault() bool          { return *c.ptr == c.def }
func (c *uint32Codec) ApplyDefault()            { *c.ptr = c.def }
func (c *uint32Codec) SetZeroValue()            { *c.ptr = 0 }
func (c *uint32Codec) WriteXML(xw *XMLWriter)   { xw.WriteUint(uint64(*c.ptr)) }
func (c *uint32Codec) ReadXML(s string) error   { v, err := strconv.ParseUint(s, 10, 32); *c.ptr = uint32(v); return err }

// UInt32Field declares an unsigned 32-bit integer field.
func UInt32Field(tag int, name string, ptr *uint32, def uint32, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &uint32Codec{ptr: ptr, def: def}}
}

type int16Codec struct {
	ptr *int16
	def int16
}

func (c *int16Codec) ReadFrom(r *Reader) error { v, err := r.ReadI16(); *c.ptr = v; return err }
func (c *int16Codec) WriteTo(w *Writer) error  { w.WriteI16(*c.ptr); return nil }
func (c *int16Codec) IsDefault() bool          { return *c.ptr == c.def }
func (c *int16Codec) ApplyDefault()            { *c.ptr = c.def }
func (c *int16Codec) SetZeroValue()            { *c.ptr = 0 }
func (c *int16Codec) WriteXML(xw *XMLWriter)   { xw.WriteInt(int64(*c.ptr)) }
func (c *int16Codec) ReadXML(s string) error   { v, err := strconv.ParseInt(s, 10, 16); *c.ptr = int16(v); return err }

// Int16Field declares a signed 16-bit integer field.
func Int16Field(tag int, name string, ptr *int16, def int16, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &int16Codec{ptr: ptr, def: def}}
}

type uint16Codec struct {
	ptr *uint16
	def uint16
}

func (c *uint16Codec) ReadFrom(r *Reader) error { v, err := r.ReadU16(); *c.ptr = v; return err }
func (c *uint16Codec) WriteTo(w *Writer) error  { w.WriteU16(*c.ptr); return nil }
func (c *uint16Codec) IsDefault() bool          { return *c.ptr == c.def }
func (c *uint16Codec) ApplyDefault()            { *c.ptr = c.def }
func (c *uint16Codec) SetZeroValue()            { *c.ptr = 0 }
func (c *uint16Codec) WriteXML(xw *XMLWriter)   { xw.WriteUint(uint64(*c.ptr)) }
func (c *uint16Codec) ReadXML(s string) error   { v, err := strconv.ParseUint(s, 10, 16); *c.ptr = uint16(v); return err }

// UInt16Field declares an unsigned 16-bit integer field.
func UInt16Field(tag int, name string, ptr *uint16, def uint16, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &uint16Codec{ptr: ptr, def: def}}
}

type uint8Codec struct {
	ptr *uint8
	def uint8
}

func (c *uint8Codec) ReadFrom(r *Reader) error { v, err := r.ReadU8(); *c.ptr = v; return err }
func (c *uint8Codec) WriteTo(w *Writer) error  { w.WriteU8(*c.ptr); return nil }
func (c *uint8Codec) IsDefault() bool          { return *c.ptr == c.def }
func (c *uint8Codec) ApplyDefault()            { *c.ptr = c.def }
func (c *uint8Codec) SetZeroValue()            { *c.ptr = 0 }
func (c *uint8Codec) WriteXML(xw *XMLWriter)   { xw.WriteUint(uint64(*c.ptr)) }
func (c *uint8Codec) ReadXML(s string) error   { v, err := strconv.ParseUint(s, 10, 8); *c.ptr = uint8(v); return err }

// UInt8Field declares an unsigned 8-bit integer field.
func UInt8Field(tag int, name string, ptr *uint8, def uint8, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &uint8Codec{ptr: ptr, def: def}}
}

// VarintField declares a variable-length-integer field stored in memory as
// a plain int32 (the wire format is always varint regardless of magnitude;
// this is the encoding used for most "count"/"id" style fields in the
// original schema, as opposed to the fixed-width Int32Field above which is
// reserved for fields the original format fixes at 4 bytes on the wire).
type varintCodec struct {
	ptr *int32
	def int32
}

func (c *varintCodec) ReadFrom(r *Reader) error {
	v, err := r.ReadVarint()
	if err != nil {
		return err
	}
	*c.ptr = int32(v)
	return nil
}
func (c *varintCodec) WriteTo(w *Writer) error { w.WriteVarint(uint32(*c.ptr)); return nil }
func (c *varintCodec) IsDefault() bool         { return *c.ptr == c.def }
func (c *varintCodec) ApplyDefault()            { *c.ptr = c.def }
func (c *varintCodec) SetZeroValue()            { *c.ptr = 0 }
func (c *varintCodec) WriteXML(xw *XMLWriter)  { xw.WriteInt(int64(*c.ptr)) }
func (c *varintCodec) ReadXML(s string) error  { v, err := strconv.ParseInt(s, 10, 32); *c.ptr = int32(v); return err }

// VarintField declares a field stored on the wire as a variable-length
// integer.
func VarintField(tag int, name string, ptr *int32, def int32, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &varintCodec{ptr: ptr, def: def}}
}

type boolCodec struct {
	ptr *bool
	def bool
}

func (c *boolCodec) ReadFrom(r *Reader) error { v, err := r.ReadBool(); *c.ptr = v; return err }
func (c *boolCodec) WriteTo(w *Writer) error  { w.WriteBool(*c.ptr); return nil }
func (c *boolCodec) IsDefault() bool          { return *c.ptr == c.def }
func (c *boolCodec) ApplyDefault()            { *c.ptr = c.def }
func (c *boolCodec) SetZeroValue()            { *c.ptr = false }
func (c *boolCodec) WriteXML(xw *XMLWriter)   { xw.WriteBool(*c.ptr) }
func (c *boolCodec) ReadXML(s string) error   { *c.ptr = parseXMLBool(s); return nil }

// BoolField declares a boolean field (wire byte 0/1).
func BoolField(tag int, name string, ptr *bool, def bool, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &boolCodec{ptr: ptr, def: def}}
}

type doubleCodec struct {
	ptr *float64
	def float64
}

func (c *doubleCodec) ReadFrom(r *Reader) error { v, err := r.ReadDouble(); *c.ptr = v; return err }
func (c *doubleCodec) WriteTo(w *Writer) error  { w.WriteDouble(*c.ptr); return nil }
func (c *doubleCodec) IsDefault() bool          { return *c.ptr == c.def }
func (c *doubleCodec) ApplyDefault()            { *c.ptr = c.def }
func (c *doubleCodec) SetZeroValue()            { *c.ptr = 0 }
func (c *doubleCodec) WriteXML(xw *XMLWriter)   { xw.WriteFloat(*c.ptr) }
func (c *doubleCodec) ReadXML(s string) error   { v, err := strconv.ParseFloat(s, 64); *c.ptr = v; return err }

// DoubleField declares an IEEE-754 double field.
func DoubleField(tag int, name string, ptr *float64, def float64, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &doubleCodec{ptr: ptr, def: def}}
}

type stringCodec struct {
	ptr *string
	def string
}

func (c *stringCodec) ReadFrom(r *Reader) error {
	s, err := r.ReadString(r.Len())
	*c.ptr = s
	return err
}
func (c *stringCodec) WriteTo(w *Writer) error { return w.WriteString(*c.ptr) }
func (c *stringCodec) IsDefault() bool         { return *c.ptr == c.def }
func (c *stringCodec) WriteXML(xw *XMLWriter)  { xw.WriteString(*c.ptr) }
func (c *stringCodec) ReadXML(s string) error {
	// XMLWriter.WriteString indents the line after every embedded newline;
	// the spaces at the start of each continuation line are dropped here,
	// including any that were part of the original string.
	b := make([]byte, 0, len(s))
	skip := false
	for i := 0; i < len(s); i++ {
		if skip && s[i] == ' ' {
			continue
		}
		skip = s[i] == '\n'
		b = append(b, s[i])
	}
	*c.ptr = unescapePUA(string(b))
	return nil
}

// StringField declares a locale-string field: in memory it is always valid
// UTF-8; on the wire it is transcoded to the stream's native codepage.
func StringField(tag int, name string, ptr *string, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &stringCodec{ptr: ptr, def: ""}}
}

type bytesCodec struct {
	ptr *[]byte
}

func (c *bytesCodec) ReadFrom(r *Reader) error {
	b, err := r.ReadBytes(r.Len())
	*c.ptr = append([]byte(nil), b...)
	return err
}
func (c *bytesCodec) WriteTo(w *Writer) error { w.WriteBytes(*c.ptr); return nil }
func (c *bytesCodec) IsDefault() bool         { return len(*c.ptr) == 0 }
func (c *bytesCodec) WriteXML(xw *XMLWriter)  { xw.WriteString(hex.EncodeToString(*c.ptr)) }
func (c *bytesCodec) ReadXML(s string) error {
	b, err := hex.DecodeString(s)
	*c.ptr = b
	return err
}

// BytesField declares a raw byte-blob field (e.g. a tile-layer bitmap).
func BytesField(tag int, name string, ptr *[]byte, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &bytesCodec{ptr: ptr}}
}

// flagsCodec is the bit-flag-set primitive: a slice of bool, one bit (one
// wire byte, per the original's vector<bool> writer in writer_lcf.cpp) per
// flag, in declared order.
type flagsCodec struct {
	ptr *[]bool
}

func (c *flagsCodec) ReadFrom(r *Reader) error {
	n := r.Len()
	vals := make([]bool, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadBool()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	*c.ptr = vals
	return nil
}
func (c *flagsCodec) WriteTo(w *Writer) error {
	for _, v := range *c.ptr {
		w.WriteBool(v)
	}
	return nil
}
func (c *flagsCodec) IsDefault() bool     { return len(*c.ptr) == 0 }
func (c *flagsCodec) WriteXML(xw *XMLWriter) { xw.WriteBoolSlice(*c.ptr) }
func (c *flagsCodec) ReadXML(s string) error {
	*c.ptr = parseXMLBoolSlice(s)
	return nil
}

// FlagsField declares a bit-flag-set field.
func FlagsField(tag int, name string, ptr *[]bool, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryPrimitive, Presence: presence,
		Prim: &flagsCodec{ptr: ptr}}
}

// -- array-of-primitive -------------------------------------------------

type int32ArrayCodec struct {
	ptr *[]int32
}

func (c *int32ArrayCodec) ReadFrom(r *Reader) error {
	n := r.Len() / 4
	vals := make([]int32, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadI32()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	*c.ptr = vals
	return nil
}
func (c *int32ArrayCodec) WriteTo(w *Writer) error {
	for _, v := range *c.ptr {
		w.WriteI32(v)
	}
	return nil
}
func (c *int32ArrayCodec) IsDefault() bool { return len(*c.ptr) == 0 }
func (c *int32ArrayCodec) WriteXML(xw *XMLWriter) {
	ints := make([]int, len(*c.ptr))
	for i, v := range *c.ptr {
		ints[i] = int(v)
	}
	xw.WriteIntSlice(ints)
}
func (c *int32ArrayCodec) ReadXML(s string) error {
	ints := parseXMLIntSlice(s)
	vals := make([]int32, len(ints))
	for i, v := range ints {
		vals[i] = int32(v)
	}
	*c.ptr = vals
	return nil
}

// Int32ArrayField declares an Array(Primitive int32) field: a packed
// sequence with no per-element framing, element count implied by
// payload-length / 4.
func Int32ArrayField(tag int, name string, ptr *[]int32, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryArrayPrimitive, Presence: presence,
		Prim: &int32ArrayCodec{ptr: ptr}}
}

type uint8ArrayCodec struct {
	ptr *[]uint8
}

func (c *uint8ArrayCodec) ReadFrom(r *Reader) error {
	b, err := r.ReadBytes(r.Len())
	*c.ptr = append([]uint8(nil), b...)
	return err
}
func (c *uint8ArrayCodec) WriteTo(w *Writer) error { w.WriteBytes(*c.ptr); return nil }
func (c *uint8ArrayCodec) IsDefault() bool         { return len(*c.ptr) == 0 }
func (c *uint8ArrayCodec) WriteXML(xw *XMLWriter)  { xw.WriteString(hex.EncodeToString(*c.ptr)) }
func (c *uint8ArrayCodec) ReadXML(s string) error {
	b, err := hex.DecodeString(s)
	*c.ptr = b
	return err
}

// UInt8ArrayField declares an Array(Primitive uint8) field (e.g. a tile
// layer's chip-id-per-tile grid, stored as one byte per tile).
func UInt8ArrayField(tag int, name string, ptr *[]uint8, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryArrayPrimitive, Presence: presence,
		Prim: &uint8ArrayCodec{ptr: ptr}}
}

type uint16ArrayCodec struct {
	ptr *[]uint16
}

func (c *uint16ArrayCodec) ReadFrom(r *Reader) error {
	n := r.Len() / 2
	vals := make([]uint16, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadU16()
		if err != nil {
			return err
		}
		vals[i] = v
	}
	*c.ptr = vals
	return nil
}
func (c *uint16ArrayCodec) WriteTo(w *Writer) error {
	for _, v := range *c.ptr {
		w.WriteU16(v)
	}
	return nil
}
func (c *uint16ArrayCodec) IsDefault() bool { return len(*c.ptr) == 0 }
func (c *uint16ArrayCodec) WriteXML(xw *XMLWriter) {
	ints := make([]int, len(*c.ptr))
	for i, v := range *c.ptr {
		ints[i] = int(v)
	}
	xw.WriteIntSlice(ints)
}
func (c *uint16ArrayCodec) ReadXML(s string) error {
	ints := parseXMLIntSlice(s)
	vals := make([]uint16, len(ints))
	for i, v := range ints {
		vals[i] = uint16(v)
	}
	*c.ptr = vals
	return nil
}

// UInt16ArrayField declares an Array(Primitive uint16) field (e.g. a
// higher-chipset-range tile layer).
func UInt16ArrayField(tag int, name string, ptr *[]uint16, presence Presence) Field {
	return Field{Tag: tag, Name: name, Category: CategoryArrayPrimitive, Presence: presence,
		Prim: &uint16ArrayCodec{ptr: ptr}}
}

// -- nested record / array-of-record ------------------------------------

// RecordField declares a Record(T) field: a nested record whose bytes are
// the chunk payload.
func RecordField(tag int, name string, rec Record, presence Presence, zeroTerminated bool) Field {
	return Field{Tag: tag, Name: name, Category: CategoryRecord, Presence: presence,
		Rec: rec, ZeroTerminated: zeroTerminated}
}

// RecordArrayField declares the (Size, Array) pair of an Array(Record T)
// field. sizeTag is the companion Size(T) chunk's tag; tag is the array
// chunk's own tag. Both chunks are always emitted together (the size chunk
// only when non-empty, immediately preceding the array chunk).
func RecordArrayField(sizeTag, tag int, name string, arr RecordArray) Field {
	return Field{Tag: tag, Name: name, Category: CategoryArrayRecord, Presence: SizeOfCompanion,
		Arr: arr, SizeTag: sizeTag, ZeroTerminated: true}
}
