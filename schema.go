// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

// This file is the schema registry: field handlers are a plain interface
// dispatch table rather than generated per-type code, with no use of
// generics — one PrimitiveCodec implementation per wire primitive kind,
// constructed with a pointer to the struct field it reads/writes.

// Record is implemented by every schema-described struct (database, troop,
// map, event command, ...). LcfFields returns the field table in ascending
// tag order, which is also the order fields are written on save.
type Record interface {
	LcfFields() []Field
}

// RecordArray adapts a concrete named slice type (e.g. a []TroopPage) to the
// generic array-of-record field handler, without requiring generics in the
// schema itself. A record type that owns a repeated sub-record field defines
// a small named slice type implementing this interface; see rpg/troop.go for
// the canonical example.
type RecordArray interface {
	Len() int
	At(i int) Record
	Append() Record
	Truncate(n int)
}

// Category says how a Field's wire payload should be interpreted.
type Category int

const (
	// CategoryPrimitive is a direct wire primitive (u8/u16/u32/varint/bool/
	// double/string/bytes/flags).
	CategoryPrimitive Category = iota

	// CategoryRecord is a nested record whose bytes are the chunk payload.
	CategoryRecord

	// CategoryArrayPrimitive is a packed sequence of primitives occupying
	// the whole chunk payload with no per-element framing.
	CategoryArrayPrimitive

	// CategoryArrayRecord is a length-prefixed (via a companion Size field)
	// concatenation of zero-tag-terminated sub-record chunk streams.
	CategoryArrayRecord
)

// Presence is a field's write-time persistence policy.
type Presence int

const (
	// Always persists the field unconditionally.
	Always Presence = iota

	// OmitIfDefault persists the field only if its current value differs
	// from its declared default.
	OmitIfDefault

	// SizeOfCompanion persists the field only if its companion array is
	// non-empty; the written value is always len(array), irrespective of
	// whatever sits in the struct slot.
	SizeOfCompanion
)

// PrimitiveCodec is the handler for one wire primitive kind, bound to a
// single struct field through the pointer it holds; the field constructor
// functions in fields.go (Int32Field, StringField, ...) create them.
type PrimitiveCodec interface {
	// ReadFrom decodes the field's value from a chunk payload already
	// bounded to exactly the declared length.
	ReadFrom(r *Reader) error

	// WriteTo encodes the field's current value. For CategoryArrayPrimitive
	// fields this writes every element with no per-element framing.
	WriteTo(w *Writer) error

	// IsDefault reports whether the field's current value equals its
	// declared default (used by the OmitIfDefault presence policy).
	IsDefault() bool

	// WriteXML renders the field's current value as XML mirror character
	// data, using the same Writer-side escaping rules as XMLWriter.WriteString
	// for any string-bearing codec.
	WriteXML(xw *XMLWriter)

	// ReadXML parses the field's value from XML mirror character data.
	ReadXML(s string) error
}

// Field is one persistable slot inside a Record.
type Field struct {
	Tag      int
	Name     string
	Category Category
	Presence Presence

	// Prim is set for CategoryPrimitive and CategoryArrayPrimitive fields.
	Prim PrimitiveCodec

	// Rec is set for CategoryRecord fields: the nested record instance to
	// recurse into (its pointer receiver already bound by the owning
	// struct).
	Rec Record

	// Arr is set for CategoryArrayRecord fields.
	Arr RecordArray

	// SizeTag is the wire tag of the companion Size(T) chunk that precedes
	// a CategoryArrayRecord field's own chunk. Zero only appears as a
	// genuine wire tag for the terminator, so record schemas number their
	// first real field starting at 1; SizeTag == 0 on an ArrayRecord field
	// is therefore never valid and indicates a schema bug.
	SizeTag int

	// ZeroTerminated marks a CategoryRecord or CategoryArrayRecord element
	// sub-stream as ending at a zero-tag sentinel rather than at the end of
	// a length-bounded slice. Whether a given record needs this is a
	// per-record/per-field property, set explicitly at the call site.
	ZeroTerminated bool
}
