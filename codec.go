// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

// This file is the generic codec engine: a single pair of functions,
// ReadRecord/WriteRecord, drives every concrete record type in rpg/ through
// its LcfFields() table. There is deliberately no per-type generated code
// and no use of generics: dispatch is a type switch on Category plus an
// interface call into the Field's PrimitiveCodec or nested Record/RecordArray.

// UnknownChunk is a wire chunk whose tag did not match any field in a
// record's schema at decode time. Captured verbatim so re-encoding a
// document produced by a newer or differently-configured authoring tool
// does not silently drop data it does not understand.
type UnknownChunk struct {
	Tag     int
	Payload []byte
}

// unknownChunkSink is implemented by record types that want unrecognized
// chunks preserved across a read/write round trip. It is optional: record
// types that don't implement it simply drop unknown chunks on read and emit
// none on write.
type unknownChunkSink interface {
	SetUnknownChunks(chunks []UnknownChunk)
	UnknownChunks() []UnknownChunk
}

// defaultApplier is implemented by the scalar PrimitiveCodecs (int32Codec,
// varintCodec, boolCodec, ...), each of which resets its field to its
// declared default. ReadRecord applies it to every such field before
// decoding starts, so a field the wire omits under OmitIfDefault comes back
// as its declared default rather than as a zero value that happens to be
// wrong (e.g. Actor.FinalLevel's declared default is 99, not 0).
type defaultApplier interface {
	ApplyDefault()
}

// zeroValueSetter is implemented by scalar PrimitiveCodecs whose fixed wire
// width would otherwise make a zero-length chunk payload a Truncated error.
// Spec: "Zero-length chunk for a primitive field: interpreted as the type's
// zero value."
type zeroValueSetter interface {
	SetZeroValue()
}

// fieldIndex is the tag-keyed lookup table ReadRecord builds once per call
// from a Record's LcfFields().
type fieldIndex struct {
	byTag        map[int]*Field
	sizeTagOwner map[int]*Field
}

func buildFieldIndex(fields []Field) *fieldIndex {
	idx := &fieldIndex{
		byTag:        make(map[int]*Field, len(fields)),
		sizeTagOwner: make(map[int]*Field),
	}
	for i := range fields {
		f := &fields[i]
		idx.byTag[f.Tag] = f
		if f.Category == CategoryArrayRecord {
			idx.sizeTagOwner[f.SizeTag] = f
		}
	}
	return idx
}

// ReadRecord decodes rec's fields from r. zeroTerminated selects how the end
// of the record's own chunk stream is recognized: true means stop at a
// zero-tag sentinel (used for file-root records and for each element of an
// Array(Record T) field), false means stop when r is exhausted (used for a
// simple length-bounded Record(T) field, whose enclosing chunk length
// already demarcates it).
func ReadRecord(r *Reader, rec Record, zeroTerminated bool) error {
	fields := rec.LcfFields()
	for i := range fields {
		f := &fields[i]
		if f.Category == CategoryPrimitive || f.Category == CategoryArrayPrimitive {
			if da, ok := f.Prim.(defaultApplier); ok {
				da.ApplyDefault()
			}
		}
	}

	idx := buildFieldIndex(fields)
	pendingSizes := make(map[int]uint32)
	var unknown []UnknownChunk

	for {
		if zeroTerminated {
			if r.AtEnd() {
				return newError(Truncated, "record truncated before zero-tag terminator")
			}
		} else if r.AtEnd() {
			break
		}

		tag32, err := r.ReadVarint()
		if err != nil {
			return err
		}
		tag := int(tag32)
		if zeroTerminated && tag == 0 {
			break
		}

		length32, err := r.ReadVarint()
		if err != nil {
			return withTag(err, tag)
		}
		sub, err := r.Sub(int(length32))
		if err != nil {
			return withTag(err, tag)
		}

		if owner, ok := idx.sizeTagOwner[tag]; ok {
			count, err := sub.ReadVarint()
			if err != nil {
				return withTag(err, tag)
			}
			pendingSizes[owner.Tag] = count
			continue
		}

		field, ok := idx.byTag[tag]
		if !ok {
			unknown = append(unknown, UnknownChunk{Tag: tag, Payload: append([]byte(nil), sub.buf...)})
			continue
		}

		switch field.Category {
		case CategoryPrimitive, CategoryArrayPrimitive:
			if sub.Len() == 0 {
				// A zero-length chunk for a fixed-width scalar (e.g. a
				// bool/u32 field the original tool wrote with no payload
				// bytes at all) decodes as the type's zero value rather
				// than a Truncated error; array/string/bytes codecs
				// already read 0 elements/bytes from an empty sub-slice on
				// their own, so only scalar codecs need the explicit reset.
				if zs, ok := field.Prim.(zeroValueSetter); ok {
					zs.SetZeroValue()
				} else if err := field.Prim.ReadFrom(sub); err != nil {
					return withTag(err, tag)
				}
			} else if err := field.Prim.ReadFrom(sub); err != nil {
				return withTag(err, tag)
			}
			if !sub.AtEnd() {
				return withTag(newError(Malformed, "field did not consume its declared chunk length"), tag)
			}

		case CategoryRecord:
			if err := ReadRecord(sub, field.Rec, field.ZeroTerminated); err != nil {
				return withTag(err, tag)
			}

		case CategoryArrayRecord:
			field.Arr.Truncate(0)
			expected, hasSize := pendingSizes[field.Tag]
			if !hasSize {
				// Spec: "Array-of-record without its size companion: treated
				// as empty." A Size chunk always precedes a non-empty array
				// on write, so its absence here means the array chunk's
				// payload (if any) is ignored rather than parsed.
				continue
			}
			count := 0
			for !sub.AtEnd() {
				elem := field.Arr.Append()
				if err := ReadRecord(sub, elem, true); err != nil {
					return withTag(err, tag)
				}
				count++
			}
			if uint32(count) != expected {
				return withTag(newError(Malformed, "array element count does not match its Size companion"), tag)
			}
		}
	}

	if sink, ok := rec.(unknownChunkSink); ok {
		sink.SetUnknownChunks(unknown)
	}
	return nil
}

// writeAction is one deferred chunk-emission, keyed by the wire tag it will
// sort against so known fields and unknown chunks can be interleaved in a
// single ascending-tag pass (spec.md §8 scenario 5: an unknown chunk must
// reappear in its original tag position among known chunks, not merely
// after all of them).
type writeAction struct {
	tag   int
	write func(w *Writer) error
}

// WriteRecord encodes rec's fields into w in ascending tag order (the wire
// format's canonical write order), merging in any unknown chunks captured on
// a prior read at their own tag position, then — when zeroTerminated is
// true — the zero-tag sentinel.
func WriteRecord(w *Writer, rec Record, zeroTerminated bool) error {
	fields := rec.LcfFields()
	actions := make([]writeAction, 0, len(fields))

	for i := range fields {
		f := fields[i]
		switch f.Category {
		case CategoryPrimitive, CategoryArrayPrimitive:
			if f.Presence == OmitIfDefault && f.Prim.IsDefault() {
				continue
			}
			actions = append(actions, writeAction{tag: f.Tag, write: func(w *Writer) error {
				w.BeginChunk()
				if err := f.Prim.WriteTo(w); err != nil {
					return withTag(err, f.Tag)
				}
				w.EndChunk(f.Tag)
				return nil
			}})

		case CategoryRecord:
			actions = append(actions, writeAction{tag: f.Tag, write: func(w *Writer) error {
				w.BeginChunk()
				if err := WriteRecord(w, f.Rec, f.ZeroTerminated); err != nil {
					return withTag(err, f.Tag)
				}
				w.EndChunk(f.Tag)
				return nil
			}})

		case CategoryArrayRecord:
			actions = append(actions, writeAction{tag: f.SizeTag, write: func(w *Writer) error {
				n := f.Arr.Len()
				if n == 0 {
					// SizeOfCompanion only persists when the array is
					// non-empty (schema.go's documented presence policy);
					// an empty array contributes no Size chunk and no array
					// chunk at all, not an array chunk with a zero-length
					// payload.
					return nil
				}
				w.BeginChunk()
				w.WriteVarint(uint32(n))
				w.EndChunk(f.SizeTag)
				w.BeginChunk()
				for i := 0; i < n; i++ {
					if err := WriteRecord(w, f.Arr.At(i), true); err != nil {
						return withTag(err, f.Tag)
					}
				}
				w.EndChunk(f.Tag)
				return nil
			}})
		}
	}

	if sink, ok := rec.(unknownChunkSink); ok {
		for _, u := range sink.UnknownChunks() {
			u := u
			actions = append(actions, writeAction{tag: u.Tag, write: func(w *Writer) error {
				w.BeginChunk()
				w.WriteBytes(u.Payload)
				w.EndChunk(u.Tag)
				return nil
			}})
		}
	}

	sortWriteActions(actions)
	for _, a := range actions {
		if err := a.write(w); err != nil {
			return err
		}
	}

	if zeroTerminated {
		w.WriteVarint(0)
	}
	return nil
}

// sortWriteActions is a stable ascending-tag sort (insertion sort: the
// number of fields plus unknown chunks in a single record is always small,
// and stability preserves each ArrayRecord field's Size-before-Array
// emission order when both share the same sort key only in the degenerate
// case of a malformed schema).
func sortWriteActions(actions []writeAction) {
	for i := 1; i < len(actions); i++ {
		for j := i; j > 0 && actions[j].tag < actions[j-1].tag; j-- {
			actions[j], actions[j-1] = actions[j-1], actions[j]
		}
	}
}

// ReadRoot decodes a top-level file record (database, tree map, map unit,
// save game), which is always zero-tag-terminated.
func ReadRoot(r *Reader, rec Record) error { return ReadRecord(r, rec, true) }

// WriteRoot encodes a top-level file record.
func WriteRoot(w *Writer, rec Record) error { return WriteRecord(w, rec, true) }
