// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

// This file drives the same Record/Field schema used by codec.go's binary
// engine through the XML mirror instead: the structured text form uses the
// same field table as the binary form, walked by field Name instead of wire
// tag. Array-of-record children are indexed <item id="0001"> elements inside
// the field's own element, 1-based, matching the numbering RPG2k/2k3 XML exports use for
// pages/events/etc.

// WriteXMLRoot renders rec as a complete XML document under a root element
// named rootName.
func WriteXMLRoot(xw *XMLWriter, rootName string, rec Record) error {
	xw.BeginElement(rootName)
	if err := writeXMLFields(xw, rec); err != nil {
		return err
	}
	xw.EndElement(rootName)
	return xw.Flush()
}

func writeXMLFields(xw *XMLWriter, rec Record) error {
	fields := rec.LcfFields()
	for i := range fields {
		f := &fields[i]
		switch f.Category {
		case CategoryPrimitive, CategoryArrayPrimitive:
			if f.Presence == OmitIfDefault && f.Prim.IsDefault() {
				continue
			}
			xw.BeginElement(f.Name)
			f.Prim.WriteXML(xw)
			xw.EndElement(f.Name)

		case CategoryRecord:
			xw.BeginElement(f.Name)
			if err := writeXMLFields(xw, f.Rec); err != nil {
				return withTag(err, f.Tag)
			}
			xw.EndElement(f.Name)

		case CategoryArrayRecord:
			n := f.Arr.Len()
			xw.BeginElement(f.Name)
			for i := 0; i < n; i++ {
				xw.BeginIndexedElement("item", i+1)
				if err := writeXMLFields(xw, f.Arr.At(i)); err != nil {
					return withTag(err, f.Tag)
				}
				xw.EndElement("item")
			}
			xw.EndElement(f.Name)
		}
	}
	return nil
}

// ReadXMLRoot parses a complete XML document written by WriteXMLRoot into
// rec. rootName is matched against the document's root element; a mismatch
// is reported as HeaderMismatch since it means the wrong file kind's XML
// mirror was handed to this reader.
func ReadXMLRoot(xr *XMLReader, rootName string, rec Record) error {
	start, err := xr.PeekStart()
	if err != nil {
		return err
	}
	if start == nil {
		return newError(Truncated, "empty XML document")
	}
	if start.Name.Local != rootName {
		return newError(HeaderMismatch, "unexpected root element: "+start.Name.Local)
	}
	xr.consumeStart()
	return readXMLFields(xr, rec)
}

func readXMLFields(xr *XMLReader, rec Record) error {
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
	for {
		start, err := xr.PeekStart()
		if err != nil {
			return err
		}
		if start == nil {
			break
		}
		xr.consumeStart()

		field := findFieldByName(idx, start.Name.Local)
		if field == nil && start.Name.Local != "item" {
			if err := xr.skipElement(); err != nil {
				return err
			}
			continue
		}

		switch {
		case field == nil:
			// Stray <item> outside any array-of-record element; skip.
			if err := xr.skipElement(); err != nil {
				return err
			}

		case field.Category == CategoryPrimitive || field.Category == CategoryArrayPrimitive:
			text, err := xr.ReadCharData()
			if err != nil {
				return withTag(err, field.Tag)
			}
			if err := field.Prim.ReadXML(text); err != nil {
				return withTag(err, field.Tag)
			}

		case field.Category == CategoryRecord:
			if err := readXMLFields(xr, field.Rec); err != nil {
				return withTag(err, field.Tag)
			}

		case field.Category == CategoryArrayRecord:
			field.Arr.Truncate(0)
			for {
				itemStart, err := xr.PeekStart()
				if err != nil {
					return withTag(err, field.Tag)
				}
				if itemStart == nil || itemStart.Name.Local != "item" {
					break
				}
				xr.consumeStart()
				elem := field.Arr.Append()
				if err := readXMLFields(xr, elem); err != nil {
					return withTag(err, field.Tag)
				}
			}
		}
	}
	return nil
}

func findFieldByName(idx *fieldIndex, name string) *Field {
	for _, f := range idx.byTag {
		if f.Name == name {
			return f
		}
	}
	return nil
}
