// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// XMLReader is the XML mirror's reader half. Unlike XMLWriter (a hand-rolled
// token emitter), reading is a genuine parsing problem — entities,
// whitespace, attribute quoting — that encoding/xml's Decoder already solves
// correctly, so this wraps it rather than hand-rolling a second tokenizer.
type XMLReader struct {
	dec *xml.Decoder
	// peeked holds a start element token read ahead of request, so callers
	// can check an element's name before deciding whether to consume it.
	peeked *xml.StartElement
}

// NewXMLReader wraps r with an XMLReader.
func NewXMLReader(r io.Reader) *XMLReader {
	return &XMLReader{dec: xml.NewDecoder(r)}
}

// PeekStart returns the next start element without consuming it, or nil at
// end of the enclosing element's children.
func (xr *XMLReader) PeekStart() (*xml.StartElement, error) {
	if xr.peeked != nil {
		return xr.peeked, nil
	}
	for {
		tok, err := xr.dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, wrapIOError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			cp := t.Copy()
			xr.peeked = &cp
			return xr.peeked, nil
		case xml.EndElement:
			return nil, nil
		}
	}
}

// consumeStart drops a previously peeked start element so the next PeekStart
// call reads ahead again.
func (xr *XMLReader) consumeStart() {
	xr.peeked = nil
}

// ReadCharData reads character data up to the matching end element and
// returns it as the decoder delivers it: entities are expanded, so
// "&#xE001;" arrives as the rune U+E001; folding such runes back to control
// bytes is left to unescapePUA.
func (xr *XMLReader) ReadCharData() (string, error) {
	var sb strings.Builder
	for {
		tok, err := xr.dec.Token()
		if err != nil {
			return "", wrapIOError(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// skipElement consumes an already-opened element's entire subtree.
func (xr *XMLReader) skipElement() error {
	depth := 1
	for depth > 0 {
		tok, err := xr.dec.Token()
		if err != nil {
			return wrapIOError(err)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// attrID extracts the numeric id="NNNN" attribute from a start element, used
// for array-element children written by XMLWriter.BeginIndexedElement.
func attrID(start *xml.StartElement) (int, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == "id" {
			n, err := strconv.Atoi(a.Value)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// unescapePUA reverses XMLWriter.WriteString's rescue mapping: entity
// decoding already turns "&#xE0xx;" into the literal rune U+E0xx by the time
// ReadCharData returns it, so this just folds that Private Use Area range
// back down to the original C0 control byte.
func unescapePUA(s string) string {
	hasPUA := false
	for _, r := range s {
		if r >= 0xE000 && r <= 0xE01F {
			hasPUA = true
			break
		}
	}
	if !hasPUA {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= 0xE000 && r <= 0xE01F {
			sb.WriteRune(r - 0xE000)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func parseXMLBool(s string) bool {
	return strings.TrimSpace(s) == "T"
}

func parseXMLBoolSlice(s string) []bool {
	fields := strings.Fields(s)
	out := make([]bool, len(fields))
	for i, f := range fields {
		out[i] = f == "T"
	}
	return out
}

func parseXMLIntSlice(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err == nil {
			out = append(out, n)
		}
	}
	return out
}
