// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// This file is the XML mirror's writer half: an indent-tracking token writer
// over a bufio.Writer. encoding/xml's Encoder cannot express this format's
// zero-padded numeric id attribute or its PUA escaping of C0 control bytes,
// so this stays hand-rolled rather than a Marshal call — see DESIGN.md.
//
// Indexed-element openers are always emitted well-formed: `<Name id="0001">`
// with a space before the attribute, a closing quote, and no embedded
// newline.

// XMLWriter emits the structured-text mirror of a record, using the same
// Record/Field schema as the binary codec.
type XMLWriter struct {
	w      *bufio.Writer
	indent int
	atBOL  bool
}

// NewXMLWriter wraps w with an XmlWriter, writing the standard XML
// declaration immediately.
func NewXMLWriter(w io.Writer) *XMLWriter {
	xw := &XMLWriter{w: bufio.NewWriter(w), atBOL: true}
	xw.w.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	return xw
}

// Flush flushes any buffered output to the underlying writer.
func (xw *XMLWriter) Flush() error { return xw.w.Flush() }

func (xw *XMLWriter) newLine() {
	if xw.atBOL {
		return
	}
	xw.w.WriteByte('\n')
	xw.atBOL = true
}

func (xw *XMLWriter) pad() {
	if !xw.atBOL {
		return
	}
	for i := 0; i < xw.indent; i++ {
		xw.w.WriteByte(' ')
	}
	xw.atBOL = false
}

// BeginElement opens a plain <name> element and increases the indent.
func (xw *XMLWriter) BeginElement(name string) {
	xw.newLine()
	xw.pad()
	fmt.Fprintf(xw.w, "<%s>", name)
	xw.indent++
}

// BeginIndexedElement opens a <name id="0001"> element (the well-formed
// replacement for the original's broken indexed-element opener) and
// increases the indent.
func (xw *XMLWriter) BeginIndexedElement(name string, id int) {
	xw.newLine()
	xw.pad()
	fmt.Fprintf(xw.w, "<%s id=\"%04d\">", name, id)
	xw.indent++
}

// EndElement decreases the indent and closes </name>.
func (xw *XMLWriter) EndElement(name string) {
	xw.indent--
	xw.pad()
	fmt.Fprintf(xw.w, "</%s>", name)
	xw.newLine()
}

// WriteNode writes a complete <name>value</name> leaf node.
func (xw *XMLWriter) WriteNode(name string, write func()) {
	xw.BeginElement(name)
	write()
	xw.EndElement(name)
}

// WriteBool writes a boolean leaf value as T/F.
func (xw *XMLWriter) WriteBool(v bool) {
	xw.pad()
	if v {
		xw.w.WriteString("T")
	} else {
		xw.w.WriteString("F")
	}
}

// WriteInt writes an integer leaf value in decimal.
func (xw *XMLWriter) WriteInt(v int64) {
	xw.pad()
	xw.w.WriteString(strconv.FormatInt(v, 10))
}

// WriteUint writes an unsigned integer leaf value in decimal.
func (xw *XMLWriter) WriteUint(v uint64) {
	xw.pad()
	xw.w.WriteString(strconv.FormatUint(v, 10))
}

// WriteFloat writes a double leaf value.
func (xw *XMLWriter) WriteFloat(v float64) {
	xw.pad()
	xw.w.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

// WriteString writes a string leaf value, escaping '<', '>', '&' as entity
// references and any C0 control byte other than \n, \r, \t as a Private Use
// Area codepoint &#xE0xx;, so round-tripped text with embedded control
// characters survives un-mangled.
func (xw *XMLWriter) WriteString(s string) {
	xw.pad()
	for _, r := range s {
		switch r {
		case '<':
			xw.w.WriteString("&lt;")
		case '>':
			xw.w.WriteString("&gt;")
		case '&':
			xw.w.WriteString("&amp;")
		case '\n':
			xw.w.WriteByte('\n')
			xw.atBOL = true
			xw.pad()
		case '\r', '\t':
			xw.w.WriteRune(r)
		default:
			if r >= 0 && r < 0x20 {
				fmt.Fprintf(xw.w, "&#x%04x;", 0xE000+r)
			} else {
				xw.w.WriteRune(r)
			}
		}
	}
}

// WriteIntSlice writes a vector leaf as space-separated decimal values.
func (xw *XMLWriter) WriteIntSlice(vals []int) {
	xw.pad()
	for i, v := range vals {
		if i > 0 {
			xw.w.WriteByte(' ')
		}
		xw.w.WriteString(strconv.Itoa(v))
	}
}

// WriteBoolSlice writes a flag-vector leaf as space-separated T/F tokens.
func (xw *XMLWriter) WriteBoolSlice(vals []bool) {
	xw.pad()
	for i, v := range vals {
		if i > 0 {
			xw.w.WriteByte(' ')
		}
		if v {
			xw.w.WriteString("T")
		} else {
			xw.w.WriteString("F")
		}
	}
}
