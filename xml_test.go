// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"bytes"
	"strings"
	"testing"
)

func TestXMLEscapeControlCharacters(t *testing.T) {
	// spec.md §8 scenario 6.
	var buf bytes.Buffer
	xw := NewXMLWriter(&buf)
	xw.BeginElement("Name")
	xw.WriteString("a<b&c\n\x01")
	xw.EndElement("Name")
	if err := xw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "a&lt;b&amp;c") {
		t.Errorf("expected escaped '<' and '&', got: %q", out)
	}
	if !strings.Contains(out, "&#xe001;") {
		t.Errorf("expected PUA escape of \\x01 as &#xe001;, got: %q", out)
	}
}

func TestXMLEscapeRoundTrip(t *testing.T) {
	rec := &testRecord{Name: "a<b&c\n\x01", Level: 1}
	var buf bytes.Buffer
	xw := NewXMLWriter(&buf)
	if err := WriteXMLRoot(xw, "Test", rec); err != nil {
		t.Fatalf("WriteXMLRoot: %v", err)
	}

	got := &testRecord{}
	xr := NewXMLReader(&buf)
	if err := ReadXMLRoot(xr, "Test", got); err != nil {
		t.Fatalf("ReadXMLRoot: %v", err)
	}
	if got.Name != rec.Name {
		t.Errorf("Name = %q, want %q", got.Name, rec.Name)
	}
}

func TestXMLRoundTripStructural(t *testing.T) {
	rec := &testRecord{Name: "Goblin", Level: 7}
	rec.Items = append(rec.Items, testItem{Value: 10}, testItem{Value: 20})

	var buf bytes.Buffer
	xw := NewXMLWriter(&buf)
	if err := WriteXMLRoot(xw, "Test", rec); err != nil {
		t.Fatalf("WriteXMLRoot: %v", err)
	}

	got := &testRecord{}
	xr := NewXMLReader(&buf)
	if err := ReadXMLRoot(xr, "Test", got); err != nil {
		t.Fatalf("ReadXMLRoot: %v", err)
	}

	if got.Name != rec.Name || got.Level != rec.Level {
		t.Errorf("got %+v, want Name=%q Level=%d", got, rec.Name, rec.Level)
	}
	if got.Items.Len() != 2 || got.Items[0].Value != 10 || got.Items[1].Value != 20 {
		t.Errorf("Items = %+v", got.Items)
	}
}

func TestXMLDefaultFieldsOmittedOnWrite(t *testing.T) {
	rec := &testRecord{Level: 1} // Level equals its declared default
	var buf bytes.Buffer
	xw := NewXMLWriter(&buf)
	if err := WriteXMLRoot(xw, "Test", rec); err != nil {
		t.Fatalf("WriteXMLRoot: %v", err)
	}
	if strings.Contains(buf.String(), "<Level>") {
		t.Errorf("default-valued Level field should be omitted, got: %q", buf.String())
	}
}

func TestXMLDefaultFieldsInitializedOnRead(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<Test></Test>`)
	got := &testRecord{}
	xr := NewXMLReader(&buf)
	if err := ReadXMLRoot(xr, "Test", got); err != nil {
		t.Fatalf("ReadXMLRoot: %v", err)
	}
	if got.Level != 1 {
		t.Errorf("Level = %d, want declared default 1 when absent from XML", got.Level)
	}
}

func TestXMLIndexedElementsWellFormed(t *testing.T) {
	rec := &testRecord{Level: 1}
	rec.Items = append(rec.Items, testItem{Value: 1})
	var buf bytes.Buffer
	xw := NewXMLWriter(&buf)
	if err := WriteXMLRoot(xw, "Test", rec); err != nil {
		t.Fatalf("WriteXMLRoot: %v", err)
	}
	if !strings.Contains(buf.String(), `<item id="0001">`) {
		t.Errorf("expected well-formed indexed element, got: %q", buf.String())
	}
	if strings.Contains(buf.String(), "id=\"0001\n") {
		t.Error("indexed element attribute must not contain an embedded newline")
	}
}

func TestXMLRootElementMismatch(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<Wrong></Wrong>`)
	got := &testRecord{}
	xr := NewXMLReader(&buf)
	err := ReadXMLRoot(xr, "Test", got)
	if err == nil {
		t.Fatal("expected HeaderMismatch for wrong root element")
	}
	if e, ok := err.(*Error); !ok || e.Kind != HeaderMismatch {
		t.Errorf("got %v, want HeaderMismatch", err)
	}
}

func TestXMLUnknownElementsIgnored(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<Test><SomeFutureField>99</SomeFutureField><Name>X</Name></Test>`)
	got := &testRecord{}
	xr := NewXMLReader(&buf)
	if err := ReadXMLRoot(xr, "Test", got); err != nil {
		t.Fatalf("ReadXMLRoot: %v", err)
	}
	if got.Name != "X" {
		t.Errorf("Name = %q, want X (unknown element should be skipped, not abort the parse)", got.Name)
	}
}
