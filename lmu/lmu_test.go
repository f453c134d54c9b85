// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lmu

import (
	"bytes"
	"testing"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/rpg"
)

func sampleMap() *rpg.Map {
	m := &rpg.Map{Width: 2, Height: 2}
	m.LowerLayer = []uint16{1, 2, 3, 4}
	m.UpperLayer = []uint16{0, 0, 0, 0}

	ev := rpg.Event{ID: 1, Name: "NPC", X: 1, Y: 1}
	page := rpg.EventPage{}
	page.EventCommands = append(page.EventCommands, rpg.EventCommand{Code: 101, String: "Hello!"})
	ev.Pages = append(ev.Pages, page)
	m.Events = append(m.Events, ev)

	return m
}

func TestMapUnitRoundTrip(t *testing.T) {
	m := sampleMap()
	buf, err := SaveBytes(m, &Options{Encoding: "1252"})
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}

	got, warnings, err := LoadBytes(buf, &Options{Encoding: "1252"})
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if got.Width != 2 || got.Height != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", got.Width, got.Height)
	}
	if len(got.LowerLayer) != 4 || got.LowerLayer[2] != 3 {
		t.Errorf("LowerLayer = %v", got.LowerLayer)
	}
	if len(got.UpperLayer) != 4 {
		t.Errorf("UpperLayer = %v, want 4 elements even though all-zero", got.UpperLayer)
	}
	if got.Events.Len() != 1 || got.Events[0].Name != "NPC" {
		t.Fatalf("Events = %+v", got.Events)
	}
	pages := got.Events[0].Pages
	if len(pages) != 1 || len(pages[0].EventCommands) != 1 || pages[0].EventCommands[0].String != "Hello!" {
		t.Fatalf("Pages = %+v", pages)
	}
}

func TestMapUnitBadMagicWarns(t *testing.T) {
	buf := append([]byte{0x0A}, []byte("LcfNotAMap")...)
	buf = append(buf, 0x00)
	_, warnings, err := LoadBytes(buf, nil)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want 1 entry", warnings)
	}
}

func TestMapUnitXMLRoundTripViaFacade(t *testing.T) {
	m := sampleMap()

	var buf bytes.Buffer
	xw := lcf.NewXMLWriter(&buf)
	if err := SaveXML(xw, m); err != nil {
		t.Fatalf("SaveXML: %v", err)
	}

	xr := lcf.NewXMLReader(&buf)
	got, err := LoadXML(xr)
	if err != nil {
		t.Fatalf("LoadXML: %v", err)
	}
	if got.Width != 2 || got.Events.Len() != 1 {
		t.Fatalf("got = %+v", got)
	}
}
