// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lmt

import (
	"testing"

	"github.com/rpg2k/lcf/rpg"
)

func TestMapTreeRoundTrip(t *testing.T) {
	tm := &rpg.TreeMap{}
	tm.TreeOrder = []int32{1, 2, 3}
	tm.Maps = append(tm.Maps, rpg.MapInfo{ID: 1, Name: "Town", Order: 1})
	tm.Maps = append(tm.Maps, rpg.MapInfo{ID: 2, Name: "Dungeon", ParentID: 1, Order: 2})

	buf, err := SaveBytes(tm, &Options{Encoding: "1252"})
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
	if len(got.TreeOrder) != 3 || got.TreeOrder[2] != 3 {
		t.Errorf("TreeOrder = %v", got.TreeOrder)
	}
	if got.Maps.Len() != 2 || got.Maps[1].Name != "Dungeon" || got.Maps[1].ParentID != 1 {
		t.Fatalf("Maps = %+v", got.Maps)
	}
}

func TestMapTreeBadMagicWarns(t *testing.T) {
	buf := append([]byte{0x0A}, []byte("LcfXXXXXXX")...)
	buf = append(buf, 0x00)
	_, warnings, err := LoadBytes(buf, nil)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want 1 entry", warnings)
	}
}
