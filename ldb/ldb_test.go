// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package ldb

import (
	"bytes"
	"testing"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/rpg"
)

func TestLoadBytesMinimalDatabase(t *testing.T) {
	// spec.md §8 scenario 1: 0B "LcfDataBase" 00.
	buf := append([]byte{0x0B}, []byte(Magic)...)
	buf = append(buf, 0x00)

	db, warnings, err := LoadBytes(buf, nil)
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if db.Actors.Len() != 0 {
		t.Errorf("expected an empty database, got %+v", db)
	}

	// spec.md §8: write(read(F)) == F byte-exactly. An all-default database
	// must re-encode to the same lone zero-tag terminator, with no empty
	// Size/Array chunks for its unpopulated array-of-record fields.
	reencoded, err := SaveBytes(db, nil)
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if !bytes.Equal(reencoded, buf) {
		t.Errorf("SaveBytes(LoadBytes(buf)) = % x, want % x", reencoded, buf)
	}
}

func TestLoadBytesBadMagicIsWarningOnly(t *testing.T) {
	// spec.md §8 scenario 2: right header length, wrong content.
	buf := append([]byte{0x0B}, []byte("LcfRandomXX")...)
	buf = append(buf, 0x00)

	db, warnings, err := LoadBytes(buf, nil)
	if err != nil {
		t.Fatalf("LoadBytes should not fail on a bad-magic header: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one entry", warnings)
	}
	if db.Actors.Len() != 0 {
		t.Errorf("expected an empty tree, got %+v", db)
	}
}

func TestSaveBytesThenLoadBytesRoundTrip(t *testing.T) {
	db := &rpg.Database{}
	db.Actors = append(db.Actors, rpg.Actor{ID: 1, Name: "Hero", InitialLevel: 1, FinalLevel: 99})

	buf, err := SaveBytes(db, &Options{Encoding: "1252"})
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}

	got, warnings, err := LoadBytes(buf, &Options{Encoding: "1252"})
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none for a file this package itself wrote", warnings)
	}
	if got.Actors.Len() != 1 || got.Actors[0].Name != "Hero" {
		t.Fatalf("Actors = %+v", got.Actors)
	}
}

func TestSetupBackfillsFinalLevel(t *testing.T) {
	db := &rpg.Database{}
	db.Actors = append(db.Actors, rpg.Actor{ID: 1, InitialLevel: 20, FinalLevel: 10})
	Setup(db)
	if db.Actors[0].FinalLevel != 20 {
		t.Errorf("FinalLevel = %d, want 20 (raised to InitialLevel)", db.Actors[0].FinalLevel)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	db := &rpg.Database{}
	db.Actors = append(db.Actors, rpg.Actor{ID: 1, InitialLevel: 20, FinalLevel: 10})
	Setup(db)
	Setup(db)
	if db.Actors[0].FinalLevel != 20 {
		t.Errorf("FinalLevel = %d after a second Setup call, want 20", db.Actors[0].FinalLevel)
	}
}

func TestLoadBytesRunsSetupAutomatically(t *testing.T) {
	db := &rpg.Database{}
	db.Actors = append(db.Actors, rpg.Actor{ID: 1, InitialLevel: 20, FinalLevel: 5})
	buf, err := SaveBytes(db, &Options{Encoding: "1252"})
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	got, _, err := LoadBytes(buf, &Options{Encoding: "1252"})
	if err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if got.Actors[0].FinalLevel != 20 {
		t.Errorf("FinalLevel = %d, want 20 after LoadBytes' automatic Setup pass", got.Actors[0].FinalLevel)
	}
}

func TestXMLRoundTripThroughFacade(t *testing.T) {
	db := &rpg.Database{}
	db.Actors = append(db.Actors, rpg.Actor{ID: 1, Name: "Hero"})

	var buf bytes.Buffer
	xw := lcf.NewXMLWriter(&buf)
	if err := SaveXML(xw, db); err != nil {
		t.Fatalf("SaveXML: %v", err)
	}

	xr := lcf.NewXMLReader(&buf)
	got, err := LoadXML(xr)
	if err != nil {
		t.Fatalf("LoadXML: %v", err)
	}
	if got.Actors.Len() != 1 || got.Actors[0].Name != "Hero" {
		t.Fatalf("Actors = %+v", got.Actors)
	}
}

func TestFuzzEntryPoint(t *testing.T) {
	buf := append([]byte{0x0B}, []byte(Magic)...)
	buf = append(buf, 0x00)
	if got := Fuzz(buf); got != 1 {
		t.Errorf("Fuzz(valid minimal database) = %d, want 1", got)
	}
	if got := Fuzz([]byte{0xFF}); got != 0 {
		t.Errorf("Fuzz(garbage) = %d, want 0", got)
	}
}
