// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// SaveTitle mirrors the portion of a save slot the title/load screen reads
// without decoding the whole save: which map the party is on and the lead
// hero's name and level.
type SaveTitle struct {
	unknownChunks

	MapID         int32
	PartyHeroName string
	PartyHeroLevel int32
}

// LcfFields implements lcf.Record.
func (t *SaveTitle) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "MapID", &t.MapID, 0, lcf.Always),
		lcf.StringField(2, "PartyHeroName", &t.PartyHeroName, lcf.OmitIfDefault),
		lcf.VarintField(3, "PartyHeroLevel", &t.PartyHeroLevel, 1, lcf.OmitIfDefault),
	}
}

// Save is the root record of a .lsd file: the save slot's title-screen
// summary and its save timestamp, encoded as a Delphi TDateTime (see
// timestamp.go; ToTDateTime/ToUnixTimestamp/GenerateTimestamp implement that
// conversion precisely, even though the magic header itself is only a
// placeholder — see DESIGN.md).
type Save struct {
	unknownChunks

	Title    SaveTitle
	SaveTime float64
}

// LcfFields implements lcf.Record.
func (s *Save) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.RecordField(1, "Title", &s.Title, lcf.Always, false),
		lcf.DoubleField(2, "SaveTime", &s.SaveTime, 0, lcf.Always),
	}
}
