// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// Map is the root record of a .lmu file: one map's tile layers and its
// events. LowerLayer/UpperLayer are Array(Primitive uint16) fields (one
// chipset tile index per tile, row-major, Width*Height elements), owned by
// the caller rather than any parse-time global.
type Map struct {
	unknownChunks

	Width      int32
	Height     int32
	LowerLayer []uint16
	UpperLayer []uint16
	Events     EventList
}

// LcfFields implements lcf.Record.
func (m *Map) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "Width", &m.Width, 20, lcf.Always),
		lcf.VarintField(2, "Height", &m.Height, 15, lcf.Always),
		lcf.UInt16ArrayField(3, "LowerLayer", &m.LowerLayer, lcf.Always),
		lcf.UInt16ArrayField(4, "UpperLayer", &m.UpperLayer, lcf.Always),
		lcf.RecordArrayField(5, 6, "Events", &m.Events),
	}
}
