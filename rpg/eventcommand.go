// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// EventCommand is one interpreter instruction inside an event page or troop
// page's command list. Every command kind — "show message", "conditional
// branch", "change variable", and hundreds of others — shares this same flat
// shape: a numeric opcode, an indent level, a free-form string operand, and
// a packed integer parameter list. The interpreter, not the file format,
// gives Code its meaning, so Code stays a plain int32 rather than a sum type
// with one variant per opcode.
type EventCommand struct {
	unknownChunks

	Code       int32
	Indent     int32
	String     string
	Parameters []int32
}

// LcfFields implements lcf.Record.
func (c *EventCommand) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "Code", &c.Code, 0, lcf.Always),
		lcf.VarintField(2, "Indent", &c.Indent, 0, lcf.OmitIfDefault),
		lcf.StringField(3, "String", &c.String, lcf.OmitIfDefault),
		lcf.Int32ArrayField(4, "Parameters", &c.Parameters, lcf.OmitIfDefault),
	}
}

// EventCommandList adapts []EventCommand to lcf.RecordArray for the
// (Size, Array) companion pair event and troop pages carry their command
// streams in.
type EventCommandList []EventCommand

func (l *EventCommandList) Len() int            { return len(*l) }
func (l *EventCommandList) At(i int) lcf.Record { return &(*l)[i] }
func (l *EventCommandList) Truncate(n int)      { *l = (*l)[:n] }
func (l *EventCommandList) Append() lcf.Record {
	*l = append(*l, EventCommand{})
	return &(*l)[len(*l)-1]
}
