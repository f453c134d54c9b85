// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// TroopPageCondition is the trigger condition attached to a TroopPage
// (switch/variable/turn-count/health-threshold checks gating when the page's
// commands run).
type TroopPageCondition struct {
	unknownChunks

	SwitchAFlag bool
	SwitchA     int32
	SwitchBFlag bool
	SwitchB     int32
	TurnValidFlag bool
	TurnA       int32
	TurnB       int32
}

// LcfFields implements lcf.Record.
func (c *TroopPageCondition) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.BoolField(1, "SwitchAFlag", &c.SwitchAFlag, false, lcf.OmitIfDefault),
		lcf.VarintField(2, "SwitchA", &c.SwitchA, 0, lcf.OmitIfDefault),
		lcf.BoolField(3, "SwitchBFlag", &c.SwitchBFlag, false, lcf.OmitIfDefault),
		lcf.VarintField(4, "SwitchB", &c.SwitchB, 0, lcf.OmitIfDefault),
		lcf.BoolField(5, "TurnValidFlag", &c.TurnValidFlag, false, lcf.OmitIfDefault),
		lcf.VarintField(6, "TurnA", &c.TurnA, 0, lcf.OmitIfDefault),
		lcf.VarintField(7, "TurnB", &c.TurnB, 0, lcf.OmitIfDefault),
	}
}

// TroopPage is one page of a troop's battle event: a trigger condition plus
// the command list that runs when it is met. EventCommands below is the
// canonical Size(T)/Array(Record T) pairing: a count chunk immediately
// followed by the array chunk it describes.
type TroopPage struct {
	unknownChunks

	Condition    TroopPageCondition
	EventCommands EventCommandList
}

// LcfFields implements lcf.Record.
func (p *TroopPage) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.RecordField(1, "Condition", &p.Condition, lcf.Always, false),
		lcf.RecordArrayField(2, 3, "EventCommands", &p.EventCommands),
	}
}

// TroopPageList adapts []TroopPage to lcf.RecordArray.
type TroopPageList []TroopPage

func (l *TroopPageList) Len() int            { return len(*l) }
func (l *TroopPageList) At(i int) lcf.Record { return &(*l)[i] }
func (l *TroopPageList) Truncate(n int)      { *l = (*l)[:n] }
func (l *TroopPageList) Append() lcf.Record {
	*l = append(*l, TroopPage{})
	return &(*l)[len(*l)-1]
}

// Troop is one random-encounter/battle-event troop definition: a name and
// its ordered list of battle-event pages.
type Troop struct {
	unknownChunks

	ID    int32
	Name  string
	Pages TroopPageList
}

// LcfFields implements lcf.Record.
func (t *Troop) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "ID", &t.ID, 0, lcf.Always),
		lcf.StringField(2, "Name", &t.Name, lcf.OmitIfDefault),
		lcf.RecordArrayField(3, 4, "Pages", &t.Pages),
	}
}

// TroopList adapts []Troop to lcf.RecordArray.
type TroopList []Troop

func (l *TroopList) Len() int            { return len(*l) }
func (l *TroopList) At(i int) lcf.Record { return &(*l)[i] }
func (l *TroopList) Truncate(n int)      { *l = (*l)[:n] }
func (l *TroopList) Append() lcf.Record {
	*l = append(*l, Troop{})
	return &(*l)[len(*l)-1]
}
