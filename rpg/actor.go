// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// Actor is a single playable-character definition from the database file:
// name/title/graphic/stat-curve fields, following liblcf's RPG::Actor
// member list. Wire tag numbers are this package's own assignment.
type Actor struct {
	unknownChunks

	ID              int32
	Name            string
	Title           string
	CharacterName   string
	CharacterIndex  int32
	TransparentFlag bool
	FaceName        string
	FaceIndex       int32
	InitialLevel    int32
	FinalLevel      int32
	ExpBase         int32
	ExpInflation    int32
	BaseHP          int32
	BaseSP          int32
	BaseAttack      int32
	BaseDefense     int32
	BaseSpirit      int32
	BaseAgility     int32
}

// LcfFields implements lcf.Record.
func (a *Actor) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "ID", &a.ID, 0, lcf.Always),
		lcf.StringField(2, "Name", &a.Name, lcf.OmitIfDefault),
		lcf.StringField(3, "Title", &a.Title, lcf.OmitIfDefault),
		lcf.StringField(4, "CharacterName", &a.CharacterName, lcf.OmitIfDefault),
		lcf.VarintField(5, "CharacterIndex", &a.CharacterIndex, 0, lcf.OmitIfDefault),
		lcf.BoolField(6, "TransparentFlag", &a.TransparentFlag, false, lcf.OmitIfDefault),
		lcf.StringField(7, "FaceName", &a.FaceName, lcf.OmitIfDefault),
		lcf.VarintField(8, "FaceIndex", &a.FaceIndex, 0, lcf.OmitIfDefault),
		lcf.VarintField(9, "InitialLevel", &a.InitialLevel, 1, lcf.OmitIfDefault),
		lcf.VarintField(10, "FinalLevel", &a.FinalLevel, 99, lcf.OmitIfDefault),
		lcf.VarintField(11, "ExpBase", &a.ExpBase, 30, lcf.OmitIfDefault),
		lcf.VarintField(12, "ExpInflation", &a.ExpInflation, 30, lcf.OmitIfDefault),
		lcf.VarintField(13, "BaseHP", &a.BaseHP, 0, lcf.OmitIfDefault),
		lcf.VarintField(14, "BaseSP", &a.BaseSP, 0, lcf.OmitIfDefault),
		lcf.VarintField(15, "BaseAttack", &a.BaseAttack, 0, lcf.OmitIfDefault),
		lcf.VarintField(16, "BaseDefense", &a.BaseDefense, 0, lcf.OmitIfDefault),
		lcf.VarintField(17, "BaseSpirit", &a.BaseSpirit, 0, lcf.OmitIfDefault),
		lcf.VarintField(18, "BaseAgility", &a.BaseAgility, 0, lcf.OmitIfDefault),
	}
}

// ActorList adapts []Actor to lcf.RecordArray for the Database's
// Array(Record Actor) field.
type ActorList []Actor

func (l *ActorList) Len() int             { return len(*l) }
func (l *ActorList) At(i int) lcf.Record  { return &(*l)[i] }
func (l *ActorList) Truncate(n int)       { *l = (*l)[:n] }
func (l *ActorList) Append() lcf.Record {
	*l = append(*l, Actor{})
	return &(*l)[len(*l)-1]
}
