// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// Skill is a single learnable/usable skill definition.
type Skill struct {
	unknownChunks

	ID          int32
	Name        string
	Description string
	UsingMessage string
	SPCost      int32
	HitRate     int32
}

// LcfFields implements lcf.Record.
func (s *Skill) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "ID", &s.ID, 0, lcf.Always),
		lcf.StringField(2, "Name", &s.Name, lcf.OmitIfDefault),
		lcf.StringField(3, "Description", &s.Description, lcf.OmitIfDefault),
		lcf.StringField(4, "UsingMessage", &s.UsingMessage, lcf.OmitIfDefault),
		lcf.VarintField(5, "SPCost", &s.SPCost, 0, lcf.OmitIfDefault),
		lcf.VarintField(6, "HitRate", &s.HitRate, 100, lcf.OmitIfDefault),
	}
}

// SkillList adapts []Skill to lcf.RecordArray.
type SkillList []Skill

func (l *SkillList) Len() int            { return len(*l) }
func (l *SkillList) At(i int) lcf.Record { return &(*l)[i] }
func (l *SkillList) Truncate(n int)      { *l = (*l)[:n] }
func (l *SkillList) Append() lcf.Record {
	*l = append(*l, Skill{})
	return &(*l)[len(*l)-1]
}
