// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// Item is a single inventory item definition (weapon, armor, consumable,
// or key item, discriminated by the Type field).
type Item struct {
	unknownChunks

	ID    int32
	Name  string
	Price int32
	Type  int32
	Uses  int32
}

// LcfFields implements lcf.Record.
func (i *Item) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "ID", &i.ID, 0, lcf.Always),
		lcf.StringField(2, "Name", &i.Name, lcf.OmitIfDefault),
		lcf.VarintField(3, "Price", &i.Price, 0, lcf.OmitIfDefault),
		lcf.VarintField(4, "Type", &i.Type, 0, lcf.OmitIfDefault),
		lcf.VarintField(5, "Uses", &i.Uses, 1, lcf.OmitIfDefault),
	}
}

// ItemList adapts []Item to lcf.RecordArray.
type ItemList []Item

func (l *ItemList) Len() int            { return len(*l) }
func (l *ItemList) At(i int) lcf.Record { return &(*l)[i] }
func (l *ItemList) Truncate(n int)      { *l = (*l)[:n] }
func (l *ItemList) Append() lcf.Record {
	*l = append(*l, Item{})
	return &(*l)[len(*l)-1]
}
