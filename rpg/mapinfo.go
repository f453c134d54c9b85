// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// MapInfo is one entry in the map tree: a map's display name and its place
// in the project's map hierarchy (parent id, sibling order, expanded/
// collapsed state in the editor's tree view).
type MapInfo struct {
	unknownChunks

	ID          int32
	Name        string
	ParentID    int32
	Order       int32
	Indentation int32
	Expanded    bool
}

// LcfFields implements lcf.Record.
func (m *MapInfo) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "ID", &m.ID, 0, lcf.Always),
		lcf.StringField(2, "Name", &m.Name, lcf.OmitIfDefault),
		lcf.VarintField(3, "ParentID", &m.ParentID, 0, lcf.OmitIfDefault),
		lcf.VarintField(4, "Order", &m.Order, 0, lcf.OmitIfDefault),
		lcf.VarintField(5, "Indentation", &m.Indentation, 0, lcf.OmitIfDefault),
		lcf.BoolField(6, "Expanded", &m.Expanded, true, lcf.OmitIfDefault),
	}
}

// MapInfoList adapts []MapInfo to lcf.RecordArray.
type MapInfoList []MapInfo

func (l *MapInfoList) Len() int            { return len(*l) }
func (l *MapInfoList) At(i int) lcf.Record { return &(*l)[i] }
func (l *MapInfoList) Truncate(n int)      { *l = (*l)[:n] }
func (l *MapInfoList) Append() lcf.Record {
	*l = append(*l, MapInfo{})
	return &(*l)[len(*l)-1]
}

// TreeMap is the root record of a .lmt file: the project's map hierarchy and
// the tree-view's display order, owned by the caller rather than any global.
type TreeMap struct {
	unknownChunks

	TreeOrder []int32
	Maps      MapInfoList
}

// LcfFields implements lcf.Record.
func (t *TreeMap) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.Int32ArrayField(1, "TreeOrder", &t.TreeOrder, lcf.OmitIfDefault),
		lcf.RecordArrayField(2, 3, "Maps", &t.Maps),
	}
}
