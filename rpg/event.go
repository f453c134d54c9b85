// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// EventPage is one page of a map event: a trigger condition (reusing the
// same shape as a troop page's, since both are "run this command list when
// this condition holds" records in the original schema) plus the command
// list that runs when the page is active.
type EventPage struct {
	unknownChunks

	Condition     TroopPageCondition
	EventCommands EventCommandList
}

// LcfFields implements lcf.Record.
func (p *EventPage) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.RecordField(1, "Condition", &p.Condition, lcf.Always, false),
		lcf.RecordArrayField(2, 3, "EventCommands", &p.EventCommands),
	}
}

// EventPageList adapts []EventPage to lcf.RecordArray.
type EventPageList []EventPage

func (l *EventPageList) Len() int            { return len(*l) }
func (l *EventPageList) At(i int) lcf.Record { return &(*l)[i] }
func (l *EventPageList) Truncate(n int)      { *l = (*l)[:n] }
func (l *EventPageList) Append() lcf.Record {
	*l = append(*l, EventPage{})
	return &(*l)[len(*l)-1]
}

// Event is a single map event: its editor name, tile position, and its
// ordered list of pages (the active page is whichever is last in this list
// whose Condition currently holds; picking the active page is interpreter
// behavior and out of scope here).
type Event struct {
	unknownChunks

	ID    int32
	Name  string
	X     int32
	Y     int32
	Pages EventPageList
}

// LcfFields implements lcf.Record.
func (e *Event) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.VarintField(1, "ID", &e.ID, 0, lcf.Always),
		lcf.StringField(2, "Name", &e.Name, lcf.OmitIfDefault),
		lcf.VarintField(3, "X", &e.X, 0, lcf.Always),
		lcf.VarintField(4, "Y", &e.Y, 0, lcf.Always),
		lcf.RecordArrayField(5, 6, "Pages", &e.Pages),
	}
}

// EventList adapts []Event to lcf.RecordArray.
type EventList []Event

func (l *EventList) Len() int            { return len(*l) }
func (l *EventList) At(i int) lcf.Record { return &(*l)[i] }
func (l *EventList) Truncate(n int)      { *l = (*l)[:n] }
func (l *EventList) Append() lcf.Record {
	*l = append(*l, Event{})
	return &(*l)[len(*l)-1]
}
