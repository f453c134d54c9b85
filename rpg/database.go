// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// Database is the root record of a .ldb file: every project-wide table
// (actors, skills, items, troops, ...) that isn't specific to a single map.
// It is an explicit, caller-owned value: ldb.Load returns a *Database to its
// caller instead of mutating any package-level global.
type Database struct {
	unknownChunks

	Actors ActorList
	Skills SkillList
	Items  ItemList
	Troops TroopList
}

// LcfFields implements lcf.Record.
func (d *Database) LcfFields() []lcf.Field {
	return []lcf.Field{
		lcf.RecordArrayField(1, 2, "Actors", &d.Actors),
		lcf.RecordArrayField(3, 4, "Skills", &d.Skills),
		lcf.RecordArrayField(5, 6, "Items", &d.Items),
		lcf.RecordArrayField(7, 8, "Troops", &d.Troops),
	}
}
