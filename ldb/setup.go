// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package ldb

import "github.com/rpg2k/lcf/rpg"

// Setup runs the post-load actor initialization pass every .ldb load needs:
// delayed initialization of actor fields that are engine dependent rather
// than authored. It backfills the one engine-dependent default every
// RPG2k/2k3 database actually relies on in practice: an actor whose
// FinalLevel was never raised above its InitialLevel (a common authoring
// shortcut for low-level-cap projects) keeps InitialLevel as its effective
// cap rather than silently exceeding it at runtime.
//
// Setup is idempotent and safe to call more than once; LoadBytes and
// LoadXML both call it so every decode path returns a fully initialized
// Database regardless of entry point.
func Setup(db *rpg.Database) {
	for i := range db.Actors {
		a := &db.Actors[i]
		if a.FinalLevel < a.InitialLevel {
			a.FinalLevel = a.InitialLevel
		}
	}
}
