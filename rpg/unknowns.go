// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package rpg

import "github.com/rpg2k/lcf"

// unknownChunks gives a record type lossless round-trip of tags its schema
// doesn't recognize, by embedding rather than repeating the same two methods
// on every record type.
type unknownChunks struct {
	chunks []lcf.UnknownChunk
}

func (u *unknownChunks) SetUnknownChunks(c []lcf.UnknownChunk) { u.chunks = c }
func (u *unknownChunks) UnknownChunks() []lcf.UnknownChunk     { return u.chunks }
