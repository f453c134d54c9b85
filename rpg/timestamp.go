// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package rpg holds the concrete record types of the database, map tree, map
// unit, and save-game file kinds: the schema-described structs that
// lcf.ReadRecord/lcf.WriteRecord and the XML mirror drive through their
// LcfFields() tables.
package rpg

import "time"

// delphiEpoch is Delphi's TDateTime zero point: midnight, 1899-12-30. A
// save file's play-time/save-time fields are stored in this format.
var delphiEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ToTDateTime converts a UNIX timestamp (seconds since 1970-01-01 UTC) to
// Delphi's TDateTime: the integer part is days since delphiEpoch, the
// fractional part is the time of day as a fraction of 24 hours.
func ToTDateTime(t int64) float64 {
	d := time.Unix(t, 0).UTC().Sub(delphiEpoch)
	return d.Hours() / 24
}

// ToUnixTimestamp converts a Delphi TDateTime value back to a UNIX
// timestamp, truncated to whole seconds.
func ToUnixTimestamp(tdt float64) int64 {
	days := tdt * 24 * float64(time.Hour)
	return delphiEpoch.Add(time.Duration(days)).Unix()
}

// GenerateTimestamp returns the current time encoded as a Delphi TDateTime,
// the value a newly-written save file stamps its save-time field with.
func GenerateTimestamp() float64 {
	return ToTDateTime(time.Now().Unix())
}
