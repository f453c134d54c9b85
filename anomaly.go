// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

// Warnings collects non-fatal diagnostics encountered while loading a file
// (today: a magic-header mismatch). It is the direct descendant of the
// teacher's own Anomalies []string field (anomaly.go) and addAnomaly helper,
// generalized from "anomalies found in a PE" to "things this loader noticed
// but decided not to treat as fatal" — the HeaderMismatch kind in errors.go
// is the one Kind façades downgrade into a Warnings entry instead of
// returning it as an error.
type Warnings []string

// Add appends msg if it is not already present.
func (w *Warnings) Add(msg string) {
	for _, existing := range *w {
		if existing == msg {
			return
		}
	}
	*w = append(*w, msg)
}
