// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package ldb

// Fuzz is a go-fuzz entry point: returns 1 only on a clean parse, 0 on any
// decode error, so the fuzzer treats panics and unexpected successes as the
// only interesting signal.
func Fuzz(data []byte) int {
	if _, _, err := LoadBytes(data, nil); err != nil {
		return 0
	}
	return 1
}
