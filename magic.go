// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

// This file is the shared magic-header preamble every file façade
// (ldb/lmt/lmu/lsd) reads before the root record itself: a varint length
// followed by that many raw bytes. The header is plain ASCII and is never
// codepage-transcoded.

// ReadMagic reads the length-prefixed header string from the start of r and
// reports whether it matches want exactly. A length-mismatched or
// content-mismatched header is not fatal here; the caller decides whether to
// record a Warnings entry or abort.
func ReadMagic(r *Reader, want string) (got string, matched bool, err error) {
	n, err := r.ReadVarint()
	if err != nil {
		return "", false, err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", false, err
	}
	got = string(b)
	return got, got == want, nil
}

// WriteMagic writes magic as a varint-length-prefixed header string.
func WriteMagic(w *Writer, magic string) {
	w.WriteVarint(uint32(len(magic)))
	w.WriteBytes([]byte(magic))
}
