// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// MappedFile is an open, memory-mapped source file: just the byte-source
// concern, pared away from any notion of file kind or record graph, which
// belong to the ldb/lmt/lmu/lsd façade packages and rpg instead. Callers own
// the root record they decode into; there is no monolithic parsed-everything
// type here.
type MappedFile struct {
	data mmap.MMap
	f    *os.File
}

// OpenMapped memory-maps name read-only.
func OpenMapped(name string) (*MappedFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, wrapIOError(err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, wrapIOError(err)
	}
	return &MappedFile{data: data, f: f}, nil
}

// Bytes returns the mapped file's contents.
func (m *MappedFile) Bytes() []byte { return m.data }

// Close unmaps the file and closes the underlying descriptor.
func (m *MappedFile) Close() error {
	if m.data != nil {
		_ = m.data.Unmap()
	}
	if m.f != nil {
		return m.f.Close()
	}
	return nil
}
