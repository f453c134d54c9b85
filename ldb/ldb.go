// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package ldb is the .ldb (database) file façade: Load/Save and their XML
// mirror counterparts, plus the post-load actor setup pass.
package ldb

import (
	"os"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/log"
	"github.com/rpg2k/lcf/rpg"
)

// Magic is the 11-byte header every .ldb file begins with.
const Magic = "LcfDataBase"

// RootElement is the XML mirror's root element name.
const RootElement = "LDB"

// Options configures Load/Save. A nil Logger builds a quiet, error-level-only
// default (see log.NewHelper).
type Options struct {
	Logger *log.Helper

	// Encoding is the source/target codepage for string fields. Empty means
	// "auto-detect on load, Western-European default on save", per
	// lcf.DetectEncoding.
	Encoding string
}

func (o *Options) logger() *log.Helper {
	if o == nil || o.Logger == nil {
		return log.NewHelper(nil)
	}
	return o.Logger
}

// Load memory-maps name and decodes it as a .ldb database.
func Load(name string, opts *Options) (*rpg.Database, lcf.Warnings, error) {
	mf, err := lcf.OpenMapped(name)
	if err != nil {
		return nil, nil, err
	}
	defer mf.Close()
	return LoadBytes(mf.Bytes(), opts)
}

// LoadBytes decodes an in-memory .ldb image.
func LoadBytes(data []byte, opts *Options) (*rpg.Database, lcf.Warnings, error) {
	var warnings lcf.Warnings

	r := lcf.NewReader(data, "")
	header, matched, err := lcf.ReadMagic(r, Magic)
	if err != nil {
		return nil, warnings, err
	}
	if !matched {
		warnings.Add("ldb: magic header mismatch, got " + header + ", expected " + Magic)
		opts.logger().Warnf("ldb: magic header mismatch: got %q, expected %q", header, Magic)
	}

	enc := ""
	if opts != nil {
		enc = opts.Encoding
	}
	if enc == "" {
		enc = lcf.DetectEncoding(r.Remaining())
	}
	r.SetEncoding(enc)

	db := &rpg.Database{}
	if err := lcf.ReadRoot(r, db); err != nil {
		return nil, warnings, err
	}
	Setup(db)
	return db, warnings, nil
}

// Save encodes db and writes it to name with the .ldb magic header.
func Save(name string, db *rpg.Database, opts *Options) error {
	b, err := SaveBytes(db, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(name, b, 0o644)
}

// SaveBytes encodes db into an in-memory .ldb image.
func SaveBytes(db *rpg.Database, opts *Options) ([]byte, error) {
	enc := "1252"
	if opts != nil && opts.Encoding != "" {
		enc = opts.Encoding
	}
	w := lcf.NewWriter(enc)
	lcf.WriteMagic(w, Magic)
	if err := lcf.WriteRoot(w, db); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// LoadXML parses the XML mirror of a database document.
func LoadXML(xr *lcf.XMLReader) (*rpg.Database, error) {
	db := &rpg.Database{}
	if err := lcf.ReadXMLRoot(xr, RootElement, db); err != nil {
		return nil, err
	}
	Setup(db)
	return db, nil
}

// SaveXML renders db as the XML mirror document.
func SaveXML(xw *lcf.XMLWriter, db *rpg.Database) error {
	return lcf.WriteXMLRoot(xw, RootElement, db)
}
