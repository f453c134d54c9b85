// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package lmt is the .lmt (map tree) file façade: the project's map
// hierarchy.
package lmt

import (
	"os"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/log"
	"github.com/rpg2k/lcf/rpg"
)

// Magic is the 10-byte header every .lmt file begins with.
const Magic = "LcfMapTree"

// RootElement is the XML mirror's root element name.
const RootElement = "LMT"

// Options configures Load/Save.
type Options struct {
	Logger   *log.Helper
	Encoding string
}

func (o *Options) logger() *log.Helper {
	if o == nil || o.Logger == nil {
		return log.NewHelper(nil)
	}
	return o.Logger
}

// Load memory-maps name and decodes it as a .lmt map tree.
func Load(name string, opts *Options) (*rpg.TreeMap, lcf.Warnings, error) {
	mf, err := lcf.OpenMapped(name)
	if err != nil {
		return nil, nil, err
	}
	defer mf.Close()
	return LoadBytes(mf.Bytes(), opts)
}

// LoadBytes decodes an in-memory .lmt image.
func LoadBytes(data []byte, opts *Options) (*rpg.TreeMap, lcf.Warnings, error) {
	var warnings lcf.Warnings

	r := lcf.NewReader(data, "")
	header, matched, err := lcf.ReadMagic(r, Magic)
	if err != nil {
		return nil, warnings, err
	}
	if !matched {
		warnings.Add("lmt: magic header mismatch, got " + header + ", expected " + Magic)
		opts.logger().Warnf("lmt: magic header mismatch: got %q, expected %q", header, Magic)
	}

	enc := ""
	if opts != nil {
		enc = opts.Encoding
	}
	if enc == "" {
		enc = lcf.DetectEncoding(r.Remaining())
	}
	r.SetEncoding(enc)

	tm := &rpg.TreeMap{}
	if err := lcf.ReadRoot(r, tm); err != nil {
		return nil, warnings, err
	}
	return tm, warnings, nil
}

// Save encodes tm and writes it to name with the .lmt magic header.
func Save(name string, tm *rpg.TreeMap, opts *Options) error {
	b, err := SaveBytes(tm, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(name, b, 0o644)
}

// SaveBytes encodes tm into an in-memory .lmt image.
func SaveBytes(tm *rpg.TreeMap, opts *Options) ([]byte, error) {
	enc := "1252"
	if opts != nil && opts.Encoding != "" {
		enc = opts.Encoding
	}
	w := lcf.NewWriter(enc)
	lcf.WriteMagic(w, Magic)
	if err := lcf.WriteRoot(w, tm); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// LoadXML parses the XML mirror of a map-tree document.
func LoadXML(xr *lcf.XMLReader) (*rpg.TreeMap, error) {
	tm := &rpg.TreeMap{}
	if err := lcf.ReadXMLRoot(xr, RootElement, tm); err != nil {
		return nil, err
	}
	return tm, nil
}

// SaveXML renders tm as the XML mirror document.
func SaveXML(xw *lcf.XMLWriter, tm *rpg.TreeMap) error {
	return lcf.WriteXMLRoot(xw, RootElement, tm)
}
