// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package lmu is the .lmu (map unit) file façade: a single map's tile layers
// and events.
package lmu

import (
	"os"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/log"
	"github.com/rpg2k/lcf/rpg"
)

// Magic is the 10-byte header every .lmu file begins with.
const Magic = "LcfMapUnit"

// RootElement is the XML mirror's root element name.
const RootElement = "LMU"

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

// Load memory-maps name and decodes it as a .lmu map unit.
func Load(name string, opts *Options) (*rpg.Map, lcf.Warnings, error) {
	mf, err := lcf.OpenMapped(name)
	if err != nil {
		return nil, nil, err
	}
	defer mf.Close()
	return LoadBytes(mf.Bytes(), opts)
}

// LoadBytes decodes an in-memory .lmu image.
func LoadBytes(data []byte, opts *Options) (*rpg.Map, lcf.Warnings, error) {
	var warnings lcf.Warnings

	r := lcf.NewReader(data, "")
	header, matched, err := lcf.ReadMagic(r, Magic)
	if err != nil {
		return nil, warnings, err
	}
	if !matched {
		warnings.Add("lmu: magic header mismatch, got " + header + ", expected " + Magic)
		opts.logger().Warnf("lmu: magic header mismatch: got %q, expected %q", header, Magic)
	}

	enc := ""
	if opts != nil {
		enc = opts.Encoding
	}
	if enc == "" {
		enc = lcf.DetectEncoding(r.Remaining())
	}
	r.SetEncoding(enc)

	m := &rpg.Map{}
	if err := lcf.ReadRoot(r, m); err != nil {
		return nil, warnings, err
	}
	return m, warnings, nil
}

// Save encodes m and writes it to name with the .lmu magic header.
func Save(name string, m *rpg.Map, opts *Options) error {
	b, err := SaveBytes(m, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(name, b, 0o644)
}

// SaveBytes encodes m into an in-memory .lmu image.
func SaveBytes(m *rpg.Map, opts *Options) ([]byte, error) {
	enc := "1252"
	if opts != nil && opts.Encoding != "" {
		enc = opts.Encoding
	}
	w := lcf.NewWriter(enc)
	lcf.WriteMagic(w, Magic)
	if err := lcf.WriteRoot(w, m); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// LoadXML parses the XML mirror of a map-unit document.
func LoadXML(xr *lcf.XMLReader) (*rpg.Map, error) {
	m := &rpg.Map{}
	if err := lcf.ReadXMLRoot(xr, RootElement, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SaveXML renders m as the XML mirror document.
func SaveXML(xw *lcf.XMLWriter, m *rpg.Map) error {
	return lcf.WriteXMLRoot(xw, RootElement, m)
}
