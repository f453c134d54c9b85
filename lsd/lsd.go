// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package lsd is the .lsd (save game) file façade, including the
// TDateTime save-timestamp conversion (rpg.ToTDateTime et al.).
package lsd

import (
	"os"

	"github.com/rpg2k/lcf"
	"github.com/rpg2k/lcf/log"
	"github.com/rpg2k/lcf/rpg"
)

// Magic is a placeholder for the .lsd header string, following the
// "Lcf<Name>" convention LcfDataBase/LcfMapTree/LcfMapUnit use. The real byte
// sequence should be recovered from an actual .lsd sample and substituted
// here before interop with real save files matters.
const Magic = "LcfSaveGame"

// RootElement is the XML mirror's root element name.
const RootElement = "LSD"

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

// Load memory-maps name and decodes it as a .lsd save game.
func Load(name string, opts *Options) (*rpg.Save, lcf.Warnings, error) {
	mf, err := lcf.OpenMapped(name)
	if err != nil {
		return nil, nil, err
	}
	defer mf.Close()
	return LoadBytes(mf.Bytes(), opts)
}

// LoadBytes decodes an in-memory .lsd image.
func LoadBytes(data []byte, opts *Options) (*rpg.Save, lcf.Warnings, error) {
	var warnings lcf.Warnings

	r := lcf.NewReader(data, "")
	header, matched, err := lcf.ReadMagic(r, Magic)
	if err != nil {
		return nil, warnings, err
	}
	if !matched {
		warnings.Add("lsd: magic header mismatch, got " + header + ", expected " + Magic)
		opts.logger().Warnf("lsd: magic header mismatch: got %q, expected %q", header, Magic)
	}

	enc := ""
	if opts != nil {
		enc = opts.Encoding
	}
	if enc == "" {
		enc = lcf.DetectEncoding(r.Remaining())
	}
	r.SetEncoding(enc)

	s := &rpg.Save{}
	if err := lcf.ReadRoot(r, s); err != nil {
		return nil, warnings, err
	}
	return s, warnings, nil
}

// Save encodes s and writes it to name with the .lsd magic header. The
// writer never mutates s: a caller wanting rpg_rt's own "fill the
// timestamp in at save time" behavior stamps s.SaveTime with
// rpg.GenerateTimestamp() before calling Save.
func Save(name string, s *rpg.Save, opts *Options) error {
	b, err := SaveBytes(s, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(name, b, 0o644)
}

// SaveBytes encodes s into an in-memory .lsd image. s is read-only; it is
// the caller's responsibility to have already stamped SaveTime if desired.
func SaveBytes(s *rpg.Save, opts *Options) ([]byte, error) {
	enc := "1252"
	if opts != nil && opts.Encoding != "" {
		enc = opts.Encoding
	}
	w := lcf.NewWriter(enc)
	lcf.WriteMagic(w, Magic)
	if err := lcf.WriteRoot(w, s); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// LoadXML parses the XML mirror of a save-game document.
func LoadXML(xr *lcf.XMLReader) (*rpg.Save, error) {
	s := &rpg.Save{}
	if err := lcf.ReadXMLRoot(xr, RootElement, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveXML renders s as the XML mirror document.
func SaveXML(xw *lcf.XMLWriter, s *rpg.Save) error {
	return lcf.WriteXMLRoot(xw, RootElement, s)
}
