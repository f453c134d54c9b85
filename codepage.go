// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// This file is the encoding bridge: every on-disk string is stored in
// whatever single-byte or multi-byte codepage the authoring tool's host OS
// used at save time, and is transcoded to and from UTF-8 at the
// Reader/Writer boundary so everything above ReadString/WriteString only
// ever sees valid Go strings.

// codepageAliases maps the codepage names used throughout this module (and
// accepted in an ini.Config's Encoding key) to golang.org/x/text encodings.
// The Windows code-page numbers are the ones the original tool's RPG2k/2k3
// editors actually shipped with; "UTF-8" and "ASCII" are added so a caller
// that already knows its data is plain ASCII/UTF-8 can skip transcoding
// entirely.
var codepageAliases = map[string]encoding.Encoding{
	"1252":       charmap.Windows1252,
	"CP1252":     charmap.Windows1252,
	"Windows-1252": charmap.Windows1252,
	"1250":       charmap.Windows1250,
	"CP1250":     charmap.Windows1250,
	"1251":       charmap.Windows1251,
	"CP1251":     charmap.Windows1251,
	"1253":       charmap.Windows1253,
	"1254":       charmap.Windows1254,
	"1257":       charmap.Windows1257,
	"932":        japanese.ShiftJIS,
	"CP932":      japanese.ShiftJIS,
	"Shift_JIS":  japanese.ShiftJIS,
	"936":        simplifiedchinese.GBK,
	"CP936":      simplifiedchinese.GBK,
	"GBK":        simplifiedchinese.GBK,
	"949":        korean.EUCKR,
	"CP949":      korean.EUCKR,
	"950":        traditionalchinese.Big5,
	"CP950":      traditionalchinese.Big5,
	"Big5":       traditionalchinese.Big5,
	"UTF-8":      unicode.UTF8,
	"ASCII":      charmap.Windows1252, // ASCII is a strict subset; reuse 1252 rather than fail
}

// CodepageToEncoding resolves a codepage name (a Windows code-page number,
// one of its common aliases, or a standard IANA name) to an
// encoding.Encoding. Unknown names fall through to ianaindex.IANA so any
// standard charset name (e.g. "ISO-8859-7") also works even though it has no
// entry above.
func CodepageToEncoding(name string) (encoding.Encoding, error) {
	if enc, ok := codepageAliases[name]; ok {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, newError(EncodingUnavailable, "unknown codepage: "+name)
	}
	return enc, nil
}

// ToUTF8 decodes b (encoded in the named codepage) into a UTF-8 string.
func ToUTF8(b []byte, codepage string) (string, error) {
	enc, err := CodepageToEncoding(codepage)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", wrapIOError(err)
	}
	return string(out), nil
}

// FromUTF8 encodes a UTF-8 string s into the named codepage.
func FromUTF8(s string, codepage string) ([]byte, error) {
	enc, err := CodepageToEncoding(codepage)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, wrapIOError(err)
	}
	return out, nil
}

// Recode transcodes b from one codepage to another by decoding it to UTF-8
// with ToUTF8 and re-encoding the result with FromUTF8. When from and to are
// the same name, b is returned unchanged.
func Recode(b []byte, from, to string) ([]byte, error) {
	if from == to {
		return b, nil
	}
	u, err := ToUTF8(b, from)
	if err != nil {
		return nil, err
	}
	return FromUTF8(u, to)
}
