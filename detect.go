// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import "sort"

// This file implements an encoding-detection heuristic: try each candidate
// codepage and score how plausible the resulting text looks, keeping the
// best match.

// candidateCodepages is the short list DetectEncoding tries, in priority
// order: the Western-European default first (it is by far the most common
// among circulating RPG2k/2k3 projects), then the other single-byte Windows
// codepages, then the CJK multi-byte ones.
var candidateCodepages = []string{
	"1252", "1250", "1251", "1253", "1254", "1257",
	"932", "936", "949", "950",
}

// encodingScore holds one candidate's fitness; lower is better.
type encodingScore struct {
	codepage string
	penalty  float64
}

// DetectEncodings scores every candidate codepage against sample (typically
// the concatenation of a database file's string fields) and returns them
// best-first. A candidate that fails to decode at all is dropped entirely.
func DetectEncodings(sample []byte) []string {
	scores := make([]encodingScore, 0, len(candidateCodepages))
	for _, cp := range candidateCodepages {
		p, ok := scoreCodepage(sample, cp)
		if !ok {
			continue
		}
		scores = append(scores, encodingScore{codepage: cp, penalty: p})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].penalty < scores[j].penalty })
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.codepage
	}
	return out
}

// DetectEncoding returns the single best-scoring candidate codepage, or the
// Western-European default "1252" if every candidate failed to decode. An
// empty sample decodes under every candidate with no penalty, so the first
// candidate in DetectEncodings' order is returned for it.
func DetectEncoding(sample []byte) string {
	candidates := DetectEncodings(sample)
	if len(candidates) == 0 {
		return "1252"
	}
	return candidates[0]
}

// scoreCodepage decodes sample as cp and penalizes it for U+FFFD replacement
// runes (the x/text decoders substitute U+FFFD for invalid sequences; only an
// error from ToUTF8 drops the candidate) and for control characters in the
// 0x00-0x1F range other than \t through \r, which tend to show up when the
// wrong single-byte codepage is applied to multi-byte CJK text.
func scoreCodepage(sample []byte, cp string) (float64, bool) {
	s, err := ToUTF8(sample, cp)
	if err != nil {
		return 0, false
	}
	var penalty float64
	for _, r := range s {
		switch {
		case r == 0xFFFD:
			penalty += 5
		case r < 0x09:
			penalty += 2
		case r > 0x0D && r < 0x20:
			penalty += 2
		}
	}
	return penalty, true
}
