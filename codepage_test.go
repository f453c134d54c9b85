// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package lcf

import "testing"

func TestToUTF8FromUTF8RoundTrip(t *testing.T) {
	tests := []string{"1252", "932", "936", "949", "950", "UTF-8"}
	for _, cp := range tests {
		t.Run(cp, func(t *testing.T) {
			s := "Hero"
			b, err := FromUTF8(s, cp)
			if err != nil {
				t.Fatalf("FromUTF8(%q): %v", cp, err)
			}
			got, err := ToUTF8(b, cp)
			if err != nil {
				t.Fatalf("ToUTF8(%q): %v", cp, err)
			}
			if got != s {
				t.Errorf("round-trip via %s = %q, want %q", cp, got, s)
			}
		})
	}
}

func TestCodepageAliasesResolveSameEncoding(t *testing.T) {
	a, err := CodepageToEncoding("1252")
	if err != nil {
		t.Fatalf("CodepageToEncoding(1252): %v", err)
	}
	b, err := CodepageToEncoding("CP1252")
	if err != nil {
		t.Fatalf("CodepageToEncoding(CP1252): %v", err)
	}
	if a != b {
		t.Error("\"1252\" and \"CP1252\" should resolve to the same encoding")
	}
}

func TestCodepageUnknownNameFails(t *testing.T) {
	_, err := CodepageToEncoding("not-a-real-codepage")
	if err == nil {
		t.Fatal("expected EncodingUnavailable error")
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != EncodingUnavailable {
		t.Errorf("got %v, want EncodingUnavailable", err)
	}
}

func TestRecodeSameCodepageIsNoOp(t *testing.T) {
	original, err := FromUTF8("café", "1252")
	if err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	recoded, err := Recode(original, "1252", "1252")
	if err != nil {
		t.Fatalf("Recode: %v", err)
	}
	if string(recoded) != string(original) {
		t.Error("Recode with identical from/to should be a no-op")
	}
}

func TestDetectEncodingFallsBackOnEmptySample(t *testing.T) {
	if got := DetectEncoding(nil); got != "1252" {
		t.Errorf("DetectEncoding(nil) = %q, want 1252 default", got)
	}
}

func TestDetectEncodingsOrdersBestFirst(t *testing.T) {
	clean, err := FromUTF8("The quick brown fox", "1252")
	if err != nil {
		t.Fatalf("FromUTF8: %v", err)
	}
	candidates := DetectEncodings(clean)
	if len(candidates) == 0 {
		t.Fatal("expected at least one candidate for plain ASCII text")
	}
	// Plain ASCII decodes cleanly under every single-byte candidate, so the
	// priority-ordered default (1252) should still sort first among ties.
	if candidates[0] != "1252" {
		t.Errorf("best candidate = %q, want 1252", candidates[0])
	}
}
