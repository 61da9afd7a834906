package caseconv

import "testing"

func TestIsCased(t *testing.T) {
	cased := []rune{'a', 'Z', '\u00DF', '\u03A3', '\u03C2', '\u01C5', '\u0130', '\u0131', '\u13A0', '\uAB70', '\u02B0'}
	for _, r := range cased {
		if !isCased(r) {
			t.Errorf("isCased(%q) = false; want: true", r)
		}
	}
	caseless := []rune{' ', '\t', '1', '.', ',', '-', '_', '@', '\u4E2D', '\u0300', '\u00AD'}
	for _, r := range caseless {
		if isCased(r) {
			t.Errorf("isCased(%q) = true; want: false", r)
		}
	}
}

func TestIsCaseIgnorable(t *testing.T) {
	ignorable := []rune{'\'', '^', '`', '\u0300', '\u0301', '\u00AD', '\u02C8', '\u200D'}
	for _, r := range ignorable {
		if !isCaseIgnorable(r) {
			t.Errorf("isCaseIgnorable(%q) = false; want: true", r)
		}
	}
	plain := []rune{'a', 'Z', ' ', '1', '.', '-', '\u03A3', '\u4E2D'}
	for _, r := range plain {
		if isCaseIgnorable(r) {
			t.Errorf("isCaseIgnorable(%q) = true; want: false", r)
		}
	}
}

func TestTitleWordBreaks(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"hello world", "Hello World"},
		{"HELLO-WORLD", "Hello-World"},
		{"under_score", "Under_Score"},
		{"tab\tsplit", "Tab\tSplit"},
		{"o'clock", "O'clock"},
		{"rock 'n' roll", "Rock 'N' Roll"},
		{"a\u0300b c", "A\u0300b C"},   // combining mark does not break the word
		{"x\u00ady z", "X\u00ady Z"},   // nor does a soft hyphen
		{"1st 2nd 3rd", "1St 2Nd 3Rd"}, // digits are caseless, not ignorable
	}
	for _, test := range tests {
		got := Convert([]byte(test.in), Title, ModeFull)
		if string(got) != test.out {
			t.Errorf("Convert(%q, Title, Full) = %q; want: %q", test.in, got, test.out)
		}
	}
}

// The final-sigma rule: capital sigma lowers to \u03C2 only when it ends a
// run of cased letters, ignoring any case-ignorable scalars in between.
func TestFinalSigma(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"\u0391\u03A3", "\u03B1\u03C2"},
		{"\u0391\u03A3\u0391", "\u03B1\u03C3\u03B1"},
		{"\u03A3", "\u03C3"},               // no preceding cased letter
		{"\u0391\u03A3.", "\u03B1\u03C2."}, // trailing punctuation still final
		{"\u0386\u03A3", "\u03AC\u03C2"},
		{"\u0391\u03A3\u0301\u0392", "\u03B1\u03C3\u0301\u03B2"}, // marks after sigma are skipped
		{"\u0391'\u03A3", "\u03B1'\u03C2"},                       // apostrophe is case-ignorable
		{"1\u03A3", "1\u03C3"},                                   // digit is caseless
		{"\u0391\u03A3\xff", "\u03B1\u03C2\xff"},
	}
	for _, test := range tests {
		got := Convert([]byte(test.in), Lower, ModeFull)
		if string(got) != test.out {
			t.Errorf("Convert(%q, Lower, Full) = %q; want: %q", test.in, got, test.out)
		}
	}
}
