package strcase

import (
	"testing"

	"github.com/charlievieth/caseconv"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		in, out string
		kind    caseconv.Kind
		mode    caseconv.Mode
	}{
		{"Binary Safe", "binary safe", caseconv.Lower, caseconv.ModeFull},
		{"straße", "STRASSE", caseconv.Upper, caseconv.ModeFull},
		{"hello world", "Hello World", caseconv.Title, caseconv.ModeFull},
		{"Maße", "masse", caseconv.Fold, caseconv.ModeFull},
		{"aBC def", "Abc def", caseconv.Capitalize, caseconv.ModeFull},
		{"İstanbul", "istanbul", caseconv.Lower, caseconv.ModeTurkic},
		{"Αύριο", "Αύριο", caseconv.Lower, caseconv.ModeASCII},
		{"abc\xff\xfexyz", "ABC\xff\xfeXYZ", caseconv.Upper, caseconv.ModeFull},
	}
	for _, test := range tests {
		if got := Convert(test.in, test.kind, test.mode); got != test.out {
			t.Errorf("Convert(%q, %s, %s) = %q; want: %q",
				test.in, test.kind, test.mode, got, test.out)
		}
	}
}

func TestShorthands(t *testing.T) {
	if got := ToLower("ΟΔΟΣ"); got != "οδος" {
		t.Errorf("ToLower(%q) = %q; want: %q", "ΟΔΟΣ", got, "οδος")
	}
	if got := ToUpper("ﬃ"); got != "FFI" {
		t.Errorf("ToUpper(%q) = %q; want: %q", "ﬃ", got, "FFI")
	}
	if got := ToTitle("don't stop"); got != "Don't Stop" {
		t.Errorf("ToTitle(%q) = %q; want: %q", "don't stop", got, "Don't Stop")
	}
	if a, b := FoldCase("Σίσυφος"), FoldCase("ΣΊΣΥΦΟΣ"); a != b {
		t.Errorf("FoldCase: %q != %q", a, b)
	}
}

func TestAppend(t *testing.T) {
	got := Append([]byte("x: "), "ΑΣ", caseconv.Lower, caseconv.ModeFull)
	if string(got) != "x: ας" {
		t.Errorf("Append = %q; want: %q", got, "x: ας")
	}
}

func TestNew(t *testing.T) {
	it := New("ﬁx", caseconv.Upper, caseconv.ModeFull)
	var out []byte
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, b...)
	}
	if string(out) != "FIX" {
		t.Errorf("Iter = %q; want: %q", out, "FIX")
	}
}
