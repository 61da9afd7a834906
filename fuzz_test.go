// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package caseconv

import (
	"bytes"
	"fmt"
	"math/rand"
	"strconv"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

var unicodeCategories = rangetable.Merge([]*unicode.RangeTable{
	unicode.Cf,
	unicode.Letter,
	unicode.Mark,
	unicode.Number,
	unicode.Punct,
	unicode.Space,
	unicode.Symbol,
	unicode.Title,
	unicode.Upper,
}...)

var interestingRunes = generateInterestingRunes()

func generateInterestingRunes() []rune {
	runes := make([]rune, 0, 2048)
	// Every scalar with a multi-scalar mapping or an irregular fold.
	for _, tab := range [][]expansion{
		_LowerExpansion[:], _UpperExpansion[:], _TitleExpansion[:], _FoldExpansion[:],
	} {
		for _, e := range tab {
			runes = append(runes, e.from)
			for _, r := range e.to {
				if r != 0 {
					runes = append(runes, r)
				}
			}
		}
	}
	for _, p := range _FoldDelta {
		runes = append(runes, rune(p.From), rune(p.To))
	}
	// The context sensitive scalars.
	runes = append(runes,
		capitalSigma, smallSigma, smallFinalSigma,
		capitalI, smallI, capitalDottedI, smallDotlessI,
	)
	return runes
}

var sampledRunes = generateSampledRunes()

func generateSampledRunes() []rune {
	runes := make([]rune, 0, 4096)
	i := 0
	rangetable.Visit(unicodeCategories, func(r rune) {
		if i%97 == 0 && utf8.ValidRune(r) && r != utf8.RuneError {
			runes = append(runes, r)
		}
		i++
	})
	return runes
}

func randRune(rr *rand.Rand) rune {
	switch f := rr.Float64(); {
	case f <= 0.25:
		return interestingRunes[rr.Intn(len(interestingRunes))]
	case f <= 0.65:
		return sampledRunes[rr.Intn(len(sampledRunes))]
	default:
		return rune(rr.Intn('~'-' '+1)) + ' '
	}
}

func randInput(rr *rand.Rand, invalid bool) []byte {
	n := rr.Intn(24)
	b := make([]byte, 0, n*utf8.UTFMax)
	for i := 0; i < n; i++ {
		if invalid && rr.Float64() < 0.1 {
			b = append(b, byte(rr.Intn(0x80)+0x80))
			continue
		}
		b = utf8.AppendRune(b, randRune(rr))
	}
	return b
}

func runRandomTest(t *testing.T, fn func(t testing.TB, rr *rand.Rand)) {
	n := 2_500
	if testing.Short() {
		n = 100
	}
	seeds := []int64{
		1,
		time.Now().UnixNano(),
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			rr := rand.New(rand.NewSource(seed))
			for i := 0; i < n; i++ {
				fn(t, rr)
			}
		})
	}
}

var fuzzKinds = []Kind{Lower, Upper, Title, Fold, Capitalize}
var fuzzModes = []Mode{ModeFull, ModeASCII, ModeTurkic}

// Convert, Append, and the Iter must produce identical output.
func TestConvertAgreementFuzz(t *testing.T) {
	runRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		p := randInput(rr, true)
		kind := fuzzKinds[rr.Intn(len(fuzzKinds))]
		mode := fuzzModes[rr.Intn(len(fuzzModes))]
		want := Convert(p, kind, mode)
		if got := Append(nil, p, kind, mode); !bytes.Equal(got, want) {
			t.Errorf("Append(nil, %q, %s, %s) = %q; Convert = %q", p, kind, mode, got, want)
		}
		it := New(p, kind, mode)
		var got []byte
		for {
			b, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, b...)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Iter(%q, %s, %s) = %q; Convert = %q\nArg: %s",
				p, kind, mode, got, want, strconv.QuoteToASCII(string(p)))
		}
	})
}

// Converting twice must equal converting once for every kind but Capitalize.
func TestConvertIdempotentFuzz(t *testing.T) {
	kinds := []Kind{Lower, Upper, Title, Fold}
	runRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		p := randInput(rr, true)
		kind := kinds[rr.Intn(len(kinds))]
		mode := fuzzModes[rr.Intn(len(fuzzModes))]
		once := Convert(p, kind, mode)
		twice := Convert(once, kind, mode)
		if !bytes.Equal(once, twice) {
			t.Errorf("Convert(%s, %s) not idempotent:\nin:    %s\nonce:  %s\ntwice: %s",
				kind, mode,
				strconv.QuoteToASCII(string(p)),
				strconv.QuoteToASCII(string(once)),
				strconv.QuoteToASCII(string(twice)))
		}
	})
}

// Output never exceeds maxExpansion bytes per input scalar, and converting
// well-formed input yields well-formed output.
func TestConvertBoundsFuzz(t *testing.T) {
	runRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		p := randInput(rr, false)
		kind := fuzzKinds[rr.Intn(len(fuzzKinds))]
		mode := fuzzModes[rr.Intn(len(fuzzModes))]
		got := Convert(p, kind, mode)
		if max := maxExpansion * utf8.RuneCount(p); len(got) > max {
			t.Errorf("Convert(%q, %s, %s): output length %d exceeds bound %d",
				p, kind, mode, len(got), max)
		}
		if utf8.Valid(p) && !utf8.Valid(got) {
			t.Errorf("Convert(%q, %s, %s) = %q: ill-formed output from well-formed input",
				p, kind, mode, got)
		}
	})
}

// ModeASCII leaves every byte outside A-Z / a-z untouched, and agrees with
// ModeFull whenever the input is pure ASCII.
func TestASCIIModeFuzz(t *testing.T) {
	runRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		kind := fuzzKinds[rr.Intn(len(fuzzKinds))]

		p := randInput(rr, true)
		got := Convert(p, kind, ModeASCII)
		if len(got) != len(p) {
			t.Fatalf("Convert(%q, %s, ModeASCII): length %d != %d", p, kind, len(got), len(p))
		}
		for i := range p {
			if !isAlpha(p[i]) && got[i] != p[i] {
				t.Errorf("Convert(%q, %s, ModeASCII) modified byte %d: %q => %q",
					p, kind, i, p[i], got[i])
			}
		}

		a := make([]byte, rr.Intn(24))
		for i := range a {
			a[i] = byte(rr.Intn(0x80))
		}
		full := Convert(a, kind, ModeFull)
		ascii := Convert(a, kind, ModeASCII)
		if !bytes.Equal(full, ascii) {
			t.Errorf("Convert(%q, %s): Full = %q, ASCII = %q", a, kind, full, ascii)
		}
	})
}

// Folding is insensitive to the case of its input: fold(lower(x)) and
// fold(upper(x)) both equal fold(x).
func TestFoldInsensitiveFuzz(t *testing.T) {
	runRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		p := randInput(rr, false)
		want := Convert(p, Fold, ModeFull)
		lower := Convert(Convert(p, Lower, ModeFull), Fold, ModeFull)
		if !bytes.Equal(lower, want) {
			t.Errorf("FoldCase(ToLower(%q)) = %q; want: %q\nArg: %s",
				p, lower, want, strconv.QuoteToASCII(string(p)))
		}
	})
}

// Ill-formed bytes are passed through verbatim: stripping the invalid bytes
// from input and output must leave a matching conversion.
func TestInvalidPassthroughFuzz(t *testing.T) {
	runRandomTest(t, func(t testing.TB, rr *rand.Rand) {
		p := randInput(rr, true)
		kind := fuzzKinds[rr.Intn(len(fuzzKinds))]
		it := New(p, kind, ModeFull)
		src := p
		for len(src) > 0 {
			r, size := utf8.DecodeRune(src)
			b, ok := it.Next()
			if !ok {
				t.Fatalf("Next() = _, false with %d input bytes left", len(src))
			}
			if r == utf8.RuneError && size <= 1 {
				if len(b) != 1 || b[0] != src[0] {
					t.Errorf("ill-formed byte %#02x converted to %q", src[0], b)
				}
			}
			src = src[size:]
		}
	})
}
