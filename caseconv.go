package caseconv

import (
	"strconv"
	"unicode/utf8"
)

// Kind selects which case mapping a conversion applies.
type Kind uint8

const (
	// Lower maps every cased scalar value to its lowercase form.
	Lower Kind = iota
	// Upper maps every cased scalar value to its uppercase form.
	Upper
	// Title maps the first cased scalar value of each word to its
	// titlecase form and every following cased scalar value to lowercase.
	Title
	// Fold maps every scalar value to its case fold, for caseless
	// comparison. Folding is its own mapping, not a case direction.
	Fold
	// Capitalize maps the first scalar value of the input to uppercase
	// and every following scalar value to lowercase.
	Capitalize
)

func (k Kind) String() string {
	switch k {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	case Title:
		return "Title"
	case Fold:
		return "Fold"
	case Capitalize:
		return "Capitalize"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Mode selects how mappings are resolved.
type Mode uint8

const (
	// ModeFull applies full Unicode mappings, including multi-scalar
	// expansions and context dependent special casing.
	ModeFull Mode = iota
	// ModeASCII restricts conversion to the ASCII letters; all other
	// bytes are passed through unchanged.
	ModeASCII
	// ModeTurkic is ModeFull with the Turkic dotted/dotless I rules
	// active.
	ModeTurkic
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "Full"
	case ModeASCII:
		return "ASCII"
	case ModeTurkic:
		return "Turkic"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// maxExpansion is the maximum size, in bytes, of the converted form of any
// single scalar value. The table generator re-verifies this bound whenever
// the tables are regenerated.
const maxExpansion = 6

// An Iter lazily converts a byte slice, yielding output bytes on demand.
// It owns no buffer beyond a small scratch array and must not be shared
// across goroutines while being advanced. Once consumed it cannot be reset;
// create a new Iter to convert again.
type Iter struct {
	src   []byte
	kind  Kind
	mode  Mode
	word  bool // next cased scalar starts a titlecase word
	prev  bool // last non-ignorable scalar was cased
	first bool // no scalar converted yet
	buf   [3 * utf8.UTFMax]byte
}

// New returns an Iter converting p under the given kind and mode.
// It panics if kind or mode is not one of the declared constants.
func New(p []byte, kind Kind, mode Mode) *Iter {
	if kind > Capitalize {
		panic("caseconv: invalid conversion kind: " + kind.String())
	}
	if mode > ModeTurkic {
		panic("caseconv: invalid conversion mode: " + mode.String())
	}
	return &Iter{src: p, kind: kind, mode: mode, word: true, first: true}
}

// Next returns the output bytes for the next input unit: one decoded scalar
// value, or one byte of an ill-formed sequence. The returned slice is
// only valid until the following call to Next. Next returns false once the
// input is exhausted.
func (it *Iter) Next() ([]byte, bool) {
	if len(it.src) == 0 {
		return nil, false
	}
	if it.mode == ModeASCII {
		return it.nextASCII()
	}
	r, size := utf8.DecodeRune(it.src)
	if r == utf8.RuneError && size <= 1 {
		// Ill-formed sequence: pass the byte through untouched. It is
		// not a scalar value and does not affect the word state.
		b := it.src[:1:1]
		it.src = it.src[1:]
		return b, true
	}
	it.src = it.src[size:]

	ctx := it.context(r)
	var rs [3]rune
	var n int
	switch it.kind {
	case Lower:
		n = lowerRunes(r, ctx, &rs)
	case Upper:
		n = upperRunes(r, ctx, &rs)
	case Title:
		n = it.titleStep(r, ctx, &rs)
	case Fold:
		n = foldRunes(r, ctx, &rs)
	case Capitalize:
		if it.first {
			n = upperRunes(r, ctx, &rs)
		} else {
			n = lowerRunes(r, ctx, &rs)
		}
	}
	it.first = false
	if it.kind != Upper && it.kind != Fold {
		if isCased(r) {
			it.prev = true
		} else if !isCaseIgnorable(r) {
			it.prev = false
		}
	}

	m := 0
	for _, cr := range rs[:n] {
		m += utf8.EncodeRune(it.buf[m:], cr)
	}
	return it.buf[:m], true
}

// titleStep resolves one scalar under Title, tracking the word state:
// the first cased scalar of a word titlecases, the rest lowercase, and any
// caseless, non-ignorable scalar starts a new word.
func (it *Iter) titleStep(r rune, ctx caseContext, rs *[3]rune) int {
	if isCased(r) {
		if it.word {
			it.word = false
			return titleRunes(r, ctx, rs)
		}
		return lowerRunes(r, ctx, rs)
	}
	if !isCaseIgnorable(r) {
		it.word = true
	}
	rs[0] = r
	return 1
}

// context captures the locale and position inputs consulted by the
// conditional special-casing rules for scalar r.
func (it *Iter) context(r rune) caseContext {
	ctx := caseContext{turkic: it.mode == ModeTurkic}
	if r == capitalSigma && it.kind != Upper && it.kind != Fold {
		ctx.final = it.wordFinal()
	}
	return ctx
}

// wordFinal reports whether the scalar just consumed ends a run of cased
// letters: the previous non-ignorable scalar was cased and the next one,
// skipping case-ignorable scalars, is not cased.
func (it *Iter) wordFinal() bool {
	if !it.prev {
		return false
	}
	p := it.src
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size <= 1 {
			return true
		}
		if !isCaseIgnorable(r) {
			return !isCased(r)
		}
		p = p[size:]
	}
	return true
}

func (it *Iter) nextASCII() ([]byte, bool) {
	b := it.src[0]
	it.src = it.src[1:]
	switch it.kind {
	case Lower, Fold:
		b = _lower[b]
	case Upper:
		b = _upper[b]
	case Title:
		if isAlpha(b) {
			if it.word {
				b = _upper[b]
			} else {
				b = _lower[b]
			}
			it.word = false
		} else if !isIgnorableASCII(b) {
			it.word = true
		}
	case Capitalize:
		if it.first {
			b = _upper[b]
		} else {
			b = _lower[b]
		}
	}
	it.first = false
	it.buf[0] = b
	return it.buf[:1], true
}

// Append appends the converted form of p to dst and returns the extended
// buffer. It panics if kind or mode is invalid.
func Append(dst, p []byte, kind Kind, mode Mode) []byte {
	it := New(p, kind, mode)
	if mode == ModeASCII {
		return appendASCII(dst, p, kind)
	}
	for {
		b, ok := it.Next()
		if !ok {
			return dst
		}
		dst = append(dst, b...)
	}
}

// Convert returns the case-converted copy of p. The result is a fresh
// allocation; p is never modified.
func Convert(p []byte, kind Kind, mode Mode) []byte {
	n := len(p)
	if mode != ModeASCII {
		// Worst case is maxExpansion output bytes per decoded scalar;
		// ill-formed bytes are copied one for one.
		n = maxExpansion * utf8.RuneCount(p)
	}
	buf := Append(make([]byte, 0, n), p, kind, mode)
	if len(buf)*2 < cap(buf) {
		// Expansions were rare: give back the worst-case slack.
		buf = append(make([]byte, 0, len(buf)), buf...)
	}
	return buf
}

// ToLower returns p with all cased scalar values mapped to their full
// Unicode lowercase forms.
func ToLower(p []byte) []byte { return Convert(p, Lower, ModeFull) }

// ToUpper returns p with all cased scalar values mapped to their full
// Unicode uppercase forms.
func ToUpper(p []byte) []byte { return Convert(p, Upper, ModeFull) }

// ToTitle returns p with the first cased scalar value of every word
// titlecased and the rest lowercased.
func ToTitle(p []byte) []byte { return Convert(p, Title, ModeFull) }

// FoldCase returns p with every scalar value replaced by its full Unicode
// case fold. Folded strings compare equal exactly when they are caseless
// matches of each other.
func FoldCase(p []byte) []byte { return Convert(p, Fold, ModeFull) }
