package caseconv

import "unicode"

const (
	capitalSigma    = 'Σ'
	smallSigma      = 'σ'
	smallFinalSigma = 'ς'

	capitalI       = 'I'
	smallI         = 'i'
	capitalDottedI = 'İ'
	smallDotlessI  = 'ı'
)

// caseContext carries the inputs a conditional special-casing rule may
// consult: the active locale and whether the current scalar sits at a
// word-final position.
type caseContext struct {
	turkic bool
	final  bool
}

// expansion maps one scalar value to its multi-scalar converted form.
// Unused trailing slots are zero.
type expansion struct {
	from rune
	to   [3]rune
}

// lowerRunes writes the full lowercase mapping of r into rs and returns the
// number of scalars written. Rules are applied in a fixed priority order:
// Turkic locale rules, then conditional rules, then unconditional
// expansions, then the simple mapping.
func lowerRunes(r rune, ctx caseContext, rs *[3]rune) int {
	if ctx.turkic {
		switch r {
		case capitalI:
			rs[0] = smallDotlessI
			return 1
		case capitalDottedI:
			// Turkic İ lowers to a plain i, with no combining dot
			// above appended.
			rs[0] = smallI
			return 1
		}
	}
	if r == capitalSigma {
		if ctx.final {
			rs[0] = smallFinalSigma
		} else {
			rs[0] = smallSigma
		}
		return 1
	}
	if n := lookupExpansion(_LowerExpansion[:], r, rs); n != 0 {
		return n
	}
	rs[0] = unicode.ToLower(r)
	return 1
}

// upperRunes writes the full uppercase mapping of r into rs and returns the
// number of scalars written.
func upperRunes(r rune, ctx caseContext, rs *[3]rune) int {
	if ctx.turkic && r == smallI {
		rs[0] = capitalDottedI
		return 1
	}
	if n := lookupExpansion(_UpperExpansion[:], r, rs); n != 0 {
		return n
	}
	rs[0] = unicode.ToUpper(r)
	return 1
}

// titleRunes writes the full titlecase mapping of r into rs and returns the
// number of scalars written.
func titleRunes(r rune, ctx caseContext, rs *[3]rune) int {
	if ctx.turkic && r == smallI {
		rs[0] = capitalDottedI
		return 1
	}
	if n := lookupExpansion(_TitleExpansion[:], r, rs); n != 0 {
		return n
	}
	rs[0] = unicode.ToTitle(r)
	return 1
}

// lookupExpansion binary searches tab, which is sorted by codepoint, and
// writes the expansion for r into rs. It returns 0 if r has no entry.
func lookupExpansion(tab []expansion, r rune, rs *[3]rune) int {
	lo, hi := 0, len(tab)
	for lo < hi {
		mid := (lo + hi) / 2
		if tab[mid].from < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(tab) || tab[lo].from != r {
		return 0
	}
	*rs = tab[lo].to
	if rs[2] != 0 {
		return 3
	}
	if rs[1] != 0 {
		return 2
	}
	return 1
}
