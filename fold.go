package caseconv

import (
	"unicode"
	"unicode/utf8"
)

// foldPair maps one scalar value to its simple case fold.
type foldPair struct {
	From uint32
	To   uint32
}

// foldRunes writes the full case fold of r into rs and returns the number
// of scalars written. Folding uses its own tables: the CaseFolding.txt F
// expansions, the simple-fold deltas, and the Turkic T overrides; the
// special-casing rules for upper/lower/title never apply.
func foldRunes(r rune, ctx caseContext, rs *[3]rune) int {
	if ctx.turkic {
		switch r {
		case capitalI:
			rs[0] = smallDotlessI
			return 1
		case capitalDottedI:
			rs[0] = smallI
			return 1
		}
	}
	if n := lookupExpansion(_FoldExpansion[:], r, rs); n != 0 {
		return n
	}
	rs[0] = foldRune(r)
	return 1
}

// foldRune returns the simple case fold of r. The simple fold coincides
// with the simple lowercase mapping for all but the scalars recorded in
// _FoldDelta (Cherokee, the historic Cyrillic letters, and a handful of
// Greek and Latin symbols).
func foldRune(r rune) rune {
	if r < utf8.RuneSelf {
		return rune(_lower[r])
	}
	tab := _FoldDelta[:]
	lo, hi := 0, len(tab)
	for lo < hi {
		mid := (lo + hi) / 2
		if rune(tab[mid].From) < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(tab) && rune(tab[lo].From) == r {
		return rune(tab[lo].To)
	}
	return unicode.ToLower(r)
}
