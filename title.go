package caseconv

import (
	"unicode"
	"unicode/utf8"
)

// _Cased is the set of scalar values that participate in case distinction
// (the Cased property over the stdlib range tables).
var _Cased = []*unicode.RangeTable{
	unicode.Lu,
	unicode.Ll,
	unicode.Lt,
	unicode.Other_Lowercase,
	unicode.Other_Uppercase,
}

// _CaseIgnorable holds the scalar values that neither begin nor end a
// titlecase word: marks, format controls, and modifier characters. They
// leave the word state untouched so that a combining mark cannot split a
// word in two.
var _CaseIgnorable = []*unicode.RangeTable{
	unicode.Mn,
	unicode.Me,
	unicode.Cf,
	unicode.Lm,
	unicode.Sk,
}

// isCased reports whether r participates in upper/lower case distinction.
// Digits, punctuation, whitespace, and symbols are caseless.
func isCased(r rune) bool {
	if uint32(r) < utf8.RuneSelf {
		return isAlpha(byte(r))
	}
	return unicode.In(r, _Cased...)
}

func isCaseIgnorable(r rune) bool {
	if uint32(r) < utf8.RuneSelf {
		return r == '\'' || r == '^' || r == '`'
	}
	return unicode.In(r, _CaseIgnorable...)
}
