// Package strcase mirrors the byte-oriented caseconv API for strings.
package strcase

import (
	"github.com/charlievieth/caseconv"
)

// New returns a lazy byte iterator converting s under kind and mode.
func New(s string, kind caseconv.Kind, mode caseconv.Mode) *caseconv.Iter {
	return caseconv.New([]byte(s), kind, mode)
}

// Append appends the converted form of s to dst and returns the extended
// buffer.
func Append(dst []byte, s string, kind caseconv.Kind, mode caseconv.Mode) []byte {
	return caseconv.Append(dst, []byte(s), kind, mode)
}

// Convert returns the case-converted copy of s.
func Convert(s string, kind caseconv.Kind, mode caseconv.Mode) string {
	return string(caseconv.Convert([]byte(s), kind, mode))
}

// ToLower returns s with all cased scalar values mapped to their full
// Unicode lowercase forms.
func ToLower(s string) string { return Convert(s, caseconv.Lower, caseconv.ModeFull) }

// ToUpper returns s with all cased scalar values mapped to their full
// Unicode uppercase forms.
func ToUpper(s string) string { return Convert(s, caseconv.Upper, caseconv.ModeFull) }

// ToTitle returns s with the first cased scalar value of every word
// titlecased and the rest lowercased.
func ToTitle(s string) string { return Convert(s, caseconv.Title, caseconv.ModeFull) }

// FoldCase returns s with every scalar value replaced by its full Unicode
// case fold.
func FoldCase(s string) string { return Convert(s, caseconv.Fold, caseconv.ModeFull) }
