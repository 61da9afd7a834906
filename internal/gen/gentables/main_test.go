// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unicodeDataSample = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
00B5;MICRO SIGN;Ll;0;L;<compat> 03BC;;;;N;MICRO SIGN;;039C;;039C
00DF;LATIN SMALL LETTER SHARP S;Ll;0;L;;;;;N;;;;;
03A3;GREEK CAPITAL LETTER SIGMA;Lu;0;L;;;;;N;;;;03C3;
1E9E;LATIN CAPITAL LETTER SHARP S;Lu;0;L;;;;;N;;;;00DF;
`

const specialCasingSample = `# SpecialCasing sample
00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S
0130; 0069 0307; 0130; 0130; # LATIN CAPITAL LETTER I WITH DOT ABOVE

# Conditional mappings are resolved in code, not in the tables.
03A3; 03C2; 03A3; 03A3; Final_Sigma; # GREEK CAPITAL LETTER SIGMA
0049; 0131; 0049; 0049; tr Not_Before_Dot; # LATIN CAPITAL LETTER I
`

const caseFoldingSample = `# CaseFolding sample
0041; C; 0061; # LATIN CAPITAL LETTER A
0049; T; 0131; # LATIN CAPITAL LETTER I
00B5; C; 03BC; # MICRO SIGN
00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
0130; T; 0069; # LATIN CAPITAL LETTER I WITH DOT ABOVE
03A3; C; 03C3; # GREEK CAPITAL LETTER SIGMA
1E9E; F; 0073 0073; # LATIN CAPITAL LETTER SHARP S
1E9E; S; 00DF; # LATIN CAPITAL LETTER SHARP S
`

func TestLoadSimpleMappings(t *testing.T) {
	simple := loadSimpleMappings(strings.NewReader(unicodeDataSample))
	require.Contains(t, simple, rune(0x0041))
	assert.Equal(t, rune(0x0061), simple[0x0041].lower)
	assert.Equal(t, rune(0x0041), simple[0x0061].upper)
	assert.Equal(t, rune(0x0041), simple[0x0061].title)
	assert.Equal(t, rune(0x039C), simple[0x00B5].upper)
	assert.NotContains(t, simple, rune(0x00DF))
}

func TestLoadSpecialCasing(t *testing.T) {
	simple := loadSimpleMappings(strings.NewReader(unicodeDataSample))
	sc := loadSpecialCasing(strings.NewReader(specialCasingSample), simple)

	// Conditional rows must not land in the unconditional tables.
	assert.NotContains(t, sc.lower, rune(0x03A3))
	assert.NotContains(t, sc.lower, rune(0x0049))

	assert.Equal(t, []rune{0x0053, 0x0073}, sc.title[0x00DF])
	assert.Equal(t, []rune{0x0053, 0x0053}, sc.upper[0x00DF])
	assert.Equal(t, []rune{0x0069, 0x0307}, sc.lower[0x0130])

	lower := expansions(sc.lower)
	require.Len(t, lower, 1)
	assert.Equal(t, rune(0x0130), lower[0].from)

	// Single-scalar full mappings (00DF lowers to itself) are dropped:
	// the resolver already falls back to the simple mapping.
	for _, e := range expansions(sc.lower) {
		assert.Greater(t, len(e.to), 1)
	}
}

func TestLoadCaseFolds(t *testing.T) {
	simple := loadSimpleMappings(strings.NewReader(unicodeDataSample))
	cf := loadCaseFolds(strings.NewReader(caseFoldingSample), simple)

	// 0041 folds to its simple lowercase form and 1E9E to 00DF: neither
	// needs a delta entry. The micro sign does.
	require.Len(t, cf.deltas, 1)
	assert.Equal(t, foldPair{0x00B5, 0x03BC}, cf.deltas[0])

	require.Len(t, cf.expansions, 2)
	tab := sortExpansions(cf.expansions)
	assert.Equal(t, rune(0x00DF), tab[0].from)
	assert.Equal(t, rune(0x1E9E), tab[1].from)
	assert.Equal(t, []rune{0x0073, 0x0073}, tab[0].to)
}

func TestEncodedLen(t *testing.T) {
	assert.Equal(t, 2, encodedLen([]rune{0x0053, 0x0073}))
	assert.Equal(t, 6, encodedLen([]rune{0x0391, 0x0342, 0x0345}))
	assert.Equal(t, 3, encodedLen([]rune{0x0069, 0x0307}))
}

func TestWriteTables(t *testing.T) {
	simple := loadSimpleMappings(strings.NewReader(unicodeDataSample))
	sc := loadSpecialCasing(strings.NewReader(specialCasingSample), simple)
	cf := loadCaseFolds(strings.NewReader(caseFoldingSample), simple)

	tables := map[string][]expansion{
		"_LowerExpansion": expansions(sc.lower),
		"_TitleExpansion": expansions(sc.title),
		"_UpperExpansion": expansions(sc.upper),
		"_FoldExpansion":  sortExpansions(cf.expansions),
	}
	data := writeTables(tables, cf.deltas)
	src := string(data)

	assert.True(t, strings.HasPrefix(src, `// Code generated by "gentables"; DO NOT EDIT.`))
	assert.Contains(t, src, "package caseconv")
	assert.Contains(t, src, `const UnicodeVersion = "15.0.0"`)
	assert.Contains(t, src, "{0x0130, [3]rune{0x0069, 0x0307, 0x0000}},")
	assert.Contains(t, src, "{0x00B5, 0x03BC},")
}
