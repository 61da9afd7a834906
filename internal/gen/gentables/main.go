// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the Unicode case mapping tables used by caseconv
// (tables.go). The tables must be regenerated if this code is changed
// (`go generate`).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/charlievieth/caseconv/internal/ucd"
)

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout)
}

// maxExpansion is the byte bound the caseconv package relies on: no scalar
// value may convert to more than maxExpansion bytes under any mapping.
const maxExpansion = 6

var (
	unicodeVersion = flag.String("unicode", "15.0.0",
		"Unicode version to generate the tables from")
	ucdDir = flag.String("ucd", "",
		"directory holding the UCD files (default: .ucd/<version>)")
	outputDir = flag.String("dir", "", "directory to write tables.go to "+
		"(default: the caseconv package root)")
	dryRun = flag.Bool("dry-run", false,
		"print the generated tables instead of writing tables.go")
)

type expansion struct {
	from rune
	to   []rune
}

type foldPair struct {
	From uint32
	To   uint32
}

// simpleMapping is one row of UnicodeData.txt that we care about.
type simpleMapping struct {
	upper rune
	lower rune
	title rune
}

// conditions we expect to see, and skip, in SpecialCasing.txt. The
// Final_Sigma and Turkic rules are implemented in code; the Lithuanian
// rules belong to a locale the package does not support.
var knownConditions = map[string]bool{
	"Final_Sigma":          true,
	"tr":                   true,
	"az":                   true,
	"lt":                   true,
	"tr After_I":           true,
	"az After_I":           true,
	"tr Not_Before_Dot":    true,
	"az Not_Before_Dot":    true,
	"lt After_Soft_Dotted": true,
	"lt More_Above":        true,
}

func openUCDFile(name string) io.ReadCloser {
	dir := *ucdDir
	if dir == "" {
		dir = filepath.Join(".ucd", *unicodeVersion)
	}
	path := filepath.Join(dir, name)
	if f, err := os.Open(path); err == nil {
		return f
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}
	url := "https://www.unicode.org/Public/" + *unicodeVersion + "/ucd/" + name
	log.Printf("fetching: %s", url)
	res, err := http.Get(url)
	if err != nil {
		log.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("GET %s: %s", url, res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

func loadSimpleMappings(r io.Reader) map[rune]simpleMapping {
	simple := make(map[rune]simpleMapping, 4096)
	err := ucd.Parse(r, func(p *ucd.Parser) {
		var m simpleMapping
		if s := p.String(12); s != "" {
			m.upper = p.Rune(12)
		}
		if s := p.String(13); s != "" {
			m.lower = p.Rune(13)
		}
		if s := p.String(14); s != "" {
			m.title = p.Rune(14)
		}
		if m != (simpleMapping{}) {
			lo, hi := p.Range()
			if lo != hi {
				log.Fatalf("UnicodeData.txt: range %04X..%04X has case mappings", lo, hi)
			}
			simple[lo] = m
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	return simple
}

type specialCasing struct {
	lower map[rune][]rune
	title map[rune][]rune
	upper map[rune][]rune
}

func loadSpecialCasing(r io.Reader, simple map[rune]simpleMapping) specialCasing {
	sc := specialCasing{
		lower: make(map[rune][]rune),
		title: make(map[rune][]rune),
		upper: make(map[rune][]rune),
	}
	err := ucd.Parse(r, func(p *ucd.Parser) {
		if cond := strings.TrimSpace(p.String(4)); cond != "" {
			if !knownConditions[cond] {
				log.Fatalf("SpecialCasing.txt: unhandled condition %q", cond)
			}
			return
		}
		r := p.Rune(0)
		sc.lower[r] = p.Runes(1)
		sc.title[r] = p.Runes(2)
		sc.upper[r] = p.Runes(3)
	})
	if err != nil {
		log.Fatal(err)
	}
	// The resolver falls back to the simple mapping for any scalar without
	// a table entry, so a single-scalar full mapping must never disagree
	// with UnicodeData.txt.
	check := func(kind string, full map[rune][]rune, pick func(simpleMapping) rune) {
		for r, rs := range full {
			if len(rs) != 1 {
				continue
			}
			want := pick(simple[r])
			if want == 0 {
				want = r
			}
			if rs[0] != want {
				log.Fatalf("SpecialCasing.txt: %s of %04X: single mapping %04X != simple %04X",
					kind, r, rs[0], want)
			}
		}
	}
	check("lower", sc.lower, func(m simpleMapping) rune { return m.lower })
	check("title", sc.title, func(m simpleMapping) rune { return m.title })
	check("upper", sc.upper, func(m simpleMapping) rune { return m.upper })
	return sc
}

type caseFolds struct {
	expansions []expansion // full (F) folds
	deltas     []foldPair  // common/simple folds that differ from ToLower
}

func loadCaseFolds(r io.Reader, simple map[rune]simpleMapping) caseFolds {
	var cf caseFolds
	folded := make(map[rune]bool)
	expanded := make(map[rune]bool)
	err := ucd.Parse(r, func(p *ucd.Parser) {
		r := p.Rune(0)
		switch p.String(1) {
		case "C", "S":
			folded[r] = true
			to := p.Rune(2)
			lower := simple[r].lower
			if lower == 0 {
				lower = r
			}
			if to != lower {
				cf.deltas = append(cf.deltas, foldPair{uint32(r), uint32(to)})
			}
		case "F":
			expanded[r] = true
			cf.expansions = append(cf.expansions, expansion{r, p.Runes(2)})
		case "T":
			// The Turkic folds are hardcoded in the resolver.
			to := p.Rune(2)
			if !(r == 'I' && to == 0x0131) && !(r == 0x0130 && to == 'i') {
				log.Fatalf("CaseFolding.txt: unexpected Turkic fold %04X => %04X", r, to)
			}
		}
	})
	if err != nil {
		log.Fatal(err)
	}
	// Scalars absent from CaseFolding.txt fold to themselves even when they
	// carry a lowercase mapping (the Cherokee uppercase letters): those need
	// self entries so the runtime does not fall back to ToLower. Full folds
	// are resolved before the simple table and need none.
	for r, m := range simple {
		if m.lower != 0 && m.lower != r && !folded[r] && !expanded[r] {
			cf.deltas = append(cf.deltas, foldPair{uint32(r), uint32(r)})
		}
	}
	return cf
}

func expansions(full map[rune][]rune) []expansion {
	keys := maps.Keys(full)
	slices.Sort(keys)
	var tab []expansion
	for _, r := range keys {
		if rs := full[r]; len(rs) > 1 {
			tab = append(tab, expansion{r, rs})
		}
	}
	return tab
}

func sortExpansions(tab []expansion) []expansion {
	slices.SortFunc(tab, func(a, b expansion) bool {
		return a.from < b.from
	})
	return tab
}

func encodedLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneLen(r)
	}
	return n
}

// verify re-checks the invariants the caseconv package is built on: every
// expansion fits in maxExpansion bytes and has two or three scalars, and no
// simple mapping of any scalar value grows past maxExpansion bytes either.
func verify(tables map[string][]expansion, deltas []foldPair) {
	for name, tab := range tables {
		if !slices.IsSortedFunc(tab, func(a, b expansion) bool { return a.from < b.from }) {
			log.Fatalf("%s: table is not sorted", name)
		}
		for _, e := range tab {
			if len(e.to) < 2 || len(e.to) > 3 {
				log.Fatalf("%s: %04X expands to %d scalars", name, e.from, len(e.to))
			}
			if n := encodedLen(e.to); n > maxExpansion {
				log.Fatalf("%s: %04X expands to %d bytes (limit %d)", name, e.from, n, maxExpansion)
			}
		}
	}
	for _, p := range deltas {
		if utf8.RuneLen(rune(p.To)) > maxExpansion {
			log.Fatalf("_FoldDelta: %04X does not fit", p.To)
		}
	}

	// Walk the full scalar range and bound the widest output any single
	// scalar can produce under any mapping: its table expansion when one
	// exists, its simple mapping otherwise.
	full := make(map[rune]int)
	for _, tab := range tables {
		for _, e := range tab {
			if n := encodedLen(e.to); n > full[e.from] {
				full[e.from] = n
			}
		}
	}
	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(unicode.MaxRune) + 1)
	} else {
		bar = progressbar.DefaultSilent(int64(unicode.MaxRune) + 1)
	}
	for r := rune(0); r <= unicode.MaxRune; r++ {
		bar.Add(1)
		if !utf8.ValidRune(r) {
			continue
		}
		n := full[r]
		for _, rr := range [...]rune{
			unicode.ToLower(r), unicode.ToUpper(r), unicode.ToTitle(r),
		} {
			if m := utf8.RuneLen(rr); m > n {
				n = m
			}
		}
		if n > maxExpansion {
			log.Fatalf("mapping of %04X produces %d bytes (limit %d)", r, n, maxExpansion)
		}
	}
}

func writeExpansions(w *bytes.Buffer, name, doc string, tab []expansion) {
	fmt.Fprintf(w, "\n// %s holds the full %s mappings that expand to\n", name, doc)
	fmt.Fprintf(w, "// multiple scalar values (SpecialCasing.txt, unconditional).\n")
	fmt.Fprintf(w, "var %s = [...]expansion{\n", name)
	for _, e := range tab {
		var to [3]rune
		copy(to[:], e.to)
		fmt.Fprintf(w, "\t{0x%04X, [3]rune{0x%04X, 0x%04X, 0x%04X}}, // %s => %s\n",
			e.from, to[0], to[1], to[2], string(e.from), string(e.to))
	}
	fmt.Fprintf(w, "}\n")
}

func writeTables(tables map[string][]expansion, deltas []foldPair) []byte {
	var w bytes.Buffer
	w.WriteString(`// Code generated by "gentables"; DO NOT EDIT.
// This file was generated from the Unicode Character Database:
// UnicodeData.txt, SpecialCasing.txt, and CaseFolding.txt.

package caseconv

// UnicodeVersion is the Unicode edition from which the tables in this
// file are derived.
`)
	fmt.Fprintf(&w, "const UnicodeVersion = %q\n", *unicodeVersion)

	writeExpansions(&w, "_LowerExpansion", "lowercase", tables["_LowerExpansion"])
	writeExpansions(&w, "_TitleExpansion", "titlecase", tables["_TitleExpansion"])
	writeExpansions(&w, "_UpperExpansion", "uppercase", tables["_UpperExpansion"])

	fmt.Fprintf(&w, "\n// _FoldExpansion holds the full case foldings that expand to multiple\n")
	fmt.Fprintf(&w, "// scalar values (CaseFolding.txt, status F).\n")
	fmt.Fprintf(&w, "var _FoldExpansion = [...]expansion{\n")
	for _, e := range tables["_FoldExpansion"] {
		var to [3]rune
		copy(to[:], e.to)
		fmt.Fprintf(&w, "\t{0x%04X, [3]rune{0x%04X, 0x%04X, 0x%04X}}, // %s => %s\n",
			e.from, to[0], to[1], to[2], string(e.from), string(e.to))
	}
	fmt.Fprintf(&w, "}\n")

	fmt.Fprintf(&w, "\n// _FoldDelta holds the simple case foldings (CaseFolding.txt, status C)\n")
	fmt.Fprintf(&w, "// whose target differs from the simple lowercase mapping.\n")
	fmt.Fprintf(&w, "var _FoldDelta = [...]foldPair{\n")
	for _, p := range deltas {
		fmt.Fprintf(&w, "\t{0x%04X, 0x%04X}, // %s => %s\n",
			p.From, p.To, string(rune(p.From)), string(rune(p.To)))
	}
	fmt.Fprintf(&w, "}\n")

	data, err := format.Source(w.Bytes())
	if err != nil {
		log.Fatalf("formatting tables: %v", err)
	}
	return data
}

func packageRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	for d := dir; ; d = filepath.Dir(d) {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d
		}
		if d == filepath.Dir(d) {
			break
		}
	}
	log.Fatalf("cannot find the package root from %q", dir)
	return ""
}

func main() {
	flag.Usage = func() {
		flag.CommandLine.SetOutput(os.Stdout)
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]...\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	ud := openUCDFile("UnicodeData.txt")
	simple := loadSimpleMappings(ud)
	ud.Close()

	sp := openUCDFile("SpecialCasing.txt")
	sc := loadSpecialCasing(sp, simple)
	sp.Close()

	cff := openUCDFile("CaseFolding.txt")
	cf := loadCaseFolds(cff, simple)
	cff.Close()

	tables := map[string][]expansion{
		"_LowerExpansion": expansions(sc.lower),
		"_TitleExpansion": expansions(sc.title),
		"_UpperExpansion": expansions(sc.upper),
		"_FoldExpansion":  sortExpansions(cf.expansions),
	}
	slices.SortFunc(cf.deltas, func(a, b foldPair) bool {
		return a.From < b.From
	})
	verify(tables, cf.deltas)

	data := writeTables(tables, cf.deltas)
	if *dryRun {
		os.Stdout.Write(data)
		return
	}
	dir := *outputDir
	if dir == "" {
		dir = packageRoot()
	}
	path := filepath.Join(dir, "tables.go")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote: %s", path)
}
