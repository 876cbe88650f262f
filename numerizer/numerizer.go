// Package numerizer rewrites English number words into digits so that the
// date grammar only ever sees numeric tokens. Ordinal suffixes are kept:
// "twenty third" becomes "23rd".
package numerizer

import (
	"regexp"
	"strconv"
	"strings"
)

// Replacements carry a scratch marker around fresh digits so later passes
// can tell generated numbers from digits that were already in the input.
const marker = "<num>"

type replacement struct {
	re  *regexp.Regexp
	sub string
}

var directNums = []replacement{
	{regexp.MustCompile(`\beleven\b`), marker + "11"},
	{regexp.MustCompile(`\btwelve\b`), marker + "12"},
	{regexp.MustCompile(`\bthirteen\b`), marker + "13"},
	{regexp.MustCompile(`\bfourteen\b`), marker + "14"},
	{regexp.MustCompile(`\bfifteen\b`), marker + "15"},
	{regexp.MustCompile(`\bsixteen\b`), marker + "16"},
	{regexp.MustCompile(`\bseventeen\b`), marker + "17"},
	{regexp.MustCompile(`\beighteen\b`), marker + "18"},
	{regexp.MustCompile(`\bnineteen\b`), marker + "19"},
	{regexp.MustCompile(`\bninteen\b`), marker + "19"},
	{regexp.MustCompile(`\bzero\b`), marker + "0"},
	{regexp.MustCompile(`\bten\b`), marker + "10"},
	{regexp.MustCompile(`\bone\b`), marker + "1"},
	{regexp.MustCompile(`\btwo\b`), marker + "2"},
	{regexp.MustCompile(`\bthree\b`), marker + "3"},
	{regexp.MustCompile(`\bfour\b`), marker + "4"},
	{regexp.MustCompile(`\bfive\b`), marker + "5"},
	{regexp.MustCompile(`\bsix\b`), marker + "6"},
	{regexp.MustCompile(`\bseven\b`), marker + "7"},
	{regexp.MustCompile(`\beight\b`), marker + "8"},
	{regexp.MustCompile(`\bnine\b`), marker + "9"},
}

// "second" is intentionally absent: the caller disambiguates the English
// word "second" before numerizing.
var ordinals = []replacement{
	{regexp.MustCompile(`\bfirst\b`), marker + "1st"},
	{regexp.MustCompile(`\bthird\b`), marker + "3rd"},
	{regexp.MustCompile(`\bfourth\b`), marker + "4th"},
	{regexp.MustCompile(`\bfifth\b`), marker + "5th"},
	{regexp.MustCompile(`\bsixth\b`), marker + "6th"},
	{regexp.MustCompile(`\bseventh\b`), marker + "7th"},
	{regexp.MustCompile(`\beighth\b`), marker + "8th"},
	{regexp.MustCompile(`\bninth\b`), marker + "9th"},
	{regexp.MustCompile(`\btenth\b`), marker + "10th"},
	{regexp.MustCompile(`\beleventh\b`), marker + "11th"},
	{regexp.MustCompile(`\btwelfth\b`), marker + "12th"},
	{regexp.MustCompile(`\bthirteenth\b`), marker + "13th"},
	{regexp.MustCompile(`\bfourteenth\b`), marker + "14th"},
	{regexp.MustCompile(`\bfifteenth\b`), marker + "15th"},
	{regexp.MustCompile(`\bsixteenth\b`), marker + "16th"},
	{regexp.MustCompile(`\bseventeenth\b`), marker + "17th"},
	{regexp.MustCompile(`\beighteenth\b`), marker + "18th"},
	{regexp.MustCompile(`\bnineteenth\b`), marker + "19th"},
	{regexp.MustCompile(`\btwentieth\b`), marker + "20th"},
	{regexp.MustCompile(`\bthirtieth\b`), marker + "30th"},
	{regexp.MustCompile(`\bfortieth\b`), marker + "40th"},
	{regexp.MustCompile(`\bfiftieth\b`), marker + "50th"},
	{regexp.MustCompile(`\bsixtieth\b`), marker + "60th"},
	{regexp.MustCompile(`\bseventieth\b`), marker + "70th"},
	{regexp.MustCompile(`\beightieth\b`), marker + "80th"},
	{regexp.MustCompile(`\bninetieth\b`), marker + "90th"},
}

var tenPrefixes = []struct {
	word  string
	value int
}{
	{"twenty", 20},
	{"thirty", 30},
	{"forty", 40},
	{"fourty", 40},
	{"fifty", 50},
	{"sixty", 60},
	{"seventy", 70},
	{"eighty", 80},
	{"ninety", 90},
}

var bigPrefixes = []struct {
	re    *regexp.Regexp
	value int
}{
	{regexp.MustCompile(`(?:` + marker + `)?(\d*) ?\bhundreds?\b`), 100},
	{regexp.MustCompile(`(?:` + marker + `)?(\d*) ?\bthousands?\b`), 1000},
	{regexp.MustCompile(`(?:` + marker + `)?(\d*) ?\bmillions?\b`), 1000000},
	{regexp.MustCompile(`(?:` + marker + `)?(\d*) ?\bbillions?\b`), 1000000000},
}

var (
	hyphenated   = regexp.MustCompile(`([a-z])-([a-z])`)
	articleUnit  = regexp.MustCompile(`\ban? (second|minute|hour|day|week|fortnight|month|year)s?\b`)
	anditionRe   = regexp.MustCompile(marker + `(\d+)( and | )` + marker + `(\d+)\b`)
	tenCompounds []replacementFn
)

type replacementFn struct {
	re *regexp.Regexp
	fn func([]string) string
}

func init() {
	for _, tp := range tenPrefixes {
		value := tp.value
		tenCompounds = append(tenCompounds,
			replacementFn{
				re: regexp.MustCompile(`\b` + tp.word + ` ?` + marker + `(\d)(st|nd|rd|th)?\b`),
				fn: func(m []string) string {
					unit, _ := strconv.Atoi(m[1])
					return marker + strconv.Itoa(value+unit) + m[2]
				},
			},
			replacementFn{
				re: regexp.MustCompile(`\b` + tp.word + `\b`),
				fn: func([]string) string { return marker + strconv.Itoa(value) },
			},
		)
	}
}

// Numerize rewrites English cardinal and ordinal words in s to digits.
// Input is expected to be lowercased.
func Numerize(s string) string {
	s = hyphenated.ReplaceAllString(s, "$1 $2")
	s = articleUnit.ReplaceAllString(s, "1 $1")

	for _, r := range ordinals {
		s = r.re.ReplaceAllString(s, r.sub)
	}
	for _, r := range directNums {
		s = r.re.ReplaceAllString(s, r.sub)
	}
	for _, rc := range tenCompounds {
		s = replaceFunc(s, rc.re, rc.fn)
	}
	for _, bp := range bigPrefixes {
		value := bp.value
		s = replaceFunc(s, bp.re, func(m []string) string {
			mult := 1
			if m[1] != "" {
				mult, _ = strconv.Atoi(m[1])
			}
			return marker + strconv.Itoa(value*mult)
		})
		s = andition(s)
	}
	return strings.ReplaceAll(s, marker, "")
}

func replaceFunc(s string, re *regexp.Regexp, fn func([]string) string) string {
	return re.ReplaceAllStringFunc(s, func(match string) string {
		return fn(re.FindStringSubmatch(match))
	})
}

// andition folds "<num>100 and <num>5" style sequences into a single
// number. A bare space joins only when the left number is the longer one,
// so "10 2011" is left alone while "100 5" becomes "105".
func andition(s string) string {
	for {
		m := anditionRe.FindStringSubmatchIndex(s)
		if m == nil {
			return s
		}
		left := s[m[2]:m[3]]
		joiner := s[m[4]:m[5]]
		right := s[m[6]:m[7]]
		if !strings.Contains(joiner, "and") && len(left) <= len(right) {
			// Not an addition; drop the left marker and rescan past it.
			rest := andition(s[m[3]:])
			return s[:m[0]] + left + rest
		}
		l, _ := strconv.Atoi(left)
		r, _ := strconv.Atoi(right)
		s = s[:m[0]] + marker + strconv.Itoa(l+r) + s[m[1]:]
	}
}
