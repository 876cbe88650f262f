// Package timezone resolves the timezone designators the parser and its
// surfaces accept: IANA names, common abbreviations and the normalized
// tzminusHHMM / tzplusHHMM offset forms.
package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UTC is the coordinated universal time location.
var UTC = time.UTC

// Abbreviations the tokenizer recognizes, with their UTC offsets in
// seconds. DST variants are listed separately.
var abbreviations = map[string]int{
	"utc": 0,
	"gmt": 0,
	"est": -5 * 3600,
	"edt": -4 * 3600,
	"cst": -6 * 3600,
	"cdt": -5 * 3600,
	"mst": -7 * 3600,
	"mdt": -6 * 3600,
	"pst": -8 * 3600,
	"pdt": -7 * 3600,
}

var offsetForm = regexp.MustCompile(`^tz(minus|plus)(\d{2})(\d{2})$`)

// Parse resolves a timezone designator to a location. It accepts IANA
// identifiers ("America/New_York"), the abbreviations above, and
// normalized offset forms ("tzminus0500"). Empty input means UTC.
func Parse(tz string) (*time.Location, error) {
	if tz == "" || strings.EqualFold(tz, "UTC") {
		return UTC, nil
	}
	if m := offsetForm.FindStringSubmatch(strings.ToLower(tz)); m != nil {
		hours, _ := strconv.Atoi(m[2])
		mins, _ := strconv.Atoi(m[3])
		offset := hours*3600 + mins*60
		if m[1] == "minus" {
			offset = -offset
		}
		return time.FixedZone(tz, offset), nil
	}
	if offset, ok := abbreviations[strings.ToLower(tz)]; ok {
		return time.FixedZone(strings.ToUpper(tz), offset), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}

// MustParse parses a designator or panics. Use for values known valid
// at compile time.
func MustParse(tz string) *time.Location {
	loc, err := Parse(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValid reports whether a designator resolves.
func IsValid(tz string) bool {
	if tz == "" {
		return true
	}
	_, err := Parse(tz)
	return err == nil
}
