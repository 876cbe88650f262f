package chronic

import "regexp"

// TimeZoneTag tags timezone designators. The payload keeps the raw
// designator; resolution to an offset happens at the edges, not in the
// core grammar.
type TimeZoneTag struct {
	Designator string
}

func (z *TimeZoneTag) Matches(kind TagKind) bool {
	return kind == kindTimeZone
}

func (z *TimeZoneTag) String() string {
	return "tz-" + z.Designator
}

var (
	zoneCode   = regexp.MustCompile(`^(?:[pmce][ds]t|utc|gmt)$`)
	zoneOffset = regexp.MustCompile(`^tz(?:minus|plus)\d{4}$`)
)

func scanTimeZones(tokens []*Token) {
	for _, tok := range tokens {
		if zoneCode.MatchString(tok.Word) || zoneOffset.MatchString(tok.Word) {
			tok.Tag(&TimeZoneTag{Designator: tok.Word})
		}
	}
}
