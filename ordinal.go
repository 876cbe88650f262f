package chronic

import (
	"regexp"
	"strconv"
)

// OrdinalSub mirrors ScalarSub for ordinals.
type OrdinalSub int

const (
	OrdinalGeneric OrdinalSub = iota
	OrdinalDay
)

// OrdinalTag tags Nst/Nnd/Nrd/Nth tokens.
type OrdinalTag struct {
	Value int
	Sub   OrdinalSub
}

func (o *OrdinalTag) Matches(kind TagKind) bool {
	switch kind {
	case kindOrdinal:
		return true
	case kindOrdinalDay:
		return o.Sub == OrdinalDay
	}
	return false
}

func (o *OrdinalTag) String() string {
	if o.Sub == OrdinalDay {
		return "ordinal-day-" + strconv.Itoa(o.Value)
	}
	return "ordinal-" + strconv.Itoa(o.Value)
}

var ordinalPattern = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)

func scanOrdinals(tokens []*Token) {
	for _, tok := range tokens {
		m := ordinalPattern.FindStringSubmatch(tok.Word)
		if m == nil {
			continue
		}
		v, _ := strconv.Atoi(m[1])
		tok.Tag(&OrdinalTag{Value: v, Sub: OrdinalGeneric})
		if v >= 1 && v <= 31 && len(m[1]) <= 2 {
			tok.Tag(&OrdinalTag{Value: v, Sub: OrdinalDay})
		}
	}
}
