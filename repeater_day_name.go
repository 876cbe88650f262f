package chronic

import (
	"strings"
	"time"
)

// RepeaterDayName steps occurrences of a named weekday.
type RepeaterDayName struct {
	repeaterBase
	Day     time.Weekday
	current *time.Time
}

func NewRepeaterDayName(d time.Weekday) *RepeaterDayName {
	return &RepeaterDayName{Day: d}
}

func (r *RepeaterDayName) Matches(kind TagKind) bool {
	return kind == kindRepeater || kind == kindRepeaterDayName
}

func (r *RepeaterDayName) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterDayName) Next(dir Pointer) *Span {
	direction := dir.direction()
	if r.current == nil {
		start := dayStart(r.now).AddDate(0, 0, direction)
		for start.Weekday() != r.Day {
			start = start.AddDate(0, 0, direction)
		}
		r.current = &start
	} else {
		start := r.current.AddDate(0, 0, 7*direction)
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.AddDate(0, 0, 1)}
}

// This defers to the future occurrence when no direction is given; the
// caller's context tie-break applies to outer spans only.
func (r *RepeaterDayName) This(ctx Pointer) *Span {
	if ctx == PointerNone {
		ctx = PointerFuture
	}
	return r.Next(ctx)
}

func (r *RepeaterDayName) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * weekSeconds)
}

func (r *RepeaterDayName) Width() time.Duration { return daySeconds }

func (r *RepeaterDayName) String() string {
	return "repeater-dayname-" + strings.ToLower(r.Day.String())
}
