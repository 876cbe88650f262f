package chronic

import (
	"strings"
	"time"
)

// RepeaterMonthName steps occurrences of a named month.
type RepeaterMonthName struct {
	repeaterBase
	Month   time.Month
	current *time.Time
}

func NewRepeaterMonthName(m time.Month) *RepeaterMonthName {
	return &RepeaterMonthName{Month: m}
}

func (r *RepeaterMonthName) Matches(kind TagKind) bool {
	return kind == kindRepeater || kind == kindRepeaterMonthName
}

func (r *RepeaterMonthName) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterMonthName) Next(dir Pointer) *Span {
	if r.current == nil {
		var year int
		switch {
		case dir == PointerFuture && r.now.Month() < r.Month:
			year = r.now.Year()
		case dir == PointerFuture:
			year = r.now.Year() + 1
		case dir == PointerNone && r.now.Month() <= r.Month:
			year = r.now.Year()
		case dir == PointerNone:
			year = r.now.Year() + 1
		case dir == PointerPast && r.now.Month() > r.Month:
			year = r.now.Year()
		default:
			year = r.now.Year() - 1
		}
		start := time.Date(year, r.Month, 1, 0, 0, 0, 0, r.loc())
		r.current = &start
	} else {
		start := time.Date(r.current.Year()+dir.direction(), r.Month, 1, 0, 0, 0, 0, r.loc())
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.AddDate(0, 1, 0)}
}

func (r *RepeaterMonthName) This(ctx Pointer) *Span {
	if ctx == PointerPast {
		return r.Next(ctx)
	}
	return r.Next(PointerNone)
}

func (r *RepeaterMonthName) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * monthSeconds)
}

func (r *RepeaterMonthName) Width() time.Duration { return monthSeconds }

func (r *RepeaterMonthName) String() string {
	return "repeater-monthname-" + strings.ToLower(r.Month.String())
}
