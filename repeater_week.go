package chronic

import "time"

// RepeaterWeek steps Sunday-to-Sunday weeks.
type RepeaterWeek struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterWeek) Start(now time.Time) {
	r.now = now
	r.current = nil
}

// sundayOnOrBefore returns midnight of the most recent Sunday at or
// before t.
func sundayOnOrBefore(t time.Time) time.Time {
	d := dayStart(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func (r *RepeaterWeek) Next(dir Pointer) *Span {
	if r.current == nil {
		var start time.Time
		if dir == PointerPast {
			start = sundayOnOrBefore(r.now).AddDate(0, 0, -7)
		} else {
			start = sundayOnOrBefore(r.now).AddDate(0, 0, 7)
		}
		r.current = &start
	} else {
		start := r.current.AddDate(0, 0, 7*dir.direction())
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.AddDate(0, 0, 7)}
}

func (r *RepeaterWeek) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		begin := hourStart(r.now).Add(time.Hour)
		return &Span{Begin: begin, End: sundayOnOrBefore(r.now).AddDate(0, 0, 7)}
	case PointerPast:
		return &Span{Begin: sundayOnOrBefore(r.now), End: hourStart(r.now)}
	default:
		begin := sundayOnOrBefore(r.now)
		return &Span{Begin: begin, End: begin.AddDate(0, 0, 7)}
	}
}

func (r *RepeaterWeek) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * weekSeconds)
}

func (r *RepeaterWeek) Width() time.Duration { return weekSeconds }

func (r *RepeaterWeek) String() string { return "repeater-week" }
