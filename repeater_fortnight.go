package chronic

import "time"

// RepeaterFortnight steps two-week periods anchored on Sundays.
type RepeaterFortnight struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterFortnight) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterFortnight) Next(dir Pointer) *Span {
	if r.current == nil {
		var start time.Time
		if dir == PointerPast {
			start = sundayOnOrBefore(r.now).AddDate(0, 0, -14)
		} else {
			start = sundayOnOrBefore(r.now).AddDate(0, 0, 7)
		}
		r.current = &start
	} else {
		start := r.current.AddDate(0, 0, 14*dir.direction())
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.AddDate(0, 0, 14)}
}

func (r *RepeaterFortnight) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		begin := hourStart(r.now).Add(time.Hour)
		return &Span{Begin: begin, End: sundayOnOrBefore(r.now).AddDate(0, 0, 14)}
	case PointerPast:
		return &Span{Begin: sundayOnOrBefore(r.now).AddDate(0, 0, -7), End: hourStart(r.now)}
	default:
		begin := sundayOnOrBefore(r.now)
		return &Span{Begin: begin, End: begin.AddDate(0, 0, 14)}
	}
}

func (r *RepeaterFortnight) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * fortnightSeconds)
}

func (r *RepeaterFortnight) Width() time.Duration { return fortnightSeconds }

func (r *RepeaterFortnight) String() string { return "repeater-fortnight" }
