package chronic

import "time"

// RepeaterMonth steps calendar months. Offsets move by the nominal
// 30-day month so "3 months from now" lands at a fixed distance.
type RepeaterMonth struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterMonth) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterMonth) Next(dir Pointer) *Span {
	if r.current == nil {
		start := monthStart(r.now).AddDate(0, dir.direction(), 0)
		r.current = &start
	} else {
		start := r.current.AddDate(0, dir.direction(), 0)
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.AddDate(0, 1, 0)}
}

func (r *RepeaterMonth) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		begin := dayStart(r.now).Add(daySeconds)
		return &Span{Begin: begin, End: monthStart(r.now).AddDate(0, 1, 0)}
	case PointerPast:
		return &Span{Begin: monthStart(r.now), End: dayStart(r.now)}
	default:
		return &Span{Begin: monthStart(r.now), End: monthStart(r.now).AddDate(0, 1, 0)}
	}
}

func (r *RepeaterMonth) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * monthSeconds)
}

func (r *RepeaterMonth) Width() time.Duration { return monthSeconds }

func (r *RepeaterMonth) String() string { return "repeater-month" }
