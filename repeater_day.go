package chronic

import "time"

// RepeaterDay steps midnight-to-midnight days.
type RepeaterDay struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterDay) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterDay) Next(dir Pointer) *Span {
	if r.current == nil {
		start := dayStart(r.now).AddDate(0, 0, dir.direction())
		r.current = &start
	} else {
		start := r.current.AddDate(0, 0, dir.direction())
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.AddDate(0, 0, 1)}
}

func (r *RepeaterDay) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		begin := hourStart(r.now).Add(time.Hour)
		return &Span{Begin: begin, End: dayStart(r.now).AddDate(0, 0, 1)}
	case PointerPast:
		return &Span{Begin: dayStart(r.now), End: hourStart(r.now)}
	default:
		begin := dayStart(r.now)
		return &Span{Begin: begin, End: begin.AddDate(0, 0, 1)}
	}
}

func (r *RepeaterDay) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * daySeconds)
}

func (r *RepeaterDay) Width() time.Duration { return daySeconds }

func (r *RepeaterDay) String() string { return "repeater-day" }
