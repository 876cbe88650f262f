package chronic

import "time"

// RepeaterHour steps clock hours.
type RepeaterHour struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterHour) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterHour) Next(dir Pointer) *Span {
	if r.current == nil {
		start := hourStart(r.now).Add(time.Duration(dir.direction()) * time.Hour)
		r.current = &start
	} else {
		start := r.current.Add(time.Duration(dir.direction()) * time.Hour)
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.Add(time.Hour)}
}

func (r *RepeaterHour) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		begin := minuteStart(r.now).Add(time.Minute)
		return &Span{Begin: begin, End: hourStart(r.now).Add(time.Hour)}
	case PointerPast:
		return &Span{Begin: hourStart(r.now), End: minuteStart(r.now)}
	default:
		begin := hourStart(r.now)
		return &Span{Begin: begin, End: begin.Add(time.Hour)}
	}
}

func (r *RepeaterHour) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * time.Hour)
}

func (r *RepeaterHour) Width() time.Duration { return time.Hour }

func (r *RepeaterHour) String() string { return "repeater-hour" }
