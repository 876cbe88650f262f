package chronic

import "time"

// RepeaterMinute steps clock minutes.
type RepeaterMinute struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterMinute) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterMinute) Next(dir Pointer) *Span {
	if r.current == nil {
		start := minuteStart(r.now).Add(time.Duration(dir.direction()) * time.Minute)
		r.current = &start
	} else {
		start := r.current.Add(time.Duration(dir.direction()) * time.Minute)
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.Add(time.Minute)}
}

func (r *RepeaterMinute) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		return &Span{Begin: r.now, End: minuteStart(r.now).Add(time.Minute)}
	case PointerPast:
		return &Span{Begin: minuteStart(r.now), End: r.now}
	default:
		begin := minuteStart(r.now)
		return &Span{Begin: begin, End: begin.Add(time.Minute)}
	}
}

func (r *RepeaterMinute) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * time.Minute)
}

func (r *RepeaterMinute) Width() time.Duration { return time.Minute }

func (r *RepeaterMinute) String() string { return "repeater-minute" }
