package chronic

import "time"

// RepeaterSecond steps seconds; "now" normalizes to "this second".
type RepeaterSecond struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterSecond) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterSecond) Next(dir Pointer) *Span {
	if r.current == nil {
		start := r.now.Add(time.Duration(dir.direction()) * time.Second)
		r.current = &start
	} else {
		start := r.current.Add(time.Duration(dir.direction()) * time.Second)
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.Add(time.Second)}
}

func (r *RepeaterSecond) This(ctx Pointer) *Span {
	return &Span{Begin: r.now, End: r.now.Add(time.Second)}
}

func (r *RepeaterSecond) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * time.Second)
}

func (r *RepeaterSecond) Width() time.Duration { return time.Second }

func (r *RepeaterSecond) String() string { return "repeater-second" }
