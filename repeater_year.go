package chronic

import "time"

// RepeaterYear steps calendar years.
type RepeaterYear struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterYear) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterYear) Next(dir Pointer) *Span {
	if r.current == nil {
		y := r.now.Year() + dir.direction()
		start := yearStart(y, r.loc())
		r.current = &start
	} else {
		start := yearStart(r.current.Year()+dir.direction(), r.loc())
		r.current = &start
	}
	return &Span{Begin: *r.current, End: yearStart(r.current.Year()+1, r.loc())}
}

func (r *RepeaterYear) This(ctx Pointer) *Span {
	switch ctx {
	case PointerFuture:
		begin := dayStart(r.now).Add(daySeconds)
		return &Span{Begin: begin, End: yearStart(r.now.Year()+1, r.loc())}
	case PointerPast:
		return &Span{Begin: yearStart(r.now.Year(), r.loc()), End: dayStart(r.now)}
	default:
		return &Span{Begin: yearStart(r.now.Year(), r.loc()), End: yearStart(r.now.Year()+1, r.loc())}
	}
}

func (r *RepeaterYear) Offset(span Span, amount int, dir Pointer) Span {
	years := amount * dir.direction()
	return Span{Begin: span.Begin.AddDate(years, 0, 0), End: span.End.AddDate(years, 0, 0)}
}

func (r *RepeaterYear) Width() time.Duration { return yearSeconds }

func (r *RepeaterYear) String() string { return "repeater-year" }
