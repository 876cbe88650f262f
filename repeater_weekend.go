package chronic

import "time"

// RepeaterWeekend steps Saturday-morning-to-Monday-morning periods.
type RepeaterWeekend struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterWeekend) Start(now time.Time) {
	r.now = now
	r.current = nil
}

// saturdayOnOrBefore returns midnight of the most recent Saturday at or
// before t.
func saturdayOnOrBefore(t time.Time) time.Time {
	d := dayStart(t)
	offset := (int(d.Weekday()) - int(time.Saturday) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

func (r *RepeaterWeekend) Next(dir Pointer) *Span {
	if r.current == nil {
		var start time.Time
		if dir == PointerPast {
			start = saturdayOnOrBefore(r.now)
			if !start.Add(weekendSeconds).Before(r.now) {
				start = start.AddDate(0, 0, -7)
			}
		} else {
			start = saturdayOnOrBefore(r.now).AddDate(0, 0, 7)
		}
		r.current = &start
	} else {
		start := r.current.AddDate(0, 0, 7*dir.direction())
		r.current = &start
	}
	return &Span{Begin: *r.current, End: r.current.Add(weekendSeconds)}
}

func (r *RepeaterWeekend) This(ctx Pointer) *Span {
	var start time.Time
	switch ctx {
	case PointerFuture:
		start = saturdayOnOrBefore(r.now).AddDate(0, 0, 7)
	default:
		start = saturdayOnOrBefore(r.now)
	}
	return &Span{Begin: start, End: start.Add(weekendSeconds)}
}

func (r *RepeaterWeekend) Offset(span Span, amount int, dir Pointer) Span {
	weekend := &RepeaterWeekend{}
	weekend.Start(span.Begin)
	next := weekend.Next(dir)
	start := next.Begin.Add(time.Duration((amount-1)*dir.direction()) * weekSeconds)
	return Span{Begin: start, End: start.Add(span.Width())}
}

func (r *RepeaterWeekend) Width() time.Duration { return weekendSeconds }

func (r *RepeaterWeekend) String() string { return "repeater-weekend" }
