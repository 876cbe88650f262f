package chronic

import "time"

// RepeaterWeekday steps Monday-to-Friday days, skipping weekends.
type RepeaterWeekday struct {
	repeaterBase
	current *time.Time
}

func (r *RepeaterWeekday) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func isWeekday(d time.Weekday) bool {
	return d != time.Saturday && d != time.Sunday
}

func (r *RepeaterWeekday) Next(dir Pointer) *Span {
	direction := dir.direction()
	var start time.Time
	if r.current == nil {
		start = dayStart(r.now)
	} else {
		start = *r.current
	}
	start = start.AddDate(0, 0, direction)
	for !isWeekday(start.Weekday()) {
		start = start.AddDate(0, 0, direction)
	}
	r.current = &start
	return &Span{Begin: start, End: start.AddDate(0, 0, 1)}
}

func (r *RepeaterWeekday) This(ctx Pointer) *Span {
	switch ctx {
	case PointerPast:
		return r.Next(PointerPast)
	default:
		return r.Next(PointerFuture)
	}
}

func (r *RepeaterWeekday) Offset(span Span, amount int, dir Pointer) Span {
	direction := dir.direction()
	offset := time.Duration(0)
	cursor := span.Begin
	for passed := 0; passed < amount; {
		cursor = cursor.AddDate(0, 0, direction)
		offset += time.Duration(direction) * daySeconds
		if isWeekday(cursor.Weekday()) {
			passed++
		}
	}
	return span.Add(offset)
}

func (r *RepeaterWeekday) Width() time.Duration { return daySeconds }

func (r *RepeaterWeekday) String() string { return "repeater-weekday" }
