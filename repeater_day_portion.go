package chronic

import (
	"fmt"
	"time"
)

// PortionKind names the fixed day portions. The integer-anchored portion
// used for ambiguous time disambiguation is built with
// newPortionFromHour instead.
type PortionKind string

const (
	PortionAM        PortionKind = "am"
	PortionPM        PortionKind = "pm"
	PortionMorning   PortionKind = "morning"
	PortionAfternoon PortionKind = "afternoon"
	PortionEvening   PortionKind = "evening"
	PortionNight     PortionKind = "night"
)

// RepeaterDayPortion steps a fixed clock range within successive days.
type RepeaterDayPortion struct {
	repeaterBase
	Portion PortionKind
	from    time.Duration // offset of the range start from midnight
	to      time.Duration // offset of the range end from midnight
	current *Span
}

func NewRepeaterDayPortion(p PortionKind) *RepeaterDayPortion {
	r := &RepeaterDayPortion{Portion: p}
	switch p {
	case PortionAM:
		r.from, r.to = 0, 12*time.Hour-time.Second
	case PortionPM:
		r.from, r.to = 12*time.Hour, 24*time.Hour-time.Second
	case PortionMorning:
		r.from, r.to = 6*time.Hour, 12*time.Hour
	case PortionAfternoon:
		r.from, r.to = 13*time.Hour, 17*time.Hour
	case PortionEvening:
		r.from, r.to = 17*time.Hour, 20*time.Hour
	case PortionNight:
		r.from, r.to = 20*time.Hour, 24*time.Hour
	}
	return r
}

// newPortionFromHour builds the [h, h+12) window that disambiguates bare
// clock times under the ambiguous_time_range option.
func newPortionFromHour(h int) *RepeaterDayPortion {
	return &RepeaterDayPortion{
		Portion: PortionKind(fmt.Sprintf("hours-%d", h)),
		from:    time.Duration(h) * time.Hour,
		to:      time.Duration(h+12) * time.Hour,
	}
}

func (r *RepeaterDayPortion) Matches(kind TagKind) bool {
	return kind == kindRepeater || kind == kindRepeaterDayPortion
}

func (r *RepeaterDayPortion) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterDayPortion) Next(dir Pointer) *Span {
	if r.current == nil {
		midnight := dayStart(r.now)
		nowOffset := r.now.Sub(midnight)
		var begin time.Time
		switch {
		case nowOffset < r.from:
			if dir == PointerPast {
				begin = midnight.AddDate(0, 0, -1).Add(r.from)
			} else {
				begin = midnight.Add(r.from)
			}
		case nowOffset > r.to:
			if dir == PointerPast {
				begin = midnight.Add(r.from)
			} else {
				begin = midnight.AddDate(0, 0, 1).Add(r.from)
			}
		default:
			if dir == PointerPast {
				begin = midnight.AddDate(0, 0, -1).Add(r.from)
			} else {
				begin = midnight.AddDate(0, 0, 1).Add(r.from)
			}
		}
		r.current = &Span{Begin: begin, End: begin.Add(r.to - r.from)}
	} else {
		shifted := r.current.Add(time.Duration(dir.direction()) * daySeconds)
		r.current = &shifted
	}
	return r.current
}

func (r *RepeaterDayPortion) This(ctx Pointer) *Span {
	begin := dayStart(r.now).Add(r.from)
	span := Span{Begin: begin, End: begin.Add(r.to - r.from)}
	r.current = &span
	return r.current
}

func (r *RepeaterDayPortion) Offset(span Span, amount int, dir Pointer) Span {
	r.Start(span.Begin)
	var result *Span
	for i := 0; i < amount; i++ {
		result = r.Next(dir)
	}
	if result == nil {
		return span
	}
	return *result
}

func (r *RepeaterDayPortion) Width() time.Duration { return r.to - r.from }

func (r *RepeaterDayPortion) String() string {
	return "repeater-dayportion-" + string(r.Portion)
}
