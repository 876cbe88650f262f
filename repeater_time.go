package chronic

import (
	"strconv"
	"strings"
	"time"
)

// tick is a clock time as an offset from midnight. Ambiguous ticks
// (no meridian, hour readable both ways) iterate in half-day steps.
type tick struct {
	offset    time.Duration
	ambiguous bool
}

// RepeaterTime steps occurrences of a wall-clock time. "12:xx am" maps
// to 00:xx, "12:xx pm" stays 12:xx and "24:00" is the end-of-day
// sentinel.
type RepeaterTime struct {
	repeaterBase
	tick    tick
	current *time.Time
}

// NewRepeaterTime parses HH, HMM, HHMM, HMMSS or HHMMSS digit groups,
// with optional colons. Returns nil for forms that cannot be a clock
// time.
func NewRepeaterTime(word string) *RepeaterTime {
	t := strings.ReplaceAll(word, ":", "")
	t = strings.ReplaceAll(t, ".", "")
	hadColon := strings.Contains(word, ":")
	var tk tick
	switch len(t) {
	case 1, 2:
		hours, _ := strconv.Atoi(t)
		if hours == 12 {
			tk = tick{0, true}
		} else {
			tk = tick{time.Duration(hours) * time.Hour, true}
		}
	case 3:
		h, _ := strconv.Atoi(t[0:1])
		m, _ := strconv.Atoi(t[1:3])
		if m >= 60 {
			return nil
		}
		tk = tick{time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, true}
	case 4:
		h, _ := strconv.Atoi(t[0:2])
		m, _ := strconv.Atoi(t[2:4])
		if h > 24 || m >= 60 {
			return nil
		}
		ambiguous := hadColon && t[0] != '0' && h <= 12
		if h == 12 {
			tk = tick{time.Duration(m) * time.Minute, ambiguous}
		} else {
			tk = tick{time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, ambiguous}
		}
	case 5:
		h, _ := strconv.Atoi(t[0:1])
		m, _ := strconv.Atoi(t[1:3])
		s, _ := strconv.Atoi(t[3:5])
		if m >= 60 || s >= 60 {
			return nil
		}
		tk = tick{time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, true}
	case 6:
		h, _ := strconv.Atoi(t[0:2])
		m, _ := strconv.Atoi(t[2:4])
		s, _ := strconv.Atoi(t[4:6])
		if h > 24 || m >= 60 || s >= 60 {
			return nil
		}
		ambiguous := hadColon && t[0] != '0' && h <= 12
		if h == 12 {
			tk = tick{time.Duration(m)*time.Minute + time.Duration(s)*time.Second, ambiguous}
		} else {
			tk = tick{time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second, ambiguous}
		}
	default:
		return nil
	}
	return &RepeaterTime{tick: tk}
}

func (r *RepeaterTime) Matches(kind TagKind) bool {
	return kind == kindRepeater || kind == kindRepeaterTime
}

func (r *RepeaterTime) Start(now time.Time) {
	r.now = now
	r.current = nil
}

// Ambiguous reports whether the time lacked a meridian and can denote
// either half of the day.
func (r *RepeaterTime) Ambiguous() bool {
	return r.tick.ambiguous
}

// Disambiguate pins an ambiguous tick to one half of the day.
func (r *RepeaterTime) Disambiguate() {
	r.tick.ambiguous = false
}

// ShiftToPM moves an ambiguous morning tick into the afternoon.
func (r *RepeaterTime) ShiftToPM() {
	if r.tick.offset < 12*time.Hour {
		r.tick.offset += 12 * time.Hour
	}
	r.tick.ambiguous = false
}

func (r *RepeaterTime) Next(dir Pointer) *Span {
	halfDay := 12 * time.Hour
	if r.current == nil {
		midnight := dayStart(r.now)
		yesterday := midnight.AddDate(0, 0, -1)
		tomorrow := midnight.AddDate(0, 0, 1)

		var candidates []time.Time
		if dir == PointerPast {
			if r.tick.ambiguous {
				candidates = []time.Time{
					midnight.Add(halfDay + r.tick.offset),
					midnight.Add(r.tick.offset),
					yesterday.Add(halfDay + r.tick.offset),
				}
			} else {
				candidates = []time.Time{
					midnight.Add(r.tick.offset),
					yesterday.Add(r.tick.offset),
				}
			}
			for _, c := range candidates {
				if !c.After(r.now) {
					t := c
					r.current = &t
					break
				}
			}
		} else {
			if r.tick.ambiguous {
				candidates = []time.Time{
					midnight.Add(r.tick.offset),
					midnight.Add(halfDay + r.tick.offset),
					tomorrow.Add(r.tick.offset),
				}
			} else {
				candidates = []time.Time{
					midnight.Add(r.tick.offset),
					tomorrow.Add(r.tick.offset),
				}
			}
			for _, c := range candidates {
				if !c.Before(r.now) {
					t := c
					r.current = &t
					break
				}
			}
		}
		if r.current == nil {
			// All candidates on the wrong side; fall back to the
			// nearest day boundary occurrence.
			t := tomorrow.Add(r.tick.offset)
			if dir == PointerPast {
				t = yesterday.Add(r.tick.offset)
			}
			r.current = &t
		}
	} else {
		step := daySeconds
		if r.tick.ambiguous {
			step = halfDay
		}
		t := r.current.Add(time.Duration(dir.direction()) * step)
		r.current = &t
	}
	return &Span{Begin: *r.current, End: r.current.Add(time.Second)}
}

func (r *RepeaterTime) This(ctx Pointer) *Span {
	if ctx == PointerNone {
		ctx = PointerFuture
	}
	return r.Next(ctx)
}

func (r *RepeaterTime) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * time.Second)
}

func (r *RepeaterTime) Width() time.Duration { return time.Second }

func (r *RepeaterTime) String() string {
	return "repeater-time-" + r.tick.offset.String()
}
