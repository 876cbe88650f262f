package chronic

import (
	"regexp"
	"time"
)

// Durations used for span arithmetic. Months, seasons and years use
// nominal widths; calendar-exact stepping happens inside the individual
// repeaters.
const (
	daySeconds       = 24 * time.Hour
	weekSeconds      = 7 * daySeconds
	weekendSeconds   = 2 * daySeconds
	fortnightSeconds = 14 * daySeconds
	monthSeconds     = 30 * daySeconds
	seasonSeconds    = 91 * daySeconds
	yearSeconds      = 365 * daySeconds
)

// Repeater is a unit-parameterized operator over spans: it can produce
// the span containing the reference instant, step occurrence by
// occurrence in either direction, and shift an arbitrary span by whole
// units. Next is a stateful iterator; Start resets it.
type Repeater interface {
	Tag
	// Start sets the reference instant and resets iteration state.
	Start(now time.Time)
	// This returns the span of this unit containing (or adjoining) the
	// reference instant, trimmed by the context direction.
	This(ctx Pointer) *Span
	// Next steps to the following (or previous) occurrence. Successive
	// calls keep stepping.
	Next(dir Pointer) *Span
	// Offset shifts span by amount units in the pointer direction.
	Offset(span Span, amount int, dir Pointer) Span
	// Width is the nominal width of one unit.
	Width() time.Duration
}

// repeaterBase carries the reference instant shared by all repeaters.
type repeaterBase struct {
	now time.Time
}

func (r *repeaterBase) Start(now time.Time) {
	r.now = now
}

func (r *repeaterBase) Matches(kind TagKind) bool {
	return kind == kindRepeater
}

func (r *repeaterBase) loc() *time.Location {
	return r.now.Location()
}

// dayStart returns midnight of the day containing t.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// hourStart truncates t to the top of its hour.
func hourStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// minuteStart truncates t to the top of its minute.
func minuteStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

// monthStart returns the first instant of the month containing t.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// yearStart returns the first instant of the year y.
func yearStart(y int, loc *time.Location) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
}

var (
	timeForm = regexp.MustCompile(`^\d{1,2}(:?\d{2})?([.:]?\d{2})?$`)
	unitRe   = map[string]*regexp.Regexp{
		"year":      regexp.MustCompile(`^years?$`),
		"season":    regexp.MustCompile(`^seasons?$`),
		"month":     regexp.MustCompile(`^months?$`),
		"fortnight": regexp.MustCompile(`^fortnights?$`),
		"week":      regexp.MustCompile(`^weeks?$`),
		"weekend":   regexp.MustCompile(`^weekends?$`),
		"weekday":   regexp.MustCompile(`^(week|business)days?$`),
		"day":       regexp.MustCompile(`^days?$`),
		"hour":      regexp.MustCompile(`^hours?$`),
		"minute":    regexp.MustCompile(`^minutes?$`),
		"second":    regexp.MustCompile(`^seconds?$`),
	}

	monthNameRe = []struct {
		re    *regexp.Regexp
		month time.Month
	}{
		{regexp.MustCompile(`^jan(uary)?$`), time.January},
		{regexp.MustCompile(`^feb(ruary)?$`), time.February},
		{regexp.MustCompile(`^mar(ch)?$`), time.March},
		{regexp.MustCompile(`^apr(il)?$`), time.April},
		{regexp.MustCompile(`^may$`), time.May},
		{regexp.MustCompile(`^jun(e)?$`), time.June},
		{regexp.MustCompile(`^jul(y)?$`), time.July},
		{regexp.MustCompile(`^aug(ust)?$`), time.August},
		{regexp.MustCompile(`^sep(t(ember)?)?$`), time.September},
		{regexp.MustCompile(`^oct(ober)?$`), time.October},
		{regexp.MustCompile(`^nov(ember)?$`), time.November},
		{regexp.MustCompile(`^dec(ember)?$`), time.December},
	}

	dayNameRe = []struct {
		re  *regexp.Regexp
		day time.Weekday
	}{
		{regexp.MustCompile(`^m[ou]n(day)?$`), time.Monday},
		{regexp.MustCompile(`^t(ue|eu|oo|u)e?s?(day)?$`), time.Tuesday},
		{regexp.MustCompile(`^we(d|dnes|nds|nns)(day)?$`), time.Wednesday},
		{regexp.MustCompile(`^th(u|ur|urs|ers)s?(day)?$`), time.Thursday},
		{regexp.MustCompile(`^fr[iy](day)?$`), time.Friday},
		{regexp.MustCompile(`^sat(t?[ue]rday)?$`), time.Saturday},
		{regexp.MustCompile(`^su[nm](day)?$`), time.Sunday},
	}

	seasonNameRe = []struct {
		re     *regexp.Regexp
		season Season
	}{
		{regexp.MustCompile(`^springs?$`), SeasonSpring},
		{regexp.MustCompile(`^summers?$`), SeasonSummer},
		{regexp.MustCompile(`^(autumn|fall)s?$`), SeasonAutumn},
		{regexp.MustCompile(`^winters?$`), SeasonWinter},
	}

	dayPortionRe = []struct {
		re      *regexp.Regexp
		portion PortionKind
	}{
		{regexp.MustCompile(`^ams?$`), PortionAM},
		{regexp.MustCompile(`^pms?$`), PortionPM},
		{regexp.MustCompile(`^mornings?$`), PortionMorning},
		{regexp.MustCompile(`^afternoons?$`), PortionAfternoon},
		{regexp.MustCompile(`^evenings?$`), PortionEvening},
		{regexp.MustCompile(`^(night|nite)s?$`), PortionNight},
	}
)

// scanRepeaters attaches repeater tags: unit words, month and day names,
// seasons, day portions and clock forms.
func scanRepeaters(tokens []*Token) {
	for _, tok := range tokens {
		for _, sn := range seasonNameRe {
			if sn.re.MatchString(tok.Word) {
				tok.Tag(NewRepeaterSeasonName(sn.season))
				break
			}
		}
		for _, mn := range monthNameRe {
			if mn.re.MatchString(tok.Word) {
				tok.Tag(NewRepeaterMonthName(mn.month))
				break
			}
		}
		for _, dn := range dayNameRe {
			if dn.re.MatchString(tok.Word) {
				tok.Tag(NewRepeaterDayName(dn.day))
				break
			}
		}
		for _, dp := range dayPortionRe {
			if dp.re.MatchString(tok.Word) {
				tok.Tag(NewRepeaterDayPortion(dp.portion))
				break
			}
		}
		if timeForm.MatchString(tok.Word) {
			if rt := NewRepeaterTime(tok.Word); rt != nil {
				tok.Tag(rt)
			}
		}
		for unit, re := range unitRe {
			if re.MatchString(tok.Word) {
				if rep := newUnitRepeater(unit); rep != nil {
					tok.Tag(rep)
				}
				break
			}
		}
	}
}

func newUnitRepeater(unit string) Repeater {
	switch unit {
	case "year":
		return &RepeaterYear{}
	case "season":
		return &RepeaterSeason{}
	case "month":
		return &RepeaterMonth{}
	case "fortnight":
		return &RepeaterFortnight{}
	case "week":
		return &RepeaterWeek{}
	case "weekend":
		return &RepeaterWeekend{}
	case "weekday":
		return &RepeaterWeekday{}
	case "day":
		return &RepeaterDay{}
	case "hour":
		return &RepeaterHour{}
	case "minute":
		return &RepeaterMinute{}
	case "second":
		return &RepeaterSecond{}
	}
	return nil
}
