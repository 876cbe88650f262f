package chronic

import "time"

// Season identifies an astronomical season with fixed boundary dates.
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	}
	return "winter"
}

// seasonStarts holds the first day of each season (month, day).
var seasonStarts = map[Season]struct {
	month time.Month
	day   int
}{
	SeasonSpring: {time.March, 20},
	SeasonSummer: {time.June, 21},
	SeasonAutumn: {time.September, 23},
	SeasonWinter: {time.December, 22},
}

var seasonOrder = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// seasonStart returns the first instant of season s in year y.
func seasonStart(s Season, y int, loc *time.Location) time.Time {
	b := seasonStarts[s]
	return time.Date(y, b.month, b.day, 0, 0, 0, 0, loc)
}

// seasonSpanFor returns the span of season s whose start year is y. The
// winter span crosses the year boundary.
func seasonSpanFor(s Season, y int, loc *time.Location) Span {
	begin := seasonStart(s, y, loc)
	next := seasonOrder[(int(s)+1)%4]
	endYear := y
	if s == SeasonWinter {
		endYear = y + 1
	}
	return Span{Begin: begin, End: seasonStart(next, endYear, loc)}
}

// currentSeason finds the season containing t and the year its span
// starts in.
func currentSeason(t time.Time) (Season, int) {
	for _, s := range seasonOrder {
		for _, y := range []int{t.Year() - 1, t.Year()} {
			span := seasonSpanFor(s, y, t.Location())
			if span.Contains(t) {
				return s, y
			}
		}
	}
	return SeasonWinter, t.Year() - 1
}

// RepeaterSeason steps whole seasons.
type RepeaterSeason struct {
	repeaterBase
	current *Span
	season  Season
	year    int
}

func (r *RepeaterSeason) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterSeason) step(dir Pointer) {
	idx := int(r.season) + dir.direction()
	switch {
	case idx > int(SeasonWinter):
		idx = int(SeasonSpring)
		r.year++
	case idx < int(SeasonSpring):
		idx = int(SeasonWinter)
		r.year--
	}
	r.season = Season(idx)
}

func (r *RepeaterSeason) Next(dir Pointer) *Span {
	if r.current == nil {
		r.season, r.year = currentSeason(r.now)
	}
	r.step(dir)
	span := seasonSpanFor(r.season, r.year, r.loc())
	r.current = &span
	return r.current
}

func (r *RepeaterSeason) This(ctx Pointer) *Span {
	r.season, r.year = currentSeason(r.now)
	span := seasonSpanFor(r.season, r.year, r.loc())
	switch ctx {
	case PointerFuture:
		span.Begin = dayStart(r.now).Add(daySeconds)
	case PointerPast:
		span.End = dayStart(r.now)
	}
	r.current = &span
	return r.current
}

func (r *RepeaterSeason) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * seasonSeconds)
}

func (r *RepeaterSeason) Width() time.Duration { return seasonSeconds }

func (r *RepeaterSeason) String() string { return "repeater-season" }

// RepeaterSeasonName steps occurrences of one named season.
type RepeaterSeasonName struct {
	repeaterBase
	Season  Season
	current *Span
	year    int
}

func NewRepeaterSeasonName(s Season) *RepeaterSeasonName {
	return &RepeaterSeasonName{Season: s}
}

func (r *RepeaterSeasonName) Start(now time.Time) {
	r.now = now
	r.current = nil
}

func (r *RepeaterSeasonName) Next(dir Pointer) *Span {
	if r.current == nil {
		r.year = r.now.Year()
		if dir == PointerPast {
			for !seasonSpanFor(r.Season, r.year, r.loc()).End.Before(r.now) {
				r.year--
			}
		} else {
			for seasonSpanFor(r.Season, r.year, r.loc()).Begin.Before(r.now) {
				r.year++
			}
		}
	} else {
		r.year += dir.direction()
	}
	span := seasonSpanFor(r.Season, r.year, r.loc())
	r.current = &span
	return r.current
}

func (r *RepeaterSeasonName) This(ctx Pointer) *Span {
	season, year := currentSeason(r.now)
	if season == r.Season {
		r.year = year
		span := seasonSpanFor(r.Season, r.year, r.loc())
		r.current = &span
		return r.current
	}
	if ctx == PointerPast {
		return r.Next(PointerPast)
	}
	return r.Next(PointerFuture)
}

func (r *RepeaterSeasonName) Offset(span Span, amount int, dir Pointer) Span {
	return span.Add(time.Duration(amount*dir.direction()) * yearSeconds)
}

func (r *RepeaterSeasonName) Width() time.Duration { return seasonSeconds }

func (r *RepeaterSeasonName) String() string {
	return "repeater-seasonname-" + r.Season.String()
}
