package chronic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fmtSpan(s *Span) string {
	return s.Begin.Format("2006-01-02 15:04:05") + ".." + s.End.Format("2006-01-02 15:04:05")
}

func TestRepeaterYear(t *testing.T) {
	r := &RepeaterYear{}
	r.Start(testNow())

	assert.Equal(t, "2006-01-01 00:00:00..2007-01-01 00:00:00", fmtSpan(r.This(PointerNone)))
	assert.Equal(t, "2007-01-01 00:00:00..2008-01-01 00:00:00", fmtSpan(r.Next(PointerFuture)))
	assert.Equal(t, "2008-01-01 00:00:00..2009-01-01 00:00:00", fmtSpan(r.Next(PointerFuture)))

	r.Start(testNow())
	assert.Equal(t, "2005-01-01 00:00:00..2006-01-01 00:00:00", fmtSpan(r.Next(PointerPast)))
}

func TestRepeaterMonth(t *testing.T) {
	r := &RepeaterMonth{}
	r.Start(testNow())

	assert.Equal(t, "2006-09-01 00:00:00..2006-10-01 00:00:00", fmtSpan(r.Next(PointerFuture)))

	r.Start(testNow())
	assert.Equal(t, "2006-07-01 00:00:00..2006-08-01 00:00:00", fmtSpan(r.Next(PointerPast)))

	r.Start(testNow())
	assert.Equal(t, "2006-08-01 00:00:00..2006-09-01 00:00:00", fmtSpan(r.This(PointerNone)))
}

func TestRepeaterMonthName(t *testing.T) {
	r := NewRepeaterMonthName(time.November)
	r.Start(testNow())
	assert.Equal(t, "2006-11-01 00:00:00..2006-12-01 00:00:00", fmtSpan(r.Next(PointerFuture)))

	r = NewRepeaterMonthName(time.May)
	r.Start(testNow())
	assert.Equal(t, "2007-05-01 00:00:00..2007-06-01 00:00:00", fmtSpan(r.Next(PointerFuture)))

	r = NewRepeaterMonthName(time.May)
	r.Start(testNow())
	assert.Equal(t, "2006-05-01 00:00:00..2006-06-01 00:00:00", fmtSpan(r.Next(PointerPast)))

	// August is the current month: unbiased resolution keeps this year.
	r = NewRepeaterMonthName(time.August)
	r.Start(testNow())
	assert.Equal(t, 2006, r.This(PointerNone).Begin.Year())
}

func TestRepeaterWeek(t *testing.T) {
	r := &RepeaterWeek{}
	r.Start(testNow())
	assert.Equal(t, "2006-08-20 00:00:00..2006-08-27 00:00:00", fmtSpan(r.Next(PointerFuture)))

	r.Start(testNow())
	assert.Equal(t, "2006-08-06 00:00:00..2006-08-13 00:00:00", fmtSpan(r.Next(PointerPast)))

	r.Start(testNow())
	assert.Equal(t, "2006-08-13 00:00:00..2006-08-20 00:00:00", fmtSpan(r.This(PointerNone)))
}

func TestRepeaterWeekend(t *testing.T) {
	r := &RepeaterWeekend{}
	r.Start(testNow())
	assert.Equal(t, "2006-08-19 00:00:00..2006-08-21 00:00:00", fmtSpan(r.Next(PointerFuture)))

	r.Start(testNow())
	assert.Equal(t, "2006-08-12 00:00:00..2006-08-14 00:00:00", fmtSpan(r.Next(PointerPast)))
}

func TestRepeaterWeekday(t *testing.T) {
	r := &RepeaterWeekday{}
	r.Start(testNow()) // Wednesday

	assert.Equal(t, "2006-08-17", r.Next(PointerFuture).Begin.Format("2006-01-02"))
	assert.Equal(t, "2006-08-18", r.Next(PointerFuture).Begin.Format("2006-01-02"))
	// Friday steps over the weekend to Monday.
	assert.Equal(t, "2006-08-21", r.Next(PointerFuture).Begin.Format("2006-01-02"))

	// Offsetting by weekdays skips Saturday and Sunday.
	friday := time.Date(2006, 8, 18, 9, 0, 0, 0, time.Local)
	span := Span{Begin: friday, End: friday.Add(time.Second)}
	shifted := r.Offset(span, 2, PointerFuture)
	assert.Equal(t, "2006-08-22", shifted.Begin.Format("2006-01-02"))
}

func TestRepeaterDayName(t *testing.T) {
	r := NewRepeaterDayName(time.Monday)
	r.Start(testNow())
	assert.Equal(t, "2006-08-21", r.Next(PointerFuture).Begin.Format("2006-01-02"))
	assert.Equal(t, "2006-08-28", r.Next(PointerFuture).Begin.Format("2006-01-02"))

	r = NewRepeaterDayName(time.Monday)
	r.Start(testNow())
	assert.Equal(t, "2006-08-14", r.Next(PointerPast).Begin.Format("2006-01-02"))

	// The day name of today resolves to next week's occurrence.
	r = NewRepeaterDayName(time.Wednesday)
	r.Start(testNow())
	assert.Equal(t, "2006-08-23", r.Next(PointerFuture).Begin.Format("2006-01-02"))
}

func TestRepeaterDayPortion(t *testing.T) {
	am := NewRepeaterDayPortion(PortionAM)
	am.Start(testNow())
	span := am.This(PointerNone)
	assert.Equal(t, "2006-08-16 00:00:00", span.Begin.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2006-08-16 11:59:59", span.End.Format("2006-01-02 15:04:05"))

	// Now is 14:00, inside the pm range: the next pm is tomorrow's.
	pm := NewRepeaterDayPortion(PortionPM)
	pm.Start(testNow())
	span = pm.Next(PointerFuture)
	assert.Equal(t, "2006-08-17 12:00:00", span.Begin.Format("2006-01-02 15:04:05"))

	morning := NewRepeaterDayPortion(PortionMorning)
	morning.Start(testNow())
	span = morning.Next(PointerPast)
	assert.Equal(t, "2006-08-16 06:00:00", span.Begin.Format("2006-01-02 15:04:05"))
}

func TestRepeaterTime_Parsing(t *testing.T) {
	tests := []struct {
		word      string
		offset    time.Duration
		ambiguous bool
	}{
		{"4", 4 * time.Hour, true},
		{"14", 14 * time.Hour, true},
		{"4:00", 4 * time.Hour, true},
		{"16:00", 16 * time.Hour, false},
		{"04:00", 4 * time.Hour, false},
		{"12:30", 30 * time.Minute, true},
		{"24:00", 24 * time.Hour, false},
		{"400", 4 * time.Hour, true},
		{"1230", 30 * time.Minute, false},
		{"5:00:30", 5*time.Hour + 30*time.Second, true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			r := NewRepeaterTime(tt.word)
			require.NotNil(t, r)
			assert.Equal(t, tt.offset, r.tick.offset)
			assert.Equal(t, tt.ambiguous, r.tick.ambiguous)
		})
	}

	assert.Nil(t, NewRepeaterTime("4:75"), "bad minutes")
	assert.Nil(t, NewRepeaterTime("25:00"), "bad hour")
}

func TestRepeaterTime_Next(t *testing.T) {
	// Unambiguous afternoon time later today.
	r := NewRepeaterTime("16:00")
	r.Start(testNow())
	assert.Equal(t, "2006-08-16 16:00:00", r.Next(PointerFuture).Begin.Format("2006-01-02 15:04:05"))

	// Unambiguous morning time already passed: tomorrow.
	r = NewRepeaterTime("04:00")
	r.Start(testNow())
	assert.Equal(t, "2006-08-17 04:00:00", r.Next(PointerFuture).Begin.Format("2006-01-02 15:04:05"))

	// Ambiguous morning time resolves to the nearer pm occurrence.
	r = NewRepeaterTime("4:00")
	r.Start(testNow())
	assert.Equal(t, "2006-08-16 16:00:00", r.Next(PointerFuture).Begin.Format("2006-01-02 15:04:05"))

	// Stepping past.
	r = NewRepeaterTime("4:00")
	r.Start(testNow())
	assert.Equal(t, "2006-08-16 04:00:00", r.Next(PointerPast).Begin.Format("2006-01-02 15:04:05"))
}

func TestRepeaterSeason(t *testing.T) {
	r := &RepeaterSeason{}
	r.Start(testNow())
	span := r.This(PointerNone)
	assert.Equal(t, "2006-06-21", span.Begin.Format("2006-01-02"))
	assert.Equal(t, "2006-09-23", span.End.Format("2006-01-02"))

	next := r.Next(PointerFuture)
	assert.Equal(t, "2006-09-23", next.Begin.Format("2006-01-02"))
	assert.Equal(t, "2006-12-22", next.End.Format("2006-01-02"))
}

func TestRepeaterSeasonName(t *testing.T) {
	r := NewRepeaterSeasonName(SeasonSpring)
	r.Start(testNow())
	span := r.Next(PointerFuture)
	assert.Equal(t, "2007-03-20", span.Begin.Format("2006-01-02"))

	r = NewRepeaterSeasonName(SeasonSpring)
	r.Start(testNow())
	span = r.Next(PointerPast)
	assert.Equal(t, "2006-03-20", span.Begin.Format("2006-01-02"))

	// Winter crosses the year boundary.
	r = NewRepeaterSeasonName(SeasonWinter)
	r.Start(testNow())
	span = r.Next(PointerFuture)
	assert.Equal(t, "2006-12-22", span.Begin.Format("2006-01-02"))
	assert.Equal(t, "2007-03-20", span.End.Format("2006-01-02"))
}

func TestRepeaterWidths(t *testing.T) {
	assert.Equal(t, yearSeconds, (&RepeaterYear{}).Width())
	assert.Equal(t, monthSeconds, (&RepeaterMonth{}).Width())
	assert.Equal(t, weekSeconds, (&RepeaterWeek{}).Width())
	assert.Equal(t, fortnightSeconds, (&RepeaterFortnight{}).Width())
	assert.Equal(t, weekendSeconds, (&RepeaterWeekend{}).Width())
	assert.Equal(t, daySeconds, (&RepeaterDay{}).Width())
	assert.Equal(t, time.Hour, (&RepeaterHour{}).Width())
	assert.Equal(t, time.Minute, (&RepeaterMinute{}).Width())
	assert.Equal(t, time.Second, (&RepeaterSecond{}).Width())
	assert.Equal(t, daySeconds, NewRepeaterDayName(time.Friday).Width())
	assert.Equal(t, monthSeconds, NewRepeaterMonthName(time.May).Width())
}
