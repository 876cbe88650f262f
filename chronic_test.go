package chronic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference instant for every test: Wednesday afternoon.
func testNow() time.Time {
	return time.Date(2006, 8, 16, 14, 0, 0, 0, time.Local)
}

func testOptions() *Options {
	opts := DefaultOptions()
	opts.Now = testNow()
	return opts
}

func mustGuess(t *testing.T, text string, opts *Options) time.Time {
	t.Helper()
	p, err := New(opts)
	require.NoError(t, err)
	got, ok := p.Guess(text)
	require.True(t, ok, "expected %q to parse", text)
	return got
}

func TestGuess_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // "2006-01-02 15:04:05"
	}{
		{"now", "now", "2006-08-16 14:00:00"},
		{"tomorrow", "tomorrow", "2006-08-17 12:00:00"},
		{"yesterday at ambiguous time", "yesterday at 4:00", "2006-08-15 16:00:00"},
		{"weeks from now", "3 weeks from now", "2006-09-06 14:00:00"},
		{"nth weekday in month", "3rd wednesday in november", "2006-11-15 12:00:00"},
		{"tomorrow evening", "tomorrow at 7pm", "2006-08-17 19:00:00"},
		{"yesterday", "yesterday", "2006-08-15 12:00:00"},
		{"weeks ago", "3 weeks ago", "2006-07-26 14:00:00"},
		{"in weeks", "in 3 weeks", "2006-09-06 14:00:00"},
		{"month name and day", "may 27", "2007-05-27 12:00:00"},
		{"full date", "may 27 2006", "2006-05-27 12:00:00"},
		{"iso date", "2006-08-16", "2006-08-16 12:00:00"},
		{"noon", "tomorrow at noon", "2006-08-17 12:00:00"},
		{"word numbers", "three weeks from now", "2006-09-06 14:00:00"},
		{"ordinal day", "november 3rd", "2006-11-03 12:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustGuess(t, tt.input, testOptions())
			assert.Equal(t, tt.want, got.Format("2006-01-02 15:04:05"))
		})
	}
}

func TestGuess_EndianPrecedence(t *testing.T) {
	middle := testOptions()
	got := mustGuess(t, "03/04/2011", middle)
	assert.Equal(t, "2011-03-04", got.Format("2006-01-02"))

	little := testOptions()
	little.EndianPrecedence = []Endian{EndianLittle, EndianMiddle}
	got = mustGuess(t, "03/04/2011", little)
	assert.Equal(t, "2011-04-03", got.Format("2006-01-02"))

	// Precedence is irrelevant once one component cannot be a month.
	got = mustGuess(t, "13/04/2011", middle)
	assert.Equal(t, "2011-04-13", got.Format("2006-01-02"))
	got = mustGuess(t, "13/04/2011", little)
	assert.Equal(t, "2011-04-13", got.Format("2006-01-02"))
}

func TestGuess_DayBoundaries(t *testing.T) {
	future := testOptions()
	got := mustGuess(t, "24:00", future)
	assert.Equal(t, "2006-08-17 00:00:00", got.Format("2006-01-02 15:04:05"),
		"24:00 is the end of the current day")

	past := testOptions()
	past.Context = ContextPast
	got = mustGuess(t, "00:00", past)
	assert.Equal(t, "2006-08-16 00:00:00", got.Format("2006-01-02 15:04:05"),
		"00:00 is the beginning of the current day")
}

func TestGuess_TwelveHourBoundaries(t *testing.T) {
	got := mustGuess(t, "12:00 am", testOptions())
	assert.Equal(t, "2006-08-16 00:00:00", got.Format("2006-01-02 15:04:05"))

	got = mustGuess(t, "12:00 pm", testOptions())
	assert.Equal(t, "2006-08-16 12:00:00", got.Format("2006-01-02 15:04:05"))
}

func TestGuess_TwoDigitYearPivot(t *testing.T) {
	// reference year 2006, bias 50: pivot is 56.
	tests := []struct {
		input string
		want  string
	}{
		{"1/1/55", "2055-01-01"},
		{"1/1/56", "1956-01-01"}, // exact pivot lands in the previous century
		{"1/1/99", "1999-01-01"},
		{"1/1/11", "2011-01-01"},
	}
	for _, tt := range tests {
		got := mustGuess(t, tt.input, testOptions())
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "input %q", tt.input)
	}
}

func TestGuess_ZeroYearBias(t *testing.T) {
	// With no bias the pivot is the reference year itself: 06.
	opts := testOptions()
	opts.AmbiguousYearFutureBias = 0

	got := mustGuess(t, "1/1/05", opts)
	assert.Equal(t, "2005-01-01", got.Format("2006-01-02"))
	got = mustGuess(t, "1/1/06", opts)
	assert.Equal(t, "1906-01-01", got.Format("2006-01-02"))
}

func TestParse_ImpossibleDates(t *testing.T) {
	p, err := New(testOptions())
	require.NoError(t, err)

	for _, input := range []string{
		"february 29 2007", // not a leap year
		"2/30/2006",
		"6/31/2006",
	} {
		_, ok := p.Parse(input)
		assert.False(t, ok, "expected %q not to parse", input)
	}

	_, ok := p.Parse("february 29 2008")
	assert.True(t, ok, "leap day in a leap year parses")
}

func TestParse_NoMatch(t *testing.T) {
	p, err := New(testOptions())
	require.NoError(t, err)

	for _, input := range []string{"", "completely unrelated words", "the quick brown fox"} {
		_, ok := p.Parse(input)
		assert.False(t, ok, "expected %q not to parse", input)
	}
}

func TestParse_SpanInvariants(t *testing.T) {
	inputs := []string{
		"now", "tomorrow", "yesterday at 4:00", "3 weeks from now",
		"3rd wednesday in november", "may 27 2006", "03/04/2011",
		"next month", "last week", "this year", "summer", "friday",
		"tomorrow at 7pm", "6 in the morning", "afternoon", "next fortnight",
	}
	p, err := New(testOptions())
	require.NoError(t, err)

	for _, input := range inputs {
		span, ok := p.Parse(input)
		require.True(t, ok, "expected %q to parse", input)
		assert.True(t, span.End.After(span.Begin), "span end must follow begin for %q", input)

		guess, ok := p.Guess(input)
		require.True(t, ok)
		assert.False(t, guess.Before(span.Begin), "guess before span for %q", input)
		assert.True(t, guess.Before(span.End), "guess past span for %q", input)
	}
}

func TestParse_AbsoluteInputsIgnoreNow(t *testing.T) {
	a := testOptions()
	b := testOptions()
	b.Now = time.Date(2013, 2, 2, 2, 2, 2, 0, time.Local)

	for _, input := range []string{"may 27 2006", "2006-08-16", "03/04/2011 at 5:00 pm"} {
		got1 := mustGuess(t, input, a)
		got2 := mustGuess(t, input, b)
		assert.Equal(t, got1, got2, "absolute input %q depends on now", input)
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	p, err := New(testOptions())
	require.NoError(t, err)

	for _, date := range []string{"2006-08-16", "2011-03-04", "1999-12-31", "2008-02-29"} {
		got, ok := p.Guess(date)
		require.True(t, ok, "expected %q to parse", date)
		assert.Equal(t, date, got.Format("2006-01-02"))
	}
}

func TestParse_ContextBias(t *testing.T) {
	future := testOptions()
	got := mustGuess(t, "monday", future)
	assert.Equal(t, "2006-08-21", got.Format("2006-01-02"), "future monday")

	past := testOptions()
	past.Context = ContextPast
	got = mustGuess(t, "monday", past)
	assert.Equal(t, "2006-08-14", got.Format("2006-01-02"), "past monday")

	got = mustGuess(t, "december", future)
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 2006, got.Year())

	got = mustGuess(t, "december", past)
	assert.Equal(t, 2005, got.Year(), "past december is last year's")
}

func TestParse_AmbiguousTimeRange(t *testing.T) {
	// Default window: bare "4:00" resolves to 16:00.
	got := mustGuess(t, "4:00", testOptions())
	assert.Equal(t, "2006-08-16 16:00:00", got.Format("2006-01-02 15:04:05"))

	// A midnight-anchored window keeps the hour in the morning half of
	// the current day.
	wide := testOptions()
	wide.AmbiguousTimeRange = 0
	got = mustGuess(t, "4:00", wide)
	assert.Equal(t, "2006-08-16 04:00:00", got.Format("2006-01-02 15:04:05"))

	// Disabled window: first 24-hour occurrence at or after now.
	none := testOptions()
	none.AmbiguousTimeRange = AmbiguousTimeRangeNone
	got = mustGuess(t, "16:00", none)
	assert.Equal(t, "2006-08-16 16:00:00", got.Format("2006-01-02 15:04:05"))
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"bad context", func(o *Options) { o.Context = "sideways" }},
		{"bad endian", func(o *Options) { o.EndianPrecedence = []Endian{"big"} }},
		{"empty endian", func(o *Options) { o.EndianPrecedence = nil }},
		{"time range too high", func(o *Options) { o.AmbiguousTimeRange = 13 }},
		{"negative bias", func(o *Options) { o.AmbiguousYearFutureBias = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(opts)
			_, err := New(opts)
			require.Error(t, err)
			var invalid ErrInvalidOption
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestParse_ClockProviderFallback(t *testing.T) {
	opts := DefaultOptions()
	opts.Clock = func() time.Time { return testNow() }

	got := mustGuess(t, "now", opts)
	assert.True(t, got.Equal(testNow()))
}

func TestParse_GrabberCombinations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"this day", "2006-08-16"},
		{"next day", "2006-08-17"},
		{"last day", "2006-08-15"},
		{"next week", "2006-08-23"},  // midpoint of the Sunday-based week
		{"last month", "2006-07-16"}, // midpoint of July
		{"next year", "2007-07-02"},  // midpoint of 2007
		{"next month monday", "2006-09-04"},
	}
	for _, tt := range tests {
		got := mustGuess(t, tt.input, testOptions())
		assert.Equal(t, tt.want, got.Format("2006-01-02"), "input %q", tt.input)
	}
}

func TestParse_NarrowOrdinalOutOfRange(t *testing.T) {
	p, err := New(testOptions())
	require.NoError(t, err)

	_, ok := p.Parse("6th saturday in november")
	assert.False(t, ok, "november has no sixth saturday")
}

func TestParse_PackageLevel(t *testing.T) {
	span, ok, err := Parse("tomorrow", testOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2006-08-17", span.Begin.Format("2006-01-02"))

	instant, ok, err := Guess("tomorrow", testOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2006-08-17 12:00:00", instant.Format("2006-01-02 15:04:05"))

	bad := testOptions()
	bad.Context = "bogus"
	_, _, err = Parse("tomorrow", bad)
	require.Error(t, err)
}
