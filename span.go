package chronic

import (
	"fmt"
	"time"
)

// Span is a half-open interval of instants [Begin, End). A span of width
// one second represents a point.
type Span struct {
	Begin time.Time
	End   time.Time
}

// NewSpan creates a span. End must be after Begin.
func NewSpan(begin, end time.Time) Span {
	return Span{Begin: begin, End: end}
}

// Width returns the length of the span.
func (s Span) Width() time.Duration {
	return s.End.Sub(s.Begin)
}

// Add shifts both endpoints by d.
func (s Span) Add(d time.Duration) Span {
	return Span{Begin: s.Begin.Add(d), End: s.End.Add(d)}
}

// Contains reports whether t falls inside the interval.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Begin) && t.Before(s.End)
}

// Guess collapses the span to a single instant: the beginning for a
// one-second span, otherwise the midpoint (rounded toward Begin).
func (s Span) Guess() time.Time {
	secs := int64(s.Width() / time.Second)
	if secs > 1 {
		return s.Begin.Add(time.Duration(secs/2) * time.Second)
	}
	return s.Begin
}

// IsZero reports whether the span is the zero value.
func (s Span) IsZero() bool {
	return s.Begin.IsZero() && s.End.IsZero()
}

func (s Span) String() string {
	return fmt.Sprintf("[%s..%s)", s.Begin.Format("2006-01-02 15:04:05"), s.End.Format("2006-01-02 15:04:05"))
}
