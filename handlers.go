package chronic

import (
	"sort"
	"time"
)

// run is the per-parse state: options, the reference instant (which
// date handlers re-anchor before resolving trailing time tokens) and
// the stage trace.
type run struct {
	opts  *Options
	now   time.Time
	trace stageTracer
}

// stageTracer is the debug sink consulted at stage boundaries.
type stageTracer interface {
	Stage(stage string, kvs ...any)
}

func (r *run) context() Pointer {
	switch r.opts.Context {
	case ContextPast:
		return PointerPast
	case ContextNone:
		return PointerNone
	}
	return PointerFuture
}

// timeLocal builds a date in the parse calendar, reporting impossible
// dates (Feb 30) instead of normalizing them.
func (r *run) timeLocal(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, r.opts.location())
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// getRepeaters pulls the repeater tags off the tokens, widest first.
func getRepeaters(tokens []*Token) []Repeater {
	var reps []Repeater
	for _, tok := range tokens {
		if rep := tok.Repeater(); rep != nil {
			reps = append(reps, rep)
		}
	}
	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].Width() > reps[j].Width()
	})
	return reps
}

// getAnchor resolves a grabber plus a stack of repeaters: the widest
// repeater picks the outer span, each narrower one is located inside it.
func (r *run) getAnchor(tokens []*Token) *Span {
	grabber := GrabThis
	repeaters := getRepeaters(tokens)

	rest := tokens[:len(tokens)-len(repeaters)]
	if len(rest) > 0 {
		if g, ok := rest[0].Get(kindGrabber).(*GrabberTag); ok && g != nil {
			grabber = g.Kind
		}
	}

	if len(repeaters) == 0 {
		return nil
	}
	head := repeaters[0]
	rest2 := repeaters[1:]
	head.Start(r.now)

	var outer *Span
	switch grabber {
	case GrabLast:
		outer = head.Next(PointerPast)
	case GrabNext:
		outer = head.Next(PointerFuture)
	default:
		if len(rest2) > 0 {
			outer = head.This(PointerNone)
		} else {
			outer = head.This(r.context())
		}
	}
	if outer == nil {
		return nil
	}
	return r.findWithin(rest2, *outer, PointerFuture)
}

// findWithin locates each successive repeater's occurrence inside the
// current span; an occurrence that falls outside kills the match.
func (r *run) findWithin(reps []Repeater, span Span, dir Pointer) *Span {
	if len(reps) == 0 {
		return &span
	}
	head, rest := reps[0], reps[1:]
	if dir == PointerPast {
		head.Start(span.End)
	} else {
		head.Start(span.Begin)
	}
	h := head.This(PointerNone)
	if h == nil {
		return nil
	}
	if span.Contains(h.Begin) || span.Contains(h.End) {
		return r.findWithin(rest, *h, dir)
	}
	return nil
}

// dealiasAndDisambiguate rewrites day-portion aliases next to a clock
// time ("5:00 in the morning" has already normalized to "5:00 morning",
// which becomes 5:00 am) and, unless the AM window is disabled, pins
// every still-ambiguous clock time with a synthetic portion token.
func (r *run) dealiasAndDisambiguate(tokens []*Token) []*Token {
	var portionTok *Token
	var timeTok *Token
	for _, tok := range tokens {
		if portionTok == nil && tok.Has(kindRepeaterDayPortion) {
			portionTok = tok
		}
		if timeTok == nil && tok.Has(kindRepeaterTime) {
			timeTok = tok
		}
	}
	if portionTok != nil && timeTok != nil {
		portion := portionTok.Get(kindRepeaterDayPortion).(*RepeaterDayPortion)
		switch portion.Portion {
		case PortionMorning:
			portionTok.Untag(kindRepeaterDayPortion)
			portionTok.Tag(NewRepeaterDayPortion(PortionAM))
		case PortionAfternoon, PortionEvening, PortionNight:
			portionTok.Untag(kindRepeaterDayPortion)
			portionTok.Tag(NewRepeaterDayPortion(PortionPM))
		}
	}

	if r.opts.AmbiguousTimeRange == AmbiguousTimeRangeNone {
		return tokens
	}
	out := make([]*Token, 0, len(tokens)+1)
	for i, tok := range tokens {
		out = append(out, tok)
		rt, ok := tok.Get(kindRepeaterTime).(*RepeaterTime)
		if !ok || rt == nil || !rt.Ambiguous() {
			continue
		}
		var next *Token
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		if next == nil || !next.Has(kindRepeaterDayPortion) {
			dis := NewToken("disambiguator")
			dis.Tag(newPortionFromHour(r.opts.AmbiguousTimeRange))
			out = append(out, dis)
		}
	}
	return out
}

// dayOrTime returns the whole day when no time tokens follow, otherwise
// re-anchors the parse at that day and resolves the time inside it.
func (r *run) dayOrTime(dayBegin time.Time, timeTokens []*Token) *Span {
	outer := Span{Begin: dayBegin, End: dayBegin.Add(daySeconds)}
	if len(timeTokens) == 0 {
		return &outer
	}
	r.now = outer.Begin
	return r.getAnchor(r.dealiasAndDisambiguate(timeTokens))
}

// --- anchor handlers ---

func handleR(r *run, tokens []*Token) *Span {
	return r.getAnchor(r.dealiasAndDisambiguate(tokens))
}

// handleRGR reorders "repeater grabber repeater" ("tuesday last week")
// into grabber-first form.
func handleRGR(r *run, tokens []*Token) *Span {
	reordered := []*Token{tokens[1], tokens[0], tokens[2]}
	return handleR(r, reordered)
}

// --- arrow handlers ---

func handleSRP(r *run, tokens []*Token) *Span {
	span := Span{Begin: r.now, End: r.now.Add(time.Second)}
	return r.offsetBy(tokens, span)
}

func handlePSR(r *run, tokens []*Token) *Span {
	reordered := []*Token{tokens[1], tokens[2], tokens[0]}
	return handleSRP(r, reordered)
}

func handleSRPA(r *run, tokens []*Token) *Span {
	anchor := r.getAnchor(tokens[3:])
	if anchor == nil {
		return nil
	}
	return r.offsetBy(tokens[:3], *anchor)
}

func (r *run) offsetBy(tokens []*Token, span Span) *Span {
	scalar, _ := tokens[0].Get(kindScalar).(*ScalarTag)
	rep := tokens[1].Repeater()
	ptr, _ := tokens[2].Get(kindPointer).(*PointerTag)
	if scalar == nil || rep == nil || ptr == nil {
		return nil
	}
	rep.Start(r.now)
	shifted := rep.Offset(span, scalar.Value, ptr.Pointer)
	return &shifted
}

// --- narrow handlers ---

func handleORSR(r *run, tokens []*Token) *Span {
	outer := r.getAnchor(tokens[3:4])
	if outer == nil {
		return nil
	}
	return r.nthIn(tokens[0], tokens[1], *outer)
}

func handleORGR(r *run, tokens []*Token) *Span {
	outer := r.getAnchor(tokens[2:4])
	if outer == nil {
		return nil
	}
	return r.nthIn(tokens[0], tokens[1], *outer)
}

// nthIn walks the inner repeater forward from just before the outer
// span; running past the end means the ordinal does not exist there.
func (r *run) nthIn(ordTok, repTok *Token, outer Span) *Span {
	ord, _ := ordTok.Get(kindOrdinal).(*OrdinalTag)
	rep := repTok.Repeater()
	if ord == nil || rep == nil || ord.Value < 1 {
		return nil
	}
	rep.Start(outer.Begin.Add(-time.Second))
	var span *Span
	for i := 0; i < ord.Value; i++ {
		span = rep.Next(PointerFuture)
		if !span.Begin.Before(outer.End) {
			return nil
		}
	}
	return span
}

// --- date handlers ---

// monthDay anchors a named month via the context, then picks the day
// inside it.
func (r *run) monthDay(month *RepeaterMonthName, day int, timeTokens []*Token) *Span {
	month.Start(r.now)
	span := month.This(r.context())
	if span == nil {
		return nil
	}
	begin, ok := r.timeLocal(span.Begin.Year(), span.Begin.Month(), day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, timeTokens)
}

func monthNameAt(tokens []*Token, i int) *RepeaterMonthName {
	m, _ := tokens[i].Get(kindRepeaterMonthName).(*RepeaterMonthName)
	return m
}

func scalarValue(tokens []*Token, i int, kind TagKind) (int, bool) {
	s, _ := tokens[i].Get(kind).(*ScalarTag)
	if s == nil {
		return 0, false
	}
	return s.Value, true
}

func handleRmnSd(r *run, tokens []*Token) *Span {
	month := monthNameAt(tokens, 0)
	day, ok := scalarValue(tokens, 1, kindScalarDay)
	if month == nil || !ok {
		return nil
	}
	return r.monthDay(month, day, tokens[2:])
}

func handleRmnSdOn(r *run, tokens []*Token) *Span {
	// time [portion] month day
	var month *RepeaterMonthName
	var day int
	var ok bool
	if len(tokens) > 3 {
		month = monthNameAt(tokens, 2)
		day, ok = scalarValue(tokens, 3, kindScalarDay)
		if month == nil || !ok {
			return nil
		}
		return r.monthDay(month, day, tokens[:2])
	}
	month = monthNameAt(tokens, 1)
	day, ok = scalarValue(tokens, 2, kindScalarDay)
	if month == nil || !ok {
		return nil
	}
	return r.monthDay(month, day, tokens[:1])
}

func handleRmnOd(r *run, tokens []*Token) *Span {
	month := monthNameAt(tokens, 0)
	ord, _ := tokens[1].Get(kindOrdinalDay).(*OrdinalTag)
	if month == nil || ord == nil {
		return nil
	}
	return r.monthDay(month, ord.Value, tokens[2:])
}

func handleRmnOdOn(r *run, tokens []*Token) *Span {
	var month *RepeaterMonthName
	var ord *OrdinalTag
	if len(tokens) > 3 {
		month = monthNameAt(tokens, 2)
		ord, _ = tokens[3].Get(kindOrdinalDay).(*OrdinalTag)
		if month == nil || ord == nil {
			return nil
		}
		return r.monthDay(month, ord.Value, tokens[:2])
	}
	month = monthNameAt(tokens, 1)
	ord, _ = tokens[2].Get(kindOrdinalDay).(*OrdinalTag)
	if month == nil || ord == nil {
		return nil
	}
	return r.monthDay(month, ord.Value, tokens[:1])
}

func handleRmnSy(r *run, tokens []*Token) *Span {
	month := monthNameAt(tokens, 0)
	year, ok := scalarValue(tokens, 1, kindScalarYear)
	if month == nil || !ok {
		return nil
	}
	begin, ok := r.timeLocal(year, month.Month, 1)
	if !ok {
		return nil
	}
	return &Span{Begin: begin, End: begin.AddDate(0, 1, 0)}
}

func handleRmnSdSy(r *run, tokens []*Token) *Span {
	month := monthNameAt(tokens, 0)
	day, dayOK := scalarValue(tokens, 1, kindScalarDay)
	year, yearOK := scalarValue(tokens, 2, kindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	begin, ok := r.timeLocal(year, month.Month, day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, tokens[3:])
}

func handleSdRmnSy(r *run, tokens []*Token) *Span {
	day, dayOK := scalarValue(tokens, 0, kindScalarDay)
	month := monthNameAt(tokens, 1)
	year, yearOK := scalarValue(tokens, 2, kindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	begin, ok := r.timeLocal(year, month.Month, day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, tokens[3:])
}

func handleRdnRmnSdTTzSy(r *run, tokens []*Token) *Span {
	month := monthNameAt(tokens, 1)
	day, dayOK := scalarValue(tokens, 2, kindScalarDay)
	year, yearOK := scalarValue(tokens, 5, kindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	begin, ok := r.timeLocal(year, month.Month, day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, tokens[3:4])
}

func handleSmSdSy(r *run, tokens []*Token) *Span {
	month, mOK := scalarValue(tokens, 0, kindScalarMonth)
	day, dOK := scalarValue(tokens, 1, kindScalarDay)
	year, yOK := scalarValue(tokens, 2, kindScalarYear)
	if !mOK || !dOK || !yOK {
		return nil
	}
	begin, ok := r.timeLocal(year, time.Month(month), day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, tokens[3:])
}

func handleSdSmSy(r *run, tokens []*Token) *Span {
	day, dOK := scalarValue(tokens, 0, kindScalarDay)
	month, mOK := scalarValue(tokens, 1, kindScalarMonth)
	year, yOK := scalarValue(tokens, 2, kindScalarYear)
	if !mOK || !dOK || !yOK {
		return nil
	}
	begin, ok := r.timeLocal(year, time.Month(month), day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, tokens[3:])
}

func handleSySmSd(r *run, tokens []*Token) *Span {
	year, yOK := scalarValue(tokens, 0, kindScalarYear)
	month, mOK := scalarValue(tokens, 1, kindScalarMonth)
	day, dOK := scalarValue(tokens, 2, kindScalarDay)
	if !mOK || !dOK || !yOK {
		return nil
	}
	begin, ok := r.timeLocal(year, time.Month(month), day)
	if !ok {
		return nil
	}
	return r.dayOrTime(begin, tokens[3:])
}

// handleSmSd resolves a yearless month/day toward the context direction.
func handleSmSd(r *run, tokens []*Token) *Span {
	month, mOK := scalarValue(tokens, 0, kindScalarMonth)
	day, dOK := scalarValue(tokens, 1, kindScalarDay)
	if !mOK || !dOK {
		return nil
	}
	return r.yearlessDate(time.Month(month), day, tokens[2:])
}

func handleSdSm(r *run, tokens []*Token) *Span {
	day, dOK := scalarValue(tokens, 0, kindScalarDay)
	month, mOK := scalarValue(tokens, 1, kindScalarMonth)
	if !mOK || !dOK {
		return nil
	}
	return r.yearlessDate(time.Month(month), day, tokens[2:])
}

func (r *run) yearlessDate(month time.Month, day int, timeTokens []*Token) *Span {
	begin, ok := r.timeLocal(r.now.Year(), month, day)
	if !ok {
		return nil
	}
	if r.opts.Context == ContextFuture && begin.Before(dayStart(r.now)) {
		if shifted, ok := r.timeLocal(r.now.Year()+1, month, day); ok {
			begin = shifted
		} else {
			return nil
		}
	} else if r.opts.Context == ContextPast && begin.After(r.now) {
		if shifted, ok := r.timeLocal(r.now.Year()-1, month, day); ok {
			begin = shifted
		} else {
			return nil
		}
	}
	return r.dayOrTime(begin, timeTokens)
}
