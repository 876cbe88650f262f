package chronic

// A pattern atom matches one token by tag kind, optionally, or hands the
// rest of the stream to a named sub-grammar. Sub-grammar atoms are
// terminal: they must consume everything that remains.
type atom struct {
	kind     TagKind
	sub      string
	optional bool
}

func a(kind TagKind) atom     { return atom{kind: kind} }
func aOpt(kind TagKind) atom  { return atom{kind: kind, optional: true} }
func sub(name string) atom    { return atom{sub: name} }
func subOpt(name string) atom { return atom{sub: name, optional: true} }

// handlerFn interprets matched tokens into a span, or nil when the
// combination turns out to be impossible (bad calendar date, ordinal out
// of range).
type handlerFn func(r *run, tokens []*Token) *Span

type patternHandler struct {
	name    string
	pattern []atom
	fn      handlerFn
}

type definitions map[string][]patternHandler

// buildDefinitions assembles the grammar for one parse. It is rebuilt
// per call so endian precedence is always honored.
func buildDefinitions(opts *Options) definitions {
	defs := definitions{
		"time": {
			{name: "time", pattern: []atom{a(kindRepeaterTime), aOpt(kindRepeaterDayPortion)}},
		},
		"date": {
			{name: "rdn_rmn_sd_t_tz_sy", pattern: []atom{a(kindRepeaterDayName), a(kindRepeaterMonthName), a(kindScalarDay), a(kindRepeaterTime), a(kindTimeZone), a(kindScalarYear)}, fn: handleRdnRmnSdTTzSy},
			{name: "rmn_sd_sy", pattern: []atom{a(kindRepeaterMonthName), a(kindScalarDay), a(kindScalarYear)}, fn: handleRmnSdSy},
			{name: "rmn_sd_sy_t", pattern: []atom{a(kindRepeaterMonthName), a(kindScalarDay), a(kindScalarYear), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleRmnSdSy},
			{name: "rmn_sd", pattern: []atom{a(kindRepeaterMonthName), a(kindScalarDay), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleRmnSd},
			{name: "rmn_sd_on", pattern: []atom{a(kindRepeaterTime), aOpt(kindRepeaterDayPortion), aOpt(kindSeparatorOn), a(kindRepeaterMonthName), a(kindScalarDay)}, fn: handleRmnSdOn},
			{name: "rmn_od", pattern: []atom{a(kindRepeaterMonthName), a(kindOrdinalDay)}, fn: handleRmnOd},
			{name: "rmn_od_on", pattern: []atom{a(kindRepeaterTime), aOpt(kindRepeaterDayPortion), aOpt(kindSeparatorOn), a(kindRepeaterMonthName), a(kindOrdinalDay)}, fn: handleRmnOdOn},
			{name: "rmn_sy", pattern: []atom{a(kindRepeaterMonthName), a(kindScalarYear)}, fn: handleRmnSy},
			{name: "sd_rmn_sy", pattern: []atom{a(kindScalarDay), a(kindRepeaterMonthName), a(kindScalarYear), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleSdRmnSy},
		},
		"anchor": {
			{name: "r", pattern: []atom{aOpt(kindGrabber), a(kindRepeater), aOpt(kindSeparatorAt), aOpt(kindRepeater), aOpt(kindRepeater)}, fn: handleR},
			{name: "r_r", pattern: []atom{aOpt(kindGrabber), a(kindRepeater), a(kindRepeater), aOpt(kindSeparatorAt), aOpt(kindRepeater), aOpt(kindRepeater)}, fn: handleR},
			{name: "r_g_r", pattern: []atom{a(kindRepeater), a(kindGrabber), a(kindRepeater)}, fn: handleRGR},
		},
		"arrow": {
			{name: "s_r_p", pattern: []atom{a(kindScalar), a(kindRepeater), a(kindPointer)}, fn: handleSRP},
			{name: "p_s_r", pattern: []atom{a(kindPointer), a(kindScalar), a(kindRepeater)}, fn: handlePSR},
			{name: "s_r_p_a", pattern: []atom{a(kindScalar), a(kindRepeater), a(kindPointer), sub("anchor")}, fn: handleSRPA},
		},
		"narrow": {
			{name: "o_r_s_r", pattern: []atom{a(kindOrdinal), a(kindRepeater), a(kindSeparatorIn), a(kindRepeater)}, fn: handleORSR},
			{name: "o_r_g_r", pattern: []atom{a(kindOrdinal), a(kindRepeater), a(kindGrabber), a(kindRepeater)}, fn: handleORGR},
		},
	}

	middle := []patternHandler{
		{name: "sm_sd_sy", pattern: []atom{a(kindScalarMonth), a(kindSeparatorSlashOrDash), a(kindScalarDay), a(kindSeparatorSlashOrDash), a(kindScalarYear), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleSmSdSy},
		{name: "sm_sd", pattern: []atom{a(kindScalarMonth), a(kindSeparatorSlashOrDash), a(kindScalarDay), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleSmSd},
	}
	little := []patternHandler{
		{name: "sd_sm_sy", pattern: []atom{a(kindScalarDay), a(kindSeparatorSlashOrDash), a(kindScalarMonth), a(kindSeparatorSlashOrDash), a(kindScalarYear), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleSdSmSy},
		{name: "sd_sm", pattern: []atom{a(kindScalarDay), a(kindSeparatorSlashOrDash), a(kindScalarMonth), aOpt(kindSeparatorAt), subOpt("time")}, fn: handleSdSm},
	}
	var endian []patternHandler
	if opts.EndianPrecedence[0] == EndianLittle {
		endian = append(endian, little...)
		endian = append(endian, middle...)
	} else {
		endian = append(endian, middle...)
		endian = append(endian, little...)
	}
	// ISO-style year-first dates resolve last, whatever the precedence.
	endian = append(endian, patternHandler{
		name:    "sy_sm_sd",
		pattern: []atom{a(kindScalarYear), a(kindSeparatorSlashOrDash), a(kindScalarMonth), a(kindSeparatorSlashOrDash), a(kindScalarDay), aOpt(kindSeparatorAt), subOpt("time")},
		fn:      handleSySmSd,
	})
	defs["endian"] = endian
	return defs
}

// match implements the pattern language: required atoms consume one
// token, optional atoms zero or one, and a sub-grammar atom succeeds
// only if some sub-pattern consumes every remaining token.
func match(tokens []*Token, pattern []atom, defs definitions) bool {
	idx := 0
	for _, at := range pattern {
		if at.sub != "" {
			for _, sh := range defs[at.sub] {
				if match(tokens[idx:], sh.pattern, defs) {
					return true
				}
			}
			if !at.optional {
				return false
			}
			continue
		}
		ok := idx < len(tokens) && tokens[idx].Has(at.kind)
		switch {
		case ok:
			idx++
		case at.optional:
		default:
			return false
		}
	}
	return idx == len(tokens)
}

// list evaluation order; first full match wins.
var listOrder = []string{"date", "endian", "anchor", "arrow", "narrow"}

// tokensToSpan tries each pattern list against the tagged tokens and
// invokes the winning handler on a stream filtered by the per-list
// separator policy. Narrow handlers see the unfiltered stream.
func (r *run) tokensToSpan(tokens []*Token) *Span {
	defs := buildDefinitions(r.opts)
	for _, list := range listOrder {
		for _, ph := range defs[list] {
			if !match(tokens, ph.pattern, defs) {
				continue
			}
			r.trace.Stage("match", "list", list, "pattern", ph.name)
			good := tokens
			switch list {
			case "date", "endian", "anchor":
				good = rejectKinds(tokens, kindSeparator)
			case "arrow":
				good = rejectKinds(tokens, kindSeparatorAt, kindSeparatorSlashOrDash, kindSeparatorComma)
			}
			return ph.fn(r, good)
		}
	}
	return nil
}

func rejectKinds(tokens []*Token, kinds ...TagKind) []*Token {
	kept := make([]*Token, 0, len(tokens))
	for _, tok := range tokens {
		drop := false
		for _, k := range kinds {
			if tok.Has(k) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, tok)
		}
	}
	return kept
}
