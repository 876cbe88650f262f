// Package chronic parses short natural-language English date and time
// expressions ("tomorrow at 7pm", "3 weeks from now", "3rd wednesday in
// november") into absolute instants or half-open spans, relative to a
// caller-supplied reference instant.
package chronic

import (
	"log/slog"
	"time"

	"github.com/musicmunky/chronic/internal/observability"
)

// Parser runs the parse pipeline with a fixed set of validated options.
// It is safe for concurrent use: all per-parse state is local to a call.
type Parser struct {
	opts   *Options
	logger *slog.Logger
}

// New validates opts and returns a parser. A nil opts means defaults.
func New(opts *Options) (*Parser, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Parser{opts: opts.clone()}, nil
}

// WithLogger directs the debug trace to logger.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	return &Parser{opts: p.opts, logger: logger}
}

// Parse resolves text to a span. The boolean reports whether any grammar
// pattern matched; a failed parse is never an error.
func (p *Parser) Parse(text string) (Span, bool) {
	span := p.parse(text)
	if span == nil {
		return Span{}, false
	}
	return *span, true
}

// Guess resolves text to a single instant: the span beginning for unit
// spans, the midpoint otherwise.
func (p *Parser) Guess(text string) (time.Time, bool) {
	span := p.parse(text)
	if span == nil {
		return time.Time{}, false
	}
	return span.Guess(), true
}

func (p *Parser) parse(text string) *Span {
	trace := observability.NewTrace(p.logger, p.opts.Debug)
	r := &run{
		opts:  p.opts,
		now:   p.opts.referenceTime(),
		trace: trace,
	}

	normalized := preNormalize(text)
	trace.Stage("normalize", "input", text, "output", normalized)

	tokens := tokenize(normalized)
	trace.Stage("tokenize", "count", len(tokens))

	scanRepeaters(tokens)
	scanGrabbers(tokens)
	scanPointers(tokens)
	scanScalars(tokens, p.opts, refYear{year: r.now.Year()})
	scanOrdinals(tokens)
	scanSeparators(tokens)
	scanTimeZones(tokens)

	tagged := tokens[:0:0]
	for _, tok := range tokens {
		if tok.Tagged() {
			tagged = append(tagged, tok)
		}
	}
	if trace.Enabled() {
		words := make([]string, 0, len(tagged))
		for _, tok := range tagged {
			words = append(words, tok.String())
		}
		trace.Stage("tag", "tokens", words)
	}

	span := r.tokensToSpan(tagged)
	if span != nil {
		trace.Stage("span", "begin", span.Begin, "end", span.End)
	} else {
		trace.Stage("span", "matched", false)
	}
	return span
}

// Parse is the package-level convenience form. Nil opts means defaults.
func Parse(text string, opts *Options) (Span, bool, error) {
	p, err := New(opts)
	if err != nil {
		return Span{}, false, err
	}
	span, ok := p.Parse(text)
	return span, ok, nil
}

// Guess is the package-level instant form. Nil opts means defaults.
func Guess(text string, opts *Options) (time.Time, bool, error) {
	p, err := New(opts)
	if err != nil {
		return time.Time{}, false, err
	}
	t, ok := p.Guess(text)
	return t, ok, nil
}
