package chronic

import (
	"regexp"
	"strings"

	"github.com/musicmunky/chronic/numerizer"
)

// The rewrite order matters: later rules assume the output of earlier
// ones (numerization must not see "second of may", the timezone guard
// must run before dashes are padded, and so on).
var (
	stripChars      = regexp.MustCompile(`['".]`)
	secondOrdinal   = regexp.MustCompile(`\bsecond (of|day|month|hour|minute|second)\b`)
	negativeOffset  = regexp.MustCompile(`( )-(\d{4})\b`)
	padSeparators   = regexp.MustCompile(`([/\-,@])`)
	leadingZeroTime = regexp.MustCompile(`\b0(\d:\d{2} ?[ap]m)`)
	multiSpace      = regexp.MustCompile(`\s+`)
	compactA        = regexp.MustCompile(`\b(\d{1,2}(:\d{2})?)a\b`)
	compactP        = regexp.MustCompile(`\b(\d{1,2}(:\d{2})?)p\b`)
	meridianSpace   = regexp.MustCompile(`(\d)(am|pm|oclock)\b`)

	wordSubs = []struct {
		re  *regexp.Regexp
		sub string
	}{
		{regexp.MustCompile(`\btoday\b`), "this day"},
		{regexp.MustCompile(`\btomm?orr?ow\b`), "next day"},
		{regexp.MustCompile(`\byesterday\b`), "last day"},
		{regexp.MustCompile(`\bnoon\b`), "12:00"},
		{regexp.MustCompile(`\bmidnight\b`), "24:00"},
		{regexp.MustCompile(`\bbefore now\b`), "past"},
		{regexp.MustCompile(`\bnow\b`), "this second"},
		{regexp.MustCompile(`\b(ago|before)\b`), "past"},
		{regexp.MustCompile(`\bthis past\b`), "last"},
		{regexp.MustCompile(`\bthis last\b`), "last"},
		{regexp.MustCompile(`\b(?:in|during) the (morning)\b`), "$1"},
		{regexp.MustCompile(`\b(?:in the|during the|at) (afternoon|evening|night)\b`), "$1"},
		{regexp.MustCompile(`\btonight\b`), "this night"},
		{regexp.MustCompile(`\b(hence|after|from)\b`), "future"},
	}
)

// preNormalize rewrites raw input into the canonical lowercased form the
// taggers understand.
func preNormalize(text string) string {
	text = strings.ToLower(text)
	text = stripChars.ReplaceAllString(text, "")
	text = secondOrdinal.ReplaceAllString(text, "2nd $1")
	text = numerizer.Numerize(text)
	text = negativeOffset.ReplaceAllString(text, "${1}tzminus$2")
	text = padSeparators.ReplaceAllString(text, " $1 ")
	text = leadingZeroTime.ReplaceAllString(text, "$1")
	for _, ws := range wordSubs {
		text = ws.re.ReplaceAllString(text, ws.sub)
	}
	text = compactA.ReplaceAllString(text, "${1}am")
	text = compactP.ReplaceAllString(text, "${1}pm")
	text = meridianSpace.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}
