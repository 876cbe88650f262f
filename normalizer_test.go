package chronic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreNormalize_Rewrites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "TODAY", "this day"},
		{"today", "today", "this day"},
		{"tomorrow", "tomorrow", "next day"},
		{"tomorrow misspelled", "tommorrow", "next day"},
		{"tomorrow misspelled again", "tomorow", "next day"},
		{"yesterday", "yesterday", "last day"},
		{"noon", "noon", "12:00"},
		{"midnight", "midnight", "24:00"},
		{"now", "now", "this second"},
		{"before now", "before now", "past"},
		{"ago", "3 weeks ago", "3 weeks past"},
		{"from", "3 weeks from now", "3 weeks future this second"},
		{"this past", "this past monday", "last monday"},
		{"in the morning", "5:00 in the morning", "5:00 morning"},
		{"at night", "tomorrow at night", "next day night"},
		{"tonight", "tonight", "this night"},
		{"strip quotes and periods", `jan. 3rd "2010"`, "jan 3rd 2010"},
		{"pad slashes", "3/4/2011", "3 / 4 / 2011"},
		{"pad at sign", "3pm@work", "3 pm @ work"},
		{"second of", "second of may", "2nd of may"},
		{"meridian space", "5pm", "5 pm"},
		{"compact a", "5:30a", "5:30 am"},
		{"compact p", "8p", "8 pm"},
		{"leading zero time", "04:30 pm", "4:30 pm"},
		{"negative offset", "5:00 pm -0500", "5:00 pm tzminus0500"},
		{"number words", "twenty seven days ago", "27 days past"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preNormalize(tt.input))
		})
	}
}

func TestPreNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"tomorrow at 7pm",
		"yesterday at 4:00",
		"3 weeks from now",
		"3rd wednesday in november",
		"03/04/2011",
		"noon",
		"midnight",
		"this past monday",
		"twenty seven days ago",
		"5:00 in the morning",
	}
	for _, input := range inputs {
		once := preNormalize(input)
		assert.Equal(t, once, preNormalize(once), "normalization of %q is not idempotent", input)
	}
}
