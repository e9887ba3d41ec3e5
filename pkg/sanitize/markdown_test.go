package sanitize_test

import (
	"testing"

	"rental-support-chatbot/pkg/sanitize"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "bold and italic", in: "**Hello** *world*", want: "Hello world"},
		{name: "blank line runs", in: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "two newlines kept", in: "a\n\nb", want: "a\n\nb"},
		{name: "bullets", in: "Payment modes:\n* Cash\n  * UPI\n*Cards", want: "Payment modes:\nCash\nUPI\nCards"},
		{name: "bold inside bullet", in: "* **Free** cancellation", want: "Free cancellation"},
		{name: "triple star", in: "***wow***", want: "wow"},
		{name: "surrounding whitespace", in: "  \n hi there \n\n", want: "hi there"},
		{name: "bold does not span lines", in: "**a\nb**", want: "a\nb"},
		{name: "no markers", in: "It costs 500 rupees per day.", want: "It costs 500 rupees per day."},
		{name: "lone star mid line", in: "5 * 3", want: "5 * 3"},
		{name: "bullet after blank line keeps the blank line", in: "a\n\n* b", want: "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.Markdown(tt.in); got != tt.want {
				t.Errorf("Markdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMarkdownIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"**Hello** *world*",
		"a\n\n\n\nb",
		"* \n *y",
		" *x",
		"***a***",
		"a * b * c *",
		"*\n*\n*",
		"x\n\n*\n\n\ny",
		"**bold *nested* text**",
		"* item one\n* item two\n\n\n\n* item three",
		"****",
		"\t*\t*\t",
	}

	for _, in := range inputs {
		once := sanitize.Markdown(in)
		twice := sanitize.Markdown(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func FuzzMarkdownIdempotent(f *testing.F) {
	f.Add("**Hello** *world*")
	f.Add("* a\n\n\n* b")
	f.Add("* \n *y")
	f.Fuzz(func(t *testing.T, in string) {
		once := sanitize.Markdown(in)
		if twice := sanitize.Markdown(once); twice != once {
			t.Errorf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	})
}
