// Package prompt builds the natural-language prompts sent to the model and
// parses its free-text replies back into slide fields. Parsing is best
// effort by design: each extractor is a fallback tier, and the deck parser
// guarantees at least one slide for any non-empty reply. Availability wins
// over correctness here.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ipedrax/pitch-perfect/internal/deck"
)

// Sentinel markers framing the structured sections of a model reply. These
// are the best-case format; the parsers degrade gracefully when the model
// ignores them.
const (
	styleOpen    = "===STYLE==="
	styleClose   = "===END_STYLE==="
	contentOpen  = "===CONTENT==="
	contentClose = "===END_CONTENT==="
)

// Improve builds the prompt asking the model to improve one slide.
func Improve(s *deck.Slide, themeNames []string) string {
	var b strings.Builder

	b.WriteString("You are a pitch-deck coach. Improve the slide below: sharpen the title, tighten the content into short bullet points, and pick the best visual theme.\n\n")
	fmt.Fprintf(&b, "Current title: %s\n", s.Title)
	fmt.Fprintf(&b, "Current content:\n%s\n\n", s.Content)
	if s.Notes != "" {
		fmt.Fprintf(&b, "Speaker notes:\n%s\n\n", s.Notes)
	}

	fmt.Fprintf(&b, "Available themes: %s\n\n", strings.Join(themeNames, ", "))

	b.WriteString("Reply in exactly this format:\n")
	b.WriteString(styleOpen + "\n")
	b.WriteString("THEME: <one theme name from the list>\n")
	b.WriteString(styleClose + "\n")
	b.WriteString(contentOpen + "\n")
	b.WriteString("TITLE: <improved title>\n")
	b.WriteString("CONTENT: <improved content, one bullet per line>\n")
	b.WriteString(contentClose + "\n")

	return b.String()
}

// Deck builds the prompt asking the model to generate a whole slide set
// from the questionnaire answers.
func Deck(answers []Answer, slideCount int, themeNames []string) string {
	var b strings.Builder

	b.WriteString("You are a pitch-deck writer. Create a startup pitch presentation from the founder's answers below.\n\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "%s: %s\n", a.Question, a.Value)
	}

	fmt.Fprintf(&b, "\nCreate exactly %d slides.\n", slideCount)
	fmt.Fprintf(&b, "Available themes: %s\n\n", strings.Join(themeNames, ", "))

	b.WriteString("Reply in exactly this format:\n")
	b.WriteString("SELECTED_THEME: <one theme name from the list>\n")
	for i := 1; i <= 2; i++ {
		fmt.Fprintf(&b, "SLIDE_%d_TITLE: <title>\n", i)
		fmt.Fprintf(&b, "SLIDE_%d_CONTENT: <content, one bullet per line>\n", i)
		fmt.Fprintf(&b, "SLIDE_%d_NOTES: <speaker notes>\n", i)
	}
	b.WriteString("... and so on for every slide.\n")

	return b.String()
}

// Answer pairs a questionnaire question with its recorded answer.
type Answer struct {
	Key      string
	Question string
	Value    string
}
