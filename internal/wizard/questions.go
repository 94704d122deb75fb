// Package wizard drives the questionnaire that collects the founder's
// answers before a deck is generated.
package wizard

// Question is a single questionnaire step.
type Question struct {
	Key  string
	Text string
}

// Placeholder is recorded for questions the user skipped, so the
// generation prompt shows the gap instead of an empty line.
const Placeholder = "(not provided)"

// MinutesKey identifies the presentation-length question; its answer
// drives the slide count.
const MinutesKey = "minutes"

// Questions returns the questionnaire steps in presentation order.
func Questions() []Question {
	return []Question{
		{Key: "problem", Text: "What problem are you solving, and how did you validate it?"},
		{Key: "solution", Text: "What is your solution, and what data supports it?"},
		{Key: "mvp", Text: "What does your MVP look like today?"},
		{Key: "validation", Text: "How have customers validated the solution so far?"},
		{Key: "market", Text: "Who is your market, and how large is it?"},
		{Key: MinutesKey, Text: "How many minutes will the presentation run?"},
	}
}
