package wizard

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/ipedrax/pitch-perfect/internal/prompt"
)

// backToken typed as an answer steps to the previous question.
const backToken = "/back"

// Run walks the questionnaire interactively and returns the collected
// answers plus the slide count for the requested length.
func Run() ([]prompt.Answer, int, error) {
	fmt.Println("Let's build your pitch deck. Answer a few questions; leave one blank to skip, type /back to revise.")
	fmt.Println()

	s := NewSession()
	for !s.Done() {
		q := s.Current()

		input := promptui.Prompt{
			Label:   q.Text,
			Default: "",
		}
		value, err := input.Run()
		if err != nil {
			return nil, 0, fmt.Errorf("question %s: %w", q.Key, err)
		}

		if value == backToken {
			s.Back()
			continue
		}
		s.Answer(value)
	}

	answers := s.Answers()
	count := SlideCount(s.Minutes())
	s.Close()

	return answers, count, nil
}
