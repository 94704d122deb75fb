package wizard

import (
	"strconv"
	"strings"

	"github.com/ipedrax/pitch-perfect/internal/prompt"
)

// DefaultMinutes is assumed when the length answer is blank or not a
// number.
const DefaultMinutes = 10

// Slide count bounds. Roughly two minutes of talking per slide.
const (
	minSlides       = 3
	maxSlides       = 20
	minutesPerSlide = 2
)

// Session is the questionnaire state machine. It moves forward one
// question at a time, supports stepping back to revise, and after Close
// retains no answers.
type Session struct {
	questions []Question
	answers   map[string]string
	idx       int
	closed    bool
}

// NewSession starts a questionnaire at the first question.
func NewSession() *Session {
	return &Session{
		questions: Questions(),
		answers:   make(map[string]string),
	}
}

// Current returns the question awaiting an answer, or nil when the
// questionnaire is finished or closed.
func (s *Session) Current() *Question {
	if s.closed || s.idx >= len(s.questions) {
		return nil
	}
	q := s.questions[s.idx]
	return &q
}

// Answer records a reply to the current question and advances. Blank
// replies are stored as the placeholder. Calls after the last question or
// after Close are ignored.
func (s *Session) Answer(value string) {
	if s.closed || s.idx >= len(s.questions) {
		return
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = Placeholder
	}
	s.answers[s.questions[s.idx].Key] = value
	s.idx++
}

// Back steps to the previous question so it can be answered again. At the
// first question it does nothing.
func (s *Session) Back() {
	if s.closed || s.idx == 0 {
		return
	}
	s.idx--
	delete(s.answers, s.questions[s.idx].Key)
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return !s.closed && s.idx >= len(s.questions)
}

// Answers returns the recorded question/answer pairs in questionnaire
// order. Unanswered questions carry the placeholder.
func (s *Session) Answers() []prompt.Answer {
	if s.closed {
		return nil
	}
	out := make([]prompt.Answer, 0, len(s.questions))
	for _, q := range s.questions {
		v, ok := s.answers[q.Key]
		if !ok {
			v = Placeholder
		}
		out = append(out, prompt.Answer{Key: q.Key, Question: q.Text, Value: v})
	}
	return out
}

// Minutes returns the requested presentation length, falling back to the
// default when the answer is missing or not a number.
func (s *Session) Minutes() int {
	raw, ok := s.answers[MinutesKey]
	if !ok {
		return DefaultMinutes
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(raw, "minutes")))
	if err != nil || n <= 0 {
		return DefaultMinutes
	}
	return n
}

// Close drops all recorded answers. The session is unusable afterwards.
func (s *Session) Close() {
	s.closed = true
	s.answers = nil
	s.idx = 0
}

// SlideCount converts a presentation length in minutes to a slide count,
// clamped to a range that still makes a coherent deck.
func SlideCount(minutes int) int {
	if minutes <= 0 {
		minutes = DefaultMinutes
	}
	n := minutes / minutesPerSlide
	if n < minSlides {
		n = minSlides
	}
	if n > maxSlides {
		n = maxSlides
	}
	return n
}
