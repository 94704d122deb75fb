// Package generator turns model completions into slide content. It owns
// the round trip: build the prompt, call the provider, parse the reply,
// and log both sides of the exchange.
package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/llm"
	"github.com/ipedrax/pitch-perfect/internal/prompt"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

// Reporter receives progress feedback while a slide set is generated.
// The progress package's reporters satisfy it.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// Generator produces and improves slides through a chat backend.
type Generator struct {
	provider llm.Provider
	themes   *theme.Registry
	log      *deck.SessionLog
	reporter Reporter
}

// New creates a generator. The session log may be nil when no diagnostic
// view is attached.
func New(provider llm.Provider, themes *theme.Registry, sessionLog *deck.SessionLog) *Generator {
	if sessionLog == nil {
		sessionLog = deck.NewSessionLog()
	}
	return &Generator{provider: provider, themes: themes, log: sessionLog}
}

// Log exposes the session log for the preview server.
func (g *Generator) Log() *deck.SessionLog { return g.log }

// SetReporter attaches progress feedback to deck generation. A nil
// reporter disables it.
func (g *Generator) SetReporter(r Reporter) { g.reporter = r }

// ImproveSlide asks the model to rework one slide and returns an improved
// copy. The input slide is not modified. Fields the model did not supply
// keep their current values, so a thin reply never wipes a slide.
func (g *Generator) ImproveSlide(ctx context.Context, s *deck.Slide, index int) (*deck.Slide, error) {
	p := prompt.Improve(s, g.themes.Names())
	g.log.Append(deck.RoleUser, p, index, s.Title)

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: p}},
	})
	if err != nil {
		g.log.Append(deck.RoleSystem, fmt.Sprintf("improve failed: %v", err), index, s.Title)
		return nil, fmt.Errorf("improve slide: %w", err)
	}
	g.log.Append(deck.RoleAI, resp.Content, index, s.Title)

	parsed := prompt.ParseImprove(resp.Content)

	out := s.Clone()
	if parsed.Title != "" {
		out.Title = parsed.Title
	}
	if parsed.Content != "" {
		out.Content = parsed.Content
	}
	if parsed.Theme != "" {
		out.Theme = g.themes.Resolve(parsed.Theme).Name
	}
	return out, nil
}

// GenerateDeck asks the model for a full slide set from the questionnaire
// answers. All slides carry the model's chosen theme, resolved against the
// registry. The model may return fewer or more slides than requested; the
// reply wins.
func (g *Generator) GenerateDeck(ctx context.Context, answers []prompt.Answer, slideCount int) ([]*deck.Slide, error) {
	p := prompt.Deck(answers, slideCount, g.themes.Names())
	g.log.Append(deck.RoleUser, p, -1, "")

	if g.reporter != nil {
		g.reporter.Start(slideCount)
		g.reporter.Update(0, "waiting for the model")
		defer g.reporter.Finish()
	}

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: p}},
	})
	if err != nil {
		g.log.Append(deck.RoleSystem, fmt.Sprintf("generation failed: %v", err), -1, "")
		return nil, fmt.Errorf("generate deck: %w", err)
	}
	g.log.Append(deck.RoleAI, resp.Content, -1, "")

	parsed := prompt.ParseDeck(resp.Content)
	if len(parsed.Slides) == 0 {
		return nil, fmt.Errorf("generate deck: model reply contained no slides")
	}

	themeName := g.themes.Resolve(parsed.Theme).Name
	if parsed.Theme != "" && themeName != parsed.Theme {
		log.Printf("generator: theme %q not in catalog, using %q", parsed.Theme, themeName)
	}

	slides := make([]*deck.Slide, 0, len(parsed.Slides))
	for i, ps := range parsed.Slides {
		s := deck.NewSlide(ps.Title, ps.Content, themeName)
		s.Notes = ps.Notes
		slides = append(slides, s)
		if g.reporter != nil {
			// The model may return more slides than asked for.
			g.reporter.Update(min(i+1, slideCount), ps.Title)
		}
	}
	return slides, nil
}
