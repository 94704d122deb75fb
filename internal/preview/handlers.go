package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

// slideView is one slide prepared for the HTML template.
type slideView struct {
	Index       int
	Title       string
	ContentHTML template.HTML
	Notes       string
	Theme       string
	Background  template.CSS
	TextColor   string
	AccentColor string
	Current     bool
}

type indexView struct {
	Count  int
	Slides []slideView
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	slides := s.store.Slides()
	current := s.store.CurrentIndex()

	views := make([]slideView, 0, len(slides))
	for i, sl := range slides {
		t := s.themes.Resolve(sl.ThemeName())

		var buf bytes.Buffer
		if err := s.md.Convert([]byte(sl.Content), &buf); err != nil {
			log.Printf("preview: markdown convert slide %d: %v", i, err)
			buf.Reset()
			buf.WriteString(template.HTMLEscapeString(sl.Content))
		}

		views = append(views, slideView{
			Index:       i + 1,
			Title:       sl.Title,
			ContentHTML: template.HTML(buf.String()),
			Notes:       sl.Notes,
			Theme:       t.Name,
			Background:  cssBackground(colorOr(sl.BackgroundColor, t.BackgroundColor)),
			TextColor:   colorOr(sl.TextColor, t.TextColor),
			AccentColor: colorOr(sl.AccentColor, t.AccentColor),
			Current:     i == current,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, indexView{Count: len(views), Slides: views}); err != nil {
		log.Printf("preview: render index: %v", err)
	}
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"slides":       s.store.Slides(),
		"currentIndex": s.store.CurrentIndex(),
	})
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	entries := s.sessionLog.Entries()
	if entries == nil {
		entries = []deck.LogEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("preview: write json: %v", err)
	}
}

func colorOr(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// cssBackground turns a theme background value into a CSS background
// declaration, expanding gradient sentinels into CSS gradients.
func cssBackground(value string) template.CSS {
	if !theme.IsGradient(value) {
		return template.CSS(value)
	}

	g, ok := theme.LookupGradient(value)
	if !ok {
		return template.CSS("#222222")
	}

	stops := make([]string, 0, len(g.Stops))
	for _, st := range g.Stops {
		stops = append(stops, fmt.Sprintf("%s %.0f%%", st.Color, st.Offset*100))
	}

	if g.Kind == theme.Radial {
		return template.CSS("radial-gradient(circle, " + strings.Join(stops, ", ") + ")")
	}
	// CSS angles run clockwise from the top; the recipes measure from the
	// right, counter-clockwise.
	return template.CSS(fmt.Sprintf("linear-gradient(%.0fdeg, %s)", 90-g.Angle, strings.Join(stops, ", ")))
}
