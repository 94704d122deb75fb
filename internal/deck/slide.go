// Package deck holds the in-memory presentation model: slides, the ordered
// store with its cursor, and the session log.
package deck

import (
	"fmt"
	"sync/atomic"
	"time"
)

// TextStyle overrides a theme's font size and position for one text block.
type TextStyle struct {
	FontSize float64 `json:"fontSize,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// Slide is one authored deck page. Theme names a registry entry; the
// remaining style fields are optional per-slide overrides. Style is the
// legacy spelling of Theme kept for old deck files.
type Slide struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Notes   string `json:"notes,omitempty"`
	Theme   string `json:"theme,omitempty"`
	Style   string `json:"style,omitempty"`

	BackgroundColor string     `json:"backgroundColor,omitempty"`
	TextColor       string     `json:"textColor,omitempty"`
	AccentColor     string     `json:"accentColor,omitempty"`
	TitleStyle      *TextStyle `json:"titleStyle,omitempty"`
	ContentStyle    *TextStyle `json:"contentStyle,omitempty"`
	Decorations     []string   `json:"decorations,omitempty"`
}

// ThemeName returns the slide's theme, honoring the legacy style field.
func (s *Slide) ThemeName() string {
	if s.Theme != "" {
		return s.Theme
	}
	return s.Style
}

// Clone returns a copy of the slide with a fresh ID.
func (s *Slide) Clone() *Slide {
	dup := *s
	dup.ID = NewID()
	if s.TitleStyle != nil {
		ts := *s.TitleStyle
		dup.TitleStyle = &ts
	}
	if s.ContentStyle != nil {
		cs := *s.ContentStyle
		dup.ContentStyle = &cs
	}
	dup.Decorations = append([]string(nil), s.Decorations...)
	return &dup
}

// idSeq disambiguates IDs minted within the same millisecond.
var idSeq atomic.Int64

// NewID mints a timestamp-derived slide identifier. IDs are unique for the
// life of the process and never reused.
func NewID() string {
	return fmt.Sprintf("slide-%d-%d", time.Now().UnixMilli(), idSeq.Add(1))
}

// NewSlide creates a blank slide with the given theme.
func NewSlide(title, content, themeName string) *Slide {
	return &Slide{
		ID:      NewID(),
		Title:   title,
		Content: content,
		Theme:   themeName,
	}
}
