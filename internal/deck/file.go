package deck

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the on-disk deck shape.
type File struct {
	Title  string   `json:"title,omitempty"`
	Theme  string   `json:"theme,omitempty"`
	Slides []*Slide `json:"slides"`
}

// LoadFile reads a deck JSON file. Both the object form {"slides": [...]}
// and a bare slide array are accepted; old exports used either. Slides
// missing an ID get a fresh one.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		var slides []*Slide
		if arrErr := json.Unmarshal(data, &slides); arrErr != nil {
			return nil, fmt.Errorf("parsing deck %s: %w", path, err)
		}
		f = File{Slides: slides}
	}

	for _, s := range f.Slides {
		if s.ID == "" {
			s.ID = NewID()
		}
	}
	return &f, nil
}

// SaveFile writes the store's slides to a deck JSON file.
func SaveFile(path string, title string, st *Store) error {
	f := File{Title: title, Slides: st.Slides()}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling deck: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing deck %s: %w", path, err)
	}
	return nil
}
