package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileObjectForm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	content := `{
  "title": "Pitch",
  "slides": [
    {"id": "slide-1", "title": "Intro", "content": "hello", "theme": "minimal-clean"},
    {"title": "No ID", "content": "gets one"}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Title != "Pitch" || len(f.Slides) != 2 {
		t.Fatalf("unexpected deck %+v", f)
	}
	if f.Slides[0].ID != "slide-1" {
		t.Errorf("existing ID must be kept, got %q", f.Slides[0].ID)
	}
	if f.Slides[1].ID == "" {
		t.Error("missing ID must be assigned")
	}
}

func TestLoadFileBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte(`[{"title":"Only","content":"x"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(f.Slides) != 1 || f.Slides[0].Title != "Only" {
		t.Errorf("unexpected deck %+v", f)
	}
}

func TestLoadFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := NewStore()
	st.Add(NewSlide("one", "first body", "corporate-navy"))
	st.Add(NewSlide("two", "second body", ""))

	path := filepath.Join(t.TempDir(), "deck.json")
	if err := SaveFile(path, "Roundtrip", st); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Title != "Roundtrip" || len(f.Slides) != 2 {
		t.Fatalf("unexpected deck %+v", f)
	}
	if f.Slides[0].Theme != "corporate-navy" {
		t.Errorf("theme lost in round trip: %+v", f.Slides[0])
	}
}
