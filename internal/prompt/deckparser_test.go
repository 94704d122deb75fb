package prompt

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseDeckLabeledFormat(t *testing.T) {
	reply := `SELECTED_THEME: ocean-gradient
SLIDE_1_TITLE: The Problem
SLIDE_1_CONTENT: Decks take too long
Founders hate slides
SLIDE_1_NOTES: open with a story
SLIDE_2_TITLE: The Solution
SLIDE_2_CONTENT: One command, one deck
SLIDE_2_NOTES: demo here
SLIDE_3_TITLE: The Ask
SLIDE_3_CONTENT: Raising a seed round
SLIDE_3_NOTES: close strong`

	res := ParseDeck(reply)
	if res.Theme != "ocean-gradient" {
		t.Errorf("theme = %q", res.Theme)
	}
	if len(res.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(res.Slides))
	}

	wantTitles := []string{"The Problem", "The Solution", "The Ask"}
	for i, w := range wantTitles {
		if res.Slides[i].Title != w {
			t.Errorf("slide %d title = %q, want %q", i, res.Slides[i].Title, w)
		}
	}
	if res.Slides[0].Content != "Decks take too long\nFounders hate slides" {
		t.Errorf("slide 0 content = %q", res.Slides[0].Content)
	}
	if res.Slides[1].Notes != "demo here" {
		t.Errorf("slide 1 notes = %q", res.Slides[1].Notes)
	}
}

func TestParseDeckLabeledOutOfOrder(t *testing.T) {
	reply := `SLIDE_2_TITLE: Second
SLIDE_2_CONTENT: two
SLIDE_1_TITLE: First
SLIDE_1_CONTENT: one`

	res := ParseDeck(reply)
	if len(res.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(res.Slides))
	}
	if res.Slides[0].Title != "First" || res.Slides[1].Title != "Second" {
		t.Errorf("slides not ordered by number: %q, %q", res.Slides[0].Title, res.Slides[1].Title)
	}
}

func TestParseDeckLabeledMissingTitle(t *testing.T) {
	reply := "SLIDE_1_CONTENT: content without a title"

	res := ParseDeck(reply)
	if len(res.Slides) != 1 {
		t.Fatalf("got %d slides, want 1", len(res.Slides))
	}
	if res.Slides[0].Title != "Slide 1" {
		t.Errorf("title = %q, want placeholder", res.Slides[0].Title)
	}
}

func TestParseDeckMarkdownHeaders(t *testing.T) {
	reply := `# Introduction
Welcome to the pitch.

# The Market
It is enormous.

# Thank You
Questions welcome.`

	res := ParseDeck(reply)
	if len(res.Slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(res.Slides))
	}
	if res.Slides[0].Title != "Introduction" {
		t.Errorf("title = %q", res.Slides[0].Title)
	}
	if !strings.Contains(res.Slides[1].Content, "enormous") {
		t.Errorf("content = %q", res.Slides[1].Content)
	}
}

func TestParseDeckNumberedHeaders(t *testing.T) {
	reply := `1. Opening
Who we are.

2. Product
What we built.`

	res := ParseDeck(reply)
	if len(res.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(res.Slides))
	}
	if res.Slides[0].Title != "Opening" || res.Slides[1].Title != "Product" {
		t.Errorf("titles = %q, %q", res.Slides[0].Title, res.Slides[1].Title)
	}
}

func TestParseDeckBlankLineChunks(t *testing.T) {
	reply := `Our team has shipped before
Three exits between the founders.

The product is live today
Two hundred paying customers.`

	res := ParseDeck(reply)
	if len(res.Slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(res.Slides))
	}
	if res.Slides[0].Title != "Our team has shipped before" {
		t.Errorf("title = %q", res.Slides[0].Title)
	}
}

func TestParseDeckUnstructuredProseNeverEmpty(t *testing.T) {
	reply := strings.Repeat("an unbroken stream of words without structure ", 40)
	res := ParseDeck(reply)
	if len(res.Slides) == 0 {
		t.Fatal("non-empty input must yield at least one slide")
	}
	for i, s := range res.Slides {
		if s.Content == "" {
			t.Errorf("chunk slide %d has empty content", i)
		}
	}
}

func TestParseDeckEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   \n\t\n"} {
		if res := ParseDeck(in); len(res.Slides) != 0 {
			t.Errorf("ParseDeck(%q) = %d slides, want 0", in, len(res.Slides))
		}
	}
}

func TestParseDeckThemeOnlyStillYieldsSlide(t *testing.T) {
	res := ParseDeck("SELECTED_THEME: minimal-clean\n")
	if res.Theme != "minimal-clean" {
		t.Errorf("theme = %q", res.Theme)
	}
	if len(res.Slides) == 0 {
		t.Fatal("got 0 slides, want at least 1")
	}
	if res.Slides[0].Title != "Slide 1" {
		t.Errorf("title = %q, want %q", res.Slides[0].Title, "Slide 1")
	}
}

func TestParseDeckLargeLabeledSet(t *testing.T) {
	var b strings.Builder
	b.WriteString("SELECTED_THEME: tech-circuit\n")
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&b, "SLIDE_%d_TITLE: Title %d\n", i, i)
		fmt.Fprintf(&b, "SLIDE_%d_CONTENT: Content %d\n", i, i)
		fmt.Fprintf(&b, "SLIDE_%d_NOTES: Notes %d\n", i, i)
	}

	res := ParseDeck(b.String())
	if len(res.Slides) != 12 {
		t.Fatalf("got %d slides, want 12", len(res.Slides))
	}
	for i, s := range res.Slides {
		n := i + 1
		if s.Title != fmt.Sprintf("Title %d", n) || s.Content != fmt.Sprintf("Content %d", n) || s.Notes != fmt.Sprintf("Notes %d", n) {
			t.Errorf("slide %d fields wrong: %+v", i, s)
		}
	}
}
