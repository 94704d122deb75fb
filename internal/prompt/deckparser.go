package prompt

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ParsedSlide is one slide extracted from a bulk generation reply.
type ParsedSlide struct {
	Title   string
	Content string
	Notes   string
}

// DeckResult is the outcome of parsing a slide-set reply. Theme is the raw
// SELECTED_THEME token, applied uniformly to all slides by the caller.
type DeckResult struct {
	Theme  string
	Slides []ParsedSlide
}

var (
	selectedThemeRe = regexp.MustCompile(`(?mi)^\s*SELECTED_THEME\s*:\s*(.+)$`)
	slideLabelRe    = regexp.MustCompile(`(?i)SLIDE[_ ](\d+)[_ ](TITLE|CONTENT|NOTES)\s*:`)

	// Fallback tier: numbered or markdown-style headers starting a slide.
	headerLineRe = regexp.MustCompile(`(?m)^\s*(?:#{1,3}\s+(.+)|(\d+)[.)]\s+(.+)|[Ss]lide\s+\d+\s*[-:]\s*(.+))$`)
)

// chunkSize is the last-resort split width for completely unstructured
// replies.
const chunkSize = 500

// ParseDeck extracts a slide set from a model reply. The cascade runs from
// the labeled SLIDE_n block format down to fixed-size text chunks, so any
// non-empty reply yields at least one slide. Empty input yields none.
func ParseDeck(text string) DeckResult {
	var res DeckResult
	source := strings.TrimSpace(text)

	if m := selectedThemeRe.FindStringSubmatch(text); m != nil {
		res.Theme = strings.TrimSpace(m[1])
		text = selectedThemeRe.ReplaceAllString(text, "")
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		// A reply carrying only a theme line is still a non-empty reply,
		// and those always yield at least one slide.
		if source != "" {
			res.Slides = []ParsedSlide{{Title: "Slide 1"}}
		}
		return res
	}

	res.Slides = parseLabeledSlides(trimmed)
	if len(res.Slides) > 0 {
		return res
	}

	res.Slides = parseHeaderSlides(trimmed)
	if len(res.Slides) > 0 {
		return res
	}

	res.Slides = parseChunkedSlides(trimmed)
	if len(res.Slides) > 0 {
		return res
	}

	// Last resort: hard character chunks. Low quality, but never empty.
	res.Slides = parseRawChunks(trimmed)
	return res
}

// parseLabeledSlides handles the primary SLIDE_n_TITLE/_CONTENT/_NOTES
// format. Slides are ordered by their number, not their position in the
// reply.
func parseLabeledSlides(text string) []ParsedSlide {
	matches := slideLabelRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	type fieldKey struct {
		n     int
		field string
	}
	fields := make(map[fieldKey]string)
	numbers := make(map[int]bool)

	for i, m := range matches {
		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		field := strings.ToUpper(text[m[4]:m[5]])

		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		value := strings.TrimSpace(text[m[1]:end])

		fields[fieldKey{n, field}] = value
		numbers[n] = true
	}

	ordered := make([]int, 0, len(numbers))
	for n := range numbers {
		ordered = append(ordered, n)
	}
	sort.Ints(ordered)

	var slides []ParsedSlide
	for _, n := range ordered {
		s := ParsedSlide{
			Title:   fields[fieldKey{n, "TITLE"}],
			Content: fields[fieldKey{n, "CONTENT"}],
			Notes:   fields[fieldKey{n, "NOTES"}],
		}
		if s.Title == "" && s.Content == "" {
			continue
		}
		if s.Title == "" {
			s.Title = fmt.Sprintf("Slide %d", n)
		}
		slides = append(slides, s)
	}
	return slides
}

// parseHeaderSlides splits on numbered or markdown-like headers.
func parseHeaderSlides(text string) []ParsedSlide {
	locs := headerLineRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var slides []ParsedSlide
	for i, loc := range locs {
		title := ""
		// One of the alternation groups captured the header text.
		for _, g := range []int{2, 6, 8} {
			if loc[g] >= 0 {
				title = strings.TrimSpace(text[loc[g]:loc[g+1]])
				break
			}
		}

		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		content := strings.TrimSpace(text[loc[1]:end])

		if title == "" && content == "" {
			continue
		}
		if title == "" {
			title = fmt.Sprintf("Slide %d", len(slides)+1)
		}
		slides = append(slides, ParsedSlide{Title: title, Content: content})
	}
	return slides
}

// parseChunkedSlides splits on blank lines, treating a short first line as
// the chunk's title.
func parseChunkedSlides(text string) []ParsedSlide {
	var slides []ParsedSlide
	for _, chunk := range regexp.MustCompile(`\n\s*\n`).Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		lines := strings.SplitN(chunk, "\n", 2)
		title := strings.TrimSpace(lines[0])
		content := ""
		if len(lines) > 1 {
			content = strings.TrimSpace(lines[1])
		}

		if len(title) > 80 {
			content = chunk
			title = fmt.Sprintf("Slide %d", len(slides)+1)
		}
		slides = append(slides, ParsedSlide{Title: title, Content: content})
	}
	return slides
}

// parseRawChunks cuts the raw text into fixed-size pieces.
func parseRawChunks(text string) []ParsedSlide {
	var slides []ParsedSlide
	runes := []rune(text)
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		slides = append(slides, ParsedSlide{
			Title:   fmt.Sprintf("Slide %d", len(slides)+1),
			Content: strings.TrimSpace(string(runes[start:end])),
		})
	}
	return slides
}
