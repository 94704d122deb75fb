package prompt

import (
	"regexp"
	"strings"
)

// ImproveResult is the outcome of parsing an improve-slide reply. Fields
// the parser could not extract stay empty; callers must not assume any
// field is populated.
type ImproveResult struct {
	Title   string
	Content string
	// Theme is the raw theme token the model chose, unresolved. Callers
	// resolve it against the registry, which handles unknown names.
	Theme string
}

var (
	styleBlockRe   = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(styleOpen) + `(.*?)` + regexp.QuoteMeta(styleClose))
	contentBlockRe = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(contentOpen) + `(.*?)` + regexp.QuoteMeta(contentClose))

	// Labeled-line extractors, tolerant of the spelling variants models
	// actually produce.
	titleLineRe = regexp.MustCompile(`(?mi)^\s*(?:TITLE|SLIDE_TITLE|HEADING)\s*:\s*(.+)$`)
	themeLineRe = regexp.MustCompile(`(?mi)^\s*(?:THEME|STYLE)\s*:\s*(.+)$`)
	// Content runs from its label to the next label line or the end.
	contentLabelRe = regexp.MustCompile(`(?ism)^[ \t]*(?:CONTENT|BODY)[ \t]*:[ \t]*(.*)`)

	// stylingLineRe matches styling directives that leak into content.
	stylingLineRe = regexp.MustCompile(`(?i)^\s*(?:THEME|STYLE|TITLE|SLIDE_TITLE|HEADING|COLOR|BACKGROUND|FONT|ACCENT)\s*:`)

	quotedRe = regexp.MustCompile(`"([^"\n]{3,80})"`)
)

// ParseImprove extracts slide fields from a model reply using three
// fallback tiers: sentinel-delimited blocks, bare labeled lines, then
// plain-text heuristics.
func ParseImprove(text string) ImproveResult {
	var res ImproveResult

	styleMatch := styleBlockRe.FindStringSubmatch(text)
	contentMatch := contentBlockRe.FindStringSubmatch(text)

	if styleMatch != nil || contentMatch != nil {
		if styleMatch != nil {
			if m := themeLineRe.FindStringSubmatch(styleMatch[1]); m != nil {
				res.Theme = strings.TrimSpace(m[1])
			}
		}
		if contentMatch != nil {
			block := contentMatch[1]
			res.Title = firstMatch(titleLineRe, block)
			res.Content = extractContent(block)
			if res.Title == "" && res.Content == "" {
				// Block present but unlabeled; take it whole.
				res.Content = strings.TrimSpace(block)
			}
		}
		if res.Title != "" || res.Content != "" || res.Theme != "" {
			return res
		}
	}

	// Tier 2: labeled lines anywhere in the reply.
	res.Title = firstMatch(titleLineRe, text)
	res.Theme = firstMatch(themeLineRe, text)
	res.Content = extractContent(text)
	if res.Title != "" || res.Content != "" || res.Theme != "" {
		return res
	}

	// Tier 3: heuristics over unstructured prose.
	return heuristicImprove(text)
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractContent pulls the text after a content label and strips any
// styling directives that leaked into the capture.
func extractContent(text string) string {
	m := contentLabelRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(m[1], "\n") {
		if stylingLineRe.MatchString(line) {
			// A new label ends the content capture.
			break
		}
		if strings.Contains(line, styleOpen) || strings.Contains(line, contentClose) {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// heuristicImprove treats a quoted phrase or a short first line as the
// title and the remaining prose as content.
func heuristicImprove(text string) ImproveResult {
	var res ImproveResult

	if m := quotedRe.FindStringSubmatch(text); m != nil {
		res.Title = strings.TrimSpace(m[1])
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || stylingLineRe.MatchString(trimmed) {
			continue
		}
		lines = append(lines, trimmed)
	}
	if len(lines) == 0 {
		return res
	}

	if res.Title == "" && len(lines[0]) <= 60 {
		res.Title = lines[0]
		lines = lines[1:]
	}
	res.Content = strings.Join(lines, "\n")
	return res
}
