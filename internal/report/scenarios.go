package report

import (
	"regexp"
	"strings"
)

// NoDescription is the description used when a section carries no
// "- Description:" field.
const NoDescription = "No description available"

var (
	scenarioHeadingPattern = regexp.MustCompile(`(?m)^\s*\**(?:Solution|Strategy)\s+(\d+)\s*:\s*(.*)$`)
	descriptionPattern     = regexp.MustCompile(`(?s)-\s*Description:\s*(.*?)(?:\n\s*-\s*[A-Z]|\z)`)
	advantagesPattern      = regexp.MustCompile(`(?s)-\s*Advantages:\s*(.*?)(?:\n\s*-\s*[A-Z]|\z)`)
	challengesPattern      = regexp.MustCompile(`(?s)-\s*Challenges:\s*(.*?)(?:\n\s*-\s*[A-Z]|\z)`)
	bulletLinePattern      = regexp.MustCompile(`(?m)^\s*[-*•]\s+(.+)$`)
)

// ExtractScenarios parses the scenarios document into ordered title and
// description pairs. Sections start at "Solution <N>:" or "Strategy <N>:"
// headings (case-sensitive keyword, numeric index required). Malformed or
// empty input yields an empty slice, never an error.
func ExtractScenarios(scenariosText string) []ScenarioSection {
	if strings.TrimSpace(scenariosText) == "" {
		return nil
	}

	headings := scenarioHeadingPattern.FindAllStringSubmatchIndex(scenariosText, -1)
	sections := make([]ScenarioSection, 0, len(headings))
	for i, loc := range headings {
		title := strings.Trim(scenariosText[loc[4]:loc[5]], "*: \t")
		if title == "" {
			continue
		}
		end := len(scenariosText)
		if i+1 < len(headings) {
			end = headings[i+1][0]
		}
		body := scenariosText[loc[1]:end]
		sections = append(sections, ScenarioSection{
			Title:       title,
			Description: extractDescription(body),
			Body:        body,
		})
	}
	return sections
}

// extractDescription pulls the "- Description:" field, running until the
// next capitalized bullet field or end of text.
func extractDescription(body string) string {
	m := descriptionPattern.FindStringSubmatch(body)
	if m == nil {
		return NoDescription
	}
	desc := strings.TrimSpace(collapseWhitespace(m[1]))
	if desc == "" {
		return NoDescription
	}
	return desc
}

// Advantages returns the bulleted advantage list of the section, one entry
// per bullet line. An inline "- Advantages: a, b" value without sub-bullets
// is split on commas.
func (s ScenarioSection) Advantages() []string {
	return extractBulletField(s.Body, advantagesPattern)
}

// Challenges returns the bulleted challenge list of the section.
func (s ScenarioSection) Challenges() []string {
	return extractBulletField(s.Body, challengesPattern)
}

func extractBulletField(body string, pattern *regexp.Regexp) []string {
	m := pattern.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	segment := m[1]
	var items []string
	for _, bm := range bulletLinePattern.FindAllStringSubmatch(segment, -1) {
		if v := strings.TrimSpace(bm[1]); v != "" {
			items = append(items, v)
		}
	}
	if len(items) > 0 {
		return items
	}
	inline := strings.TrimSpace(collapseWhitespace(segment))
	if inline == "" {
		return nil
	}
	for _, part := range strings.Split(inline, ",") {
		if v := strings.TrimSpace(part); v != "" {
			items = append(items, v)
		}
	}
	return items
}

// ExtractSolutionTitles is the side-channel projection over the scenarios
// document: just the ordered titles, available as soon as the document is.
func ExtractSolutionTitles(scenariosText string) []string {
	sections := ExtractScenarios(scenariosText)
	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	return titles
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
