package report

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	analysisBlockPattern  = regexp.MustCompile(`(?s)\[SOLUTION_ANALYSIS_START\](.*?)\[SOLUTION_ANALYSIS_END\]`)
	personaFeedbackBlocks = regexp.MustCompile(`(?s)\[PERSONA_FEEDBACK_START\](.*?)\[PERSONA_FEEDBACK_END\]`)
	analysisTitlePattern  = regexp.MustCompile(`Analysis for Solution\s+\d+\s*:\s*(.+)`)
	firstPersonQuoteLine  = regexp.MustCompile(`\[First Person Quote\]\s*:\s*(.+)`)
	boldQuotedString      = regexp.MustCompile(`\*\*[^*]+\*\*\s*:?\s*"([^"]+)"`)
	boldLabelLine         = regexp.MustCompile(`\*\*\s*([^*]+?)\s*\*\*`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^---+\s*$`)
	personaFeedbackHead   = regexp.MustCompile(`(?i)Persona Feedback\s*:?`)
	overallAnalysisHead   = regexp.MustCompile(`(?i)Overall [Aa]nalysis\s*:?`)
	boldSubheadingSplit   = regexp.MustCompile(`(?m)^\s*(?:-\s*)?\*\*`)
)

// scoreFieldPatterns are independent probes, one per known score label.
// Each matches "<Label>: <integer>%" case-insensitively.
var scoreFieldPatterns = map[string]*regexp.Regexp{
	FieldFeasibility:     scorePattern(FieldFeasibility),
	FieldReturn:          scorePattern(FieldReturn),
	FieldRisk:            scorePattern(FieldRisk),
	FieldMarketReadiness: scorePattern(FieldMarketReadiness),
	FieldResourceReqs:    scorePattern(FieldResourceReqs),
}

func scorePattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*:?\s*\**\s*:?\s*(\d+)\s*%`)
}

// ExtractFeedbackBlocks parses the feedback document into ordered
// per-solution analysis blocks. The delimited [SOLUTION_ANALYSIS_START]
// format is tried first; when absent, the legacy heading/horizontal-rule
// format is parsed instead. Malformed input yields an empty slice.
func ExtractFeedbackBlocks(feedbackText string) []AnalysisBlock {
	if strings.TrimSpace(feedbackText) == "" {
		return nil
	}
	if matches := analysisBlockPattern.FindAllStringSubmatch(feedbackText, -1); len(matches) > 0 {
		blocks := make([]AnalysisBlock, 0, len(matches))
		for _, m := range matches {
			if b, ok := parseDelimitedBlock(m[1]); ok {
				blocks = append(blocks, b)
			}
		}
		return blocks
	}
	return parseLegacyBlocks(feedbackText)
}

// parseDelimitedBlock reads one delimited analysis block: header title,
// score probes, and nested persona feedback blocks.
func parseDelimitedBlock(body string) (AnalysisBlock, bool) {
	b := AnalysisBlock{Scores: probeScores(body), Body: body}
	if m := analysisTitlePattern.FindStringSubmatch(body); m != nil {
		b.Title = strings.Trim(m[1], "*: \t")
	}
	if b.Title == "" {
		return AnalysisBlock{}, false
	}
	for _, pm := range personaFeedbackBlocks.FindAllStringSubmatch(body, -1) {
		if pf, ok := parsePersonaFeedback(pm[1]); ok {
			b.PersonaFeedback = append(b.PersonaFeedback, pf)
		}
	}
	return b, true
}

// parsePersonaFeedback reads one nested [PERSONA_FEEDBACK] block. The
// persona name comes from the bold label line; the quote preferentially
// from the "[First Person Quote]:" line, else the first bold-labelled
// quoted string.
func parsePersonaFeedback(body string) (PersonaFeedback, bool) {
	pf := PersonaFeedback{Reaction: strings.TrimSpace(body)}
	if m := boldLabelLine.FindStringSubmatch(body); m != nil {
		pf.PersonaName = cleanPersonaName(m[1])
	}
	if pf.PersonaName == "" {
		return PersonaFeedback{}, false
	}
	if m := firstPersonQuoteLine.FindStringSubmatch(body); m != nil {
		pf.Quote = strings.Trim(strings.TrimSpace(m[1]), `"`)
	} else if m := boldQuotedString.FindStringSubmatch(body); m != nil {
		pf.Quote = strings.TrimSpace(m[1])
	}
	return pf, true
}

// parseLegacyBlocks handles the old non-delimited feedback layout:
// sections separated by "Analysis for Solution" headings or horizontal
// rules, persona feedback between a "Persona Feedback" heading and an
// "Overall Analysis" heading, split on bold sub-headings.
func parseLegacyBlocks(feedbackText string) []AnalysisBlock {
	var sections []string
	if locs := analysisTitlePattern.FindAllStringIndex(feedbackText, -1); len(locs) > 1 {
		for i, loc := range locs {
			end := len(feedbackText)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			sections = append(sections, feedbackText[loc[0]:end])
		}
	} else {
		sections = horizontalRulePattern.Split(feedbackText, -1)
	}

	var blocks []AnalysisBlock
	for _, section := range sections {
		m := analysisTitlePattern.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		b := AnalysisBlock{
			Title:           strings.Trim(m[1], "*: \t"),
			Scores:          probeScores(section),
			PersonaFeedback: parseLegacyPersonaFeedback(section),
			Body:            section,
		}
		if b.Title != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// parseLegacyPersonaFeedback slices the text between the "Persona
// Feedback" and "Overall Analysis" headings and splits it by bold
// sub-headings into per-persona segments.
func parseLegacyPersonaFeedback(section string) []PersonaFeedback {
	start := personaFeedbackHead.FindStringIndex(section)
	if start == nil {
		return nil
	}
	segment := section[start[1]:]
	if end := overallAnalysisHead.FindStringIndex(segment); end != nil {
		segment = segment[:end[0]]
	}

	var entries []PersonaFeedback
	for _, part := range boldSubheadingSplit.Split(segment, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// Reattach the bold opener the split consumed so the label
		// regexes see the original shape.
		if pf, ok := parsePersonaFeedback("**" + part); ok {
			entries = append(entries, pf)
		}
	}
	return entries
}

// FeedbackSectionFor locates the legacy-format section whose text contains
// the given solution title (case-insensitive substring). Used by the
// legacy quote-recovery path.
func FeedbackSectionFor(feedbackText, title string) (string, bool) {
	lt := strings.ToLower(strings.TrimSpace(title))
	if lt == "" {
		return "", false
	}
	for _, section := range horizontalRulePattern.Split(feedbackText, -1) {
		if strings.Contains(strings.ToLower(section), lt) {
			return section, true
		}
	}
	return "", false
}

// probeScores runs every known score-field probe against the text.
// Non-numeric or absent fields simply do not appear in the map.
func probeScores(body string) map[string]int {
	scores := map[string]int{}
	for label, pattern := range scoreFieldPatterns {
		m := pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		scores[label] = v
	}
	return scores
}

// ScoreProjection is the side-channel projection over the feedback
// document: derived feasibility/return per solution title, available
// before assembly.
func ScoreProjection(feedbackText string) map[string][2]int {
	out := map[string][2]int{}
	for _, b := range ExtractFeedbackBlocks(feedbackText) {
		feas, ret := DeriveScores(b.Scores)
		out[b.Title] = [2]int{feas, ret}
	}
	return out
}
