package report

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	benefitsLinePattern = regexp.MustCompile(`(?i)Potential benefits\s*:?\s*\**\s*:?\s*(.+)`)
	concernsLinePattern = regexp.MustCompile(`(?i)Key concerns\s*:?\s*\**\s*:?\s*(.+)`)
)

// hopePhrases rewrites third-person analytical phrasing into first person
// when synthesizing a quote from a "Potential benefits" line.
var hopePhrases = []struct{ from, to string }{
	{"He hopes for", "I'm really hoping for"},
	{"She hopes for", "I'm really hoping for"},
	{"They hope for", "I'm really hoping for"},
	{"He hopes", "I'm really hoping"},
	{"She hopes", "I'm really hoping"},
	{"They hope", "I'm really hoping"},
	{"He would", "I would"},
	{"She would", "I would"},
	{"They would", "I would"},
	{"He sees", "I see"},
	{"She sees", "I see"},
	{"They see", "I see"},
}

// ReconcileQuotes cross-references a block's nested persona feedback
// against the persona map. Entries with no resolvable persona are skipped;
// resolved entries yield either the captured first-person quote verbatim or
// quotes synthesized from the benefits/concerns lines (both may be
// emitted for the same persona).
func ReconcileQuotes(block AnalysisBlock, personas PersonaMap) []Quote {
	var quotes []Quote
	for _, pf := range block.PersonaFeedback {
		persona, ok := ResolvePersona(pf.PersonaName, personas)
		if !ok {
			continue
		}
		if strings.TrimSpace(pf.Quote) != "" {
			quotes = append(quotes, personaQuote(persona, ensureQuoted(pf.Quote)))
			continue
		}
		for _, synthesized := range synthesizeQuotes(pf.Reaction) {
			quotes = append(quotes, personaQuote(persona, synthesized))
		}
	}
	return quotes
}

func personaQuote(p Persona, text string) Quote {
	return Quote{
		Name:               p.Name,
		Quote:              text,
		IsPersona:          true,
		Age:                p.Age,
		Role:               p.Role,
		Description:        p.Description,
		FullPersonaDetails: p.FullDetails(),
	}
}

// synthesizeQuotes template-fills first-person quotes from the analytical
// benefits and concerns lines of a reaction. Benefits produce one quote,
// concerns another.
func synthesizeQuotes(reaction string) []string {
	var out []string
	if m := benefitsLinePattern.FindStringSubmatch(reaction); m != nil {
		if text := firstPerson(m[1]); text != "" {
			out = append(out, ensureQuoted(text))
		}
	}
	if m := concernsLinePattern.FindStringSubmatch(reaction); m != nil {
		if text := strings.TrimSpace(trimBulletText(m[1])); text != "" {
			out = append(out, ensureQuoted("I'm concerned about "+lowerFirst(text)))
		}
	}
	return out
}

// firstPerson rewrites a benefits line into first-person phrasing.
func firstPerson(line string) string {
	text := strings.TrimSpace(trimBulletText(line))
	if text == "" {
		return ""
	}
	for _, ph := range hopePhrases {
		if strings.HasPrefix(text, ph.from) {
			return ph.to + strings.TrimPrefix(text, ph.from)
		}
	}
	return "I'm really hoping for " + lowerFirst(text)
}

func trimBulletText(s string) string {
	return strings.Trim(s, "*- \t")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func ensureQuoted(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) > 1 {
		return s
	}
	return `"` + strings.Trim(s, `"`) + `"`
}

// InsightQuotes synthesizes non-persona quotes from a scenario's own
// advantage and challenge bullets. Used when no persona quotes could be
// reconciled for a solution.
func InsightQuotes(section ScenarioSection) []Quote {
	var quotes []Quote
	for i, adv := range section.Advantages() {
		if i >= insightQuoteCap {
			break
		}
		quotes = append(quotes, Quote{Name: "Key Insight", Quote: adv, IsPersona: false})
	}
	for i, ch := range section.Challenges() {
		if i >= insightQuoteCap {
			break
		}
		quotes = append(quotes, Quote{Name: "Consideration", Quote: ch, IsPersona: false})
	}
	return quotes
}

// GenericQuote is the last-resort placeholder ensuring every solution
// carries at least one quote.
func GenericQuote(title string) Quote {
	return Quote{
		Name:      "Market Analysis",
		Quote:     fmt.Sprintf("%s offers significant market potential but requires careful implementation.", title),
		IsPersona: false,
	}
}
