package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgoodwin/entrysim/internal/report"
	"github.com/rgoodwin/entrysim/internal/simulation"
)

// BuildMarkdown renders a simulation result as a human-readable markdown
// report: company profile, ranked solutions with scores and quotes, and a
// raw-document appendix for auditing the generated inputs.
func BuildMarkdown(result simulation.SimulationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market Entry Simulation Report\n\n")
	fmt.Fprintf(&b, "- Date: %s\n\n", time.Now().Format(time.RFC3339))

	fmt.Fprintf(&b, "## Company Profile\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(result.Input.CompanyInfo))
	fmt.Fprintf(&b, "## Market Challenge\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(result.Input.MarketChallenge))

	fmt.Fprintf(&b, "## Solutions\n\n")
	if len(result.Solutions) == 0 {
		fmt.Fprintf(&b, "No solutions could be assembled from the generated documents.\n\n")
	}
	for i, sol := range result.Solutions {
		label := report.LabelFor(i, len(result.Solutions))
		fmt.Fprintf(&b, "### %d. %s — %s\n\n", i+1, sanitize(sol.Title), label)
		fmt.Fprintf(&b, "%s\n\n", sanitize(sol.Description))
		fmt.Fprintf(&b, "| Metric | Score |\n|--------|-------|\n")
		fmt.Fprintf(&b, "| Feasibility | %d%% |\n", sol.Feasibility)
		fmt.Fprintf(&b, "| Return Potential | %d%% |\n", sol.Return)
		fmt.Fprintf(&b, "| Composite | %.1f |\n\n", sol.CompositeScore())

		fmt.Fprintf(&b, "**Feedback**\n\n")
		for _, q := range sol.FeedbackQuotes {
			attribution := sanitizeCell(q.Name)
			if q.IsPersona && strings.TrimSpace(q.FullPersonaDetails) != "" {
				attribution = sanitizeCell(q.FullPersonaDetails)
			}
			fmt.Fprintf(&b, "- %s — %s\n", sanitize(q.Quote), attribution)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "---\n\n")
	fmt.Fprintf(&b, "## Appendix: Generated Documents\n\n")
	appendRawSection(&b, "Scenarios", result.Scenarios)
	appendRawSection(&b, "Personas", result.Personas)
	appendRawSection(&b, "Persona Feedback", result.Feedback)
	return b.String()
}

func appendRawSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "### %s\n\n", title)
	body = strings.TrimSpace(body)
	if body == "" {
		fmt.Fprintf(b, "_Not generated._\n\n")
		return
	}
	fmt.Fprintf(b, "```\n%s\n```\n\n", strings.ReplaceAll(body, "```", "'''"))
}

func sanitize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

func sanitizeCell(s string) string {
	s = sanitize(s)
	return strings.ReplaceAll(s, "|", "\\|")
}
