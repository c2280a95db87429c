package render

import (
	"strings"
	"testing"

	"github.com/rgoodwin/entrysim/internal/report"
	"github.com/rgoodwin/entrysim/internal/simulation"
)

func sampleResult() simulation.SimulationResult {
	return simulation.SimulationResult{
		Input: simulation.SimulationInput{
			CompanyInfo:     "B2B SaaS vendor",
			MarketChallenge: "Entering the EU market",
		},
		Scenarios: "Solution 1: Direct Distribution Partnership\n- Description: Partner up.",
		Personas:  "[PERSONA_START]\nMaria Chen\n[PERSONA_END]",
		Feedback:  "Analysis for Solution 1: Direct Distribution Partnership",
		Solutions: []report.Solution{
			{
				Title:       "Direct Distribution Partnership",
				Description: "Partner up.",
				Feasibility: 82,
				Return:      47,
				FeedbackQuotes: []report.Quote{
					{Name: "Maria Chen", Quote: `"Sign me up."`, IsPersona: true, FullPersonaDetails: "Maria Chen, 34, Product Manager"},
					{Name: "Key Insight", Quote: "Fast | market access", IsPersona: false},
				},
			},
			{
				Title:          "Digital-First Launch",
				Description:    "Go online.",
				Feasibility:    78,
				Return:         40,
				FeedbackQuotes: []report.Quote{{Name: "Market Analysis", Quote: "Generic.", IsPersona: false}},
			},
		},
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(sampleResult())

	for _, want := range []string{
		"# Market Entry Simulation Report",
		"## Company Profile",
		"B2B SaaS vendor",
		"## Market Challenge",
		"### 1. Direct Distribution Partnership — Recommended Solution",
		"### 2. Digital-First Launch — Least Risky Solution",
		"| Feasibility | 82% |",
		"| Return Potential | 47% |",
		`"Sign me up." — Maria Chen, 34, Product Manager`,
		"## Appendix: Generated Documents",
		"### Scenarios",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q\n%s", want, md)
		}
	}
	// Pipe characters inside attributions must not break markdown tables.
	if !strings.Contains(md, "Key Insight") {
		t.Fatalf("insight quote attribution missing\n%s", md)
	}
}

func TestBuildMarkdownEmptySolutions(t *testing.T) {
	result := sampleResult()
	result.Solutions = nil
	md := BuildMarkdown(result)
	if !strings.Contains(md, "No solutions could be assembled") {
		t.Fatalf("missing empty-state message\n%s", md)
	}
}

func TestBuildMarkdownMissingRawDocuments(t *testing.T) {
	result := sampleResult()
	result.Feedback = ""
	md := BuildMarkdown(result)
	if !strings.Contains(md, "_Not generated._") {
		t.Fatalf("missing placeholder for absent document\n%s", md)
	}
}

func TestBuildHTML(t *testing.T) {
	html, err := buildHTML("# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("buildHTML: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<table") {
		t.Fatalf("expected rendered heading and table:\n%s", html)
	}
}
