package report

import (
	"strings"
	"testing"
)

var testPersonas = PersonaMap{
	"maria chen": {Name: "Maria Chen", Age: "34", Role: "Product Manager", Description: "Works at a SaaS company."},
}

func TestReconcileQuotesVerbatim(t *testing.T) {
	block := AnalysisBlock{
		PersonaFeedback: []PersonaFeedback{
			{PersonaName: "Maria Chen", Quote: "This would save my team hours every week."},
		},
	}
	quotes := ReconcileQuotes(block, testPersonas)
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
	q := quotes[0]
	if !q.IsPersona {
		t.Fatal("expected persona quote")
	}
	if q.Quote != `"This would save my team hours every week."` {
		t.Fatalf("unexpected quote text: %q", q.Quote)
	}
	if q.FullPersonaDetails != "Maria Chen, 34, Product Manager" {
		t.Fatalf("unexpected details: %q", q.FullPersonaDetails)
	}
	if q.Age != "34" || q.Role != "Product Manager" || q.Description == "" {
		t.Fatalf("persona fields not carried over: %+v", q)
	}
}

func TestReconcileQuotesSynthesized(t *testing.T) {
	block := AnalysisBlock{
		PersonaFeedback: []PersonaFeedback{
			{
				PersonaName: "Maria Chen",
				Reaction: `- Potential benefits: She hopes for faster onboarding.
- Key concerns: Integration effort.`,
			},
		},
	}
	quotes := ReconcileQuotes(block, testPersonas)
	if len(quotes) != 2 {
		t.Fatalf("expected benefit and concern quotes, got %+v", quotes)
	}
	if quotes[0].Quote != `"I'm really hoping for faster onboarding."` {
		t.Fatalf("unexpected benefit quote: %q", quotes[0].Quote)
	}
	if quotes[1].Quote != `"I'm concerned about integration effort."` {
		t.Fatalf("unexpected concern quote: %q", quotes[1].Quote)
	}
}

func TestReconcileQuotesFirstPersonRewrite(t *testing.T) {
	block := AnalysisBlock{
		PersonaFeedback: []PersonaFeedback{
			{PersonaName: "Maria Chen", Reaction: "Potential benefits: She sees real value in the partnership model."},
		},
	}
	quotes := ReconcileQuotes(block, testPersonas)
	if len(quotes) != 1 || quotes[0].Quote != `"I see real value in the partnership model."` {
		t.Fatalf("unexpected rewrite: %+v", quotes)
	}
}

func TestReconcileQuotesSkipsUnresolved(t *testing.T) {
	block := AnalysisBlock{
		PersonaFeedback: []PersonaFeedback{
			{PersonaName: "Nobody Known", Quote: "Should not appear."},
			{PersonaName: "Maria Chen", Quote: "Kept."},
		},
	}
	quotes := ReconcileQuotes(block, testPersonas)
	if len(quotes) != 1 || quotes[0].Name != "Maria Chen" {
		t.Fatalf("expected only the resolvable persona, got %+v", quotes)
	}
}

func TestInsightQuotesCapped(t *testing.T) {
	section := ScenarioSection{
		Title: "Direct Distribution Partnership",
		Body: `Solution 1: Direct Distribution Partnership
- Advantages:
  * Fast market access
  * Low upfront investment
  * Shared risk with partners
- Challenges:
  * Lower margins
`,
	}
	quotes := InsightQuotes(section)
	if len(quotes) != 3 {
		t.Fatalf("expected 2 insights + 1 consideration, got %+v", quotes)
	}
	if quotes[0].Name != "Key Insight" || quotes[0].IsPersona {
		t.Fatalf("unexpected insight quote: %+v", quotes[0])
	}
	if quotes[2].Name != "Consideration" || quotes[2].Quote != "Lower margins" {
		t.Fatalf("unexpected consideration quote: %+v", quotes[2])
	}
}

func TestGenericQuote(t *testing.T) {
	q := GenericQuote("Licensing Play")
	if q.IsPersona {
		t.Fatal("generic quote must not be a persona quote")
	}
	if q.Name != "Market Analysis" || !strings.HasPrefix(q.Quote, "Licensing Play offers") {
		t.Fatalf("unexpected generic quote: %+v", q)
	}
}
