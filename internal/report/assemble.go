package report

import "sort"

// SolutionLabel names the display role of a solution by its rank position.
type SolutionLabel string

const (
	LabelRecommended SolutionLabel = "Recommended Solution"
	LabelLeastRisky  SolutionLabel = "Least Risky Solution"
	LabelWildcard    SolutionLabel = "Wildcard Solution"
	LabelAlternative SolutionLabel = "Alternative Solution"
)

// LabelFor assigns the display label for the solution at index within a
// ranked list of total entries: the top solution is Recommended, the
// runner-up (or the second of two) is Least Risky, and the last of three
// or more is the Wildcard.
func LabelFor(index, total int) SolutionLabel {
	switch {
	case index == 0:
		return LabelRecommended
	case index == 1 || (index > 0 && total == 2):
		return LabelLeastRisky
	case index == total-1 && index > 1:
		return LabelWildcard
	default:
		return LabelAlternative
	}
}

// Assemble merges the three extraction outputs into a ranked solution
// list. Each feedback block is joined to a scenario by title through the
// prioritized matcher chain, scored through the fallback chains, and
// given at least one quote. The result is stably sorted descending by
// composite score and truncated to MaxSolutions. Fewer than MaxSolutions
// inputs return all of them; zero joinable blocks return an empty list.
func Assemble(scenarios []ScenarioSection, blocks []AnalysisBlock, personas PersonaMap) []Solution {
	solutions := make([]Solution, 0, len(blocks))
	for _, block := range blocks {
		sol := Solution{
			Title:       block.Title,
			Description: NoDescription,
		}
		var matched *ScenarioSection
		if i := matchTitle(block.Title, scenarios); i >= 0 {
			matched = &scenarios[i]
			sol.Title = matched.Title
			sol.Description = matched.Description
		}
		sol.Feasibility, sol.Return = DeriveScores(block.Scores)
		sol.FeedbackQuotes = ReconcileQuotes(block, personas)
		if len(sol.FeedbackQuotes) == 0 && matched != nil {
			sol.FeedbackQuotes = InsightQuotes(*matched)
		}
		if len(sol.FeedbackQuotes) == 0 {
			sol.FeedbackQuotes = []Quote{GenericQuote(sol.Title)}
		}
		solutions = append(solutions, sol)
	}

	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].CompositeScore() > solutions[j].CompositeScore()
	})
	if len(solutions) > MaxSolutions {
		solutions = solutions[:MaxSolutions]
	}
	return solutions
}

// Parse runs the full three-document reconciliation: personas first (the
// quote reconciler consumes them), then scenarios and feedback blocks,
// then assembly. Empty or malformed documents degrade to an empty result.
func Parse(scenariosText, personasText, feedbackText string) []Solution {
	personas := ExtractPersonas(personasText)
	scenarios := ExtractScenarios(scenariosText)
	blocks := ExtractFeedbackBlocks(feedbackText)
	return Assemble(scenarios, blocks, personas)
}
