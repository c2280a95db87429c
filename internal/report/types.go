package report

import "strings"

const (
	// Product-tuned score defaults used when a feedback block carries no
	// derivable value. These are historical behavior, not placeholders.
	DefaultFeasibility = 75
	DefaultReturn      = 65

	// Blend weights for the score fallback chains.
	marketReadinessWeight = 0.4
	riskFeasibilityWeight = 0.6
	returnBaseWeight      = 0.7
	returnRiskWeight      = 0.3

	// Bounds applied to the risk-adjusted return variant.
	minAdjustedReturn = 35
	maxAdjustedReturn = 95

	// MaxSolutions caps the assembled result list.
	MaxSolutions = 3

	feasibilityRankWeight = 0.5
	returnRankWeight      = 0.5

	insightQuoteCap = 2
)

// Score field labels probed in feedback blocks.
const (
	FieldFeasibility     = "Feasibility Score"
	FieldReturn          = "Return Score"
	FieldRisk            = "Risk Score"
	FieldMarketReadiness = "Market readiness"
	FieldResourceReqs    = "Resource requirements"
)

// Persona is one synthesized market stakeholder parsed from the personas
// document. Immutable after extraction; looked up by lower-cased name.
type Persona struct {
	Name        string `json:"name"`
	Age         string `json:"age,omitempty"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// FullDetails renders the display label "name[, age][, role]".
func (p Persona) FullDetails() string {
	parts := []string{p.Name}
	if strings.TrimSpace(p.Age) != "" {
		parts = append(parts, strings.TrimSpace(p.Age))
	}
	if strings.TrimSpace(p.Role) != "" {
		parts = append(parts, strings.TrimSpace(p.Role))
	}
	return strings.Join(parts, ", ")
}

// PersonaMap keys personas by lower-cased name. Duplicate names overwrite
// (last write wins).
type PersonaMap map[string]Persona

// Quote is a real or synthesized statement attached to a solution.
// IsPersona distinguishes persona speech from analytical insights.
type Quote struct {
	Name               string `json:"name"`
	Quote              string `json:"quote"`
	IsPersona          bool   `json:"isPersona"`
	Age                string `json:"age,omitempty"`
	Role               string `json:"role,omitempty"`
	Description        string `json:"description,omitempty"`
	FullPersonaDetails string `json:"fullPersonaDetails,omitempty"`
}

// Solution is one assembled market-entry strategy. Feasibility and Return
// are always populated; FeedbackQuotes is never empty.
type Solution struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Feasibility    int     `json:"feasibility"`
	Return         int     `json:"return"`
	FeedbackQuotes []Quote `json:"feedbackQuotes"`
}

// CompositeScore is the ranking key: feasibility*0.5 + return*0.5.
func (s Solution) CompositeScore() float64 {
	return float64(s.Feasibility)*feasibilityRankWeight + float64(s.Return)*returnRankWeight
}

// ScenarioSection is one parsed solution/strategy section from the
// scenarios document. Body retains the full section text so advantage and
// challenge bullets can be mined later.
type ScenarioSection struct {
	Title       string
	Description string
	Body        string
}

// PersonaFeedback is one nested persona reaction inside an analysis block.
// Quote is empty when no first-person quote line was found.
type PersonaFeedback struct {
	PersonaName string
	Reaction    string
	Quote       string
}

// AnalysisBlock is the per-solution slice of the feedback document.
type AnalysisBlock struct {
	Title           string
	Scores          map[string]int
	PersonaFeedback []PersonaFeedback
	Body            string
}
