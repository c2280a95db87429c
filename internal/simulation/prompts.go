package simulation

import "fmt"

// System prompts for the three generation stages. Each stage speaks as a
// different expert so the three documents read distinctly.
const (
	scenarioSystemPrompt = "You are a strategic business consultant specializing in market entry strategies. Provide detailed, practical scenarios that consider both opportunities and risks."
	personaSystemPrompt  = "You are a market research expert specializing in user personas. Create detailed, realistic personas that represent different market segments."
	feedbackSystemPrompt = "You are a market research expert analyzing how different personas would react to business scenarios. Provide detailed, realistic feedback."
)

// ScenariosPrompt asks for three market entry approaches in the section
// layout the extraction layer parses.
func ScenariosPrompt(input SimulationInput) string {
	return fmt.Sprintf(`Based on the following company information and market challenge, generate 3 different business scenarios for market entry. Each scenario should represent a distinct approach to entering the market.

Company Information:
%s

Market Challenge:
%s

Generate 3 different scenarios that include:
1. A unique title and description
2. Key advantages of this approach
3. Potential challenges or risks
4. Estimated timeline for implementation
5. Required resources or investments

Format each scenario exactly like this:

Solution 1: [Title]
- Description: [2-3 sentence description]
- Advantages:
  * [advantage]
  * [advantage]
- Challenges:
  * [challenge]
  * [challenge]
- Timeline: [estimate]
- Resources: [comma-separated list]

IMPORTANT: Start each scenario heading with "Solution <number>: " and keep the bulleted field labels exactly as shown. Focus on providing clear, detailed scenarios without any JSON formatting.`,
		input.CompanyInfo, input.MarketChallenge)
}

// PersonasPrompt asks for delimited persona blocks with the Basic
// Information and Background lines the extraction layer depends on.
func PersonasPrompt(input SimulationInput) string {
	return fmt.Sprintf(`Based on the following company information and market challenge, generate 6 detailed market personas. Include 3 personas from the current target audience and 3 from potential new audiences.

Company Information:
%s

Market Challenge:
%s

Generate 6 personas that include:
1. Basic information (name, age, occupation)
2. Background and context
3. Key characteristics
4. Goals and objectives
5. Pain points and challenges
6. Market segment (Early Adopter or Mainstream)

Format each persona exactly like this:

[PERSONA_START]
[Name] ([Market segment])
Basic Information: [Name], [Age], [Occupation]
Background and Context: [2-3 sentences about their situation]
Key Characteristics:
  * [characteristic]
  * [characteristic]
Goals: [comma-separated list]
Pain Points: [comma-separated list]
[PERSONA_END]

IMPORTANT: Wrap every persona in the [PERSONA_START] and [PERSONA_END] markers and keep the "Basic Information:" and "Background and Context:" labels exactly as shown. Focus on providing clear, detailed personas without any JSON formatting.`,
		input.CompanyInfo, input.MarketChallenge)
}

// FeedbackPrompt embeds both finished documents and asks for delimited
// per-solution analysis blocks with scored fields and nested first-person
// persona reactions.
func FeedbackPrompt(scenarios, personas string) string {
	return fmt.Sprintf(`Based on the following scenarios and personas, generate detailed feedback about how each persona would react to each proposed market entry strategy.

SCENARIOS:
%s

PERSONAS:
%s

For each scenario, analyze:
1. How each persona would react, with specific benefits they hope for and concerns they hold
2. A direct first-person quote from each persona
3. Percentage scores for feasibility, return potential, risk, market readiness, and resource requirements

Format the analysis for each scenario exactly like this:

[SOLUTION_ANALYSIS_START]
Analysis for Solution [number]: [Exact scenario title]

Feasibility Score: [NN]%%
Return Score: [NN]%%
Risk Score: [NN]%%
Market readiness: [NN]%%
Resource requirements: [NN]%%

[PERSONA_FEEDBACK_START]
**[Persona Name]**
- Potential benefits: [what this persona hopes to gain]
- Key concerns: [what worries this persona]
[First Person Quote]: "[one sentence in the persona's own voice]"
[PERSONA_FEEDBACK_END]

[Repeat a PERSONA_FEEDBACK block for each persona]
[SOLUTION_ANALYSIS_END]

IMPORTANT: Use the exact marker tokens and score labels shown above, match each "Analysis for Solution" title to the scenario titles verbatim, and express every score as an integer percentage. Focus on providing clear, detailed feedback without any JSON formatting.`,
		scenarios, personas)
}
