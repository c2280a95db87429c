package simulation

import (
	"context"
	"errors"
	"sync"
	"testing"
)

const stubScenarios = `Solution 1: Direct Distribution Partnership
- Description: Partner with established distributors.
- Advantages:
  * Fast market access
- Challenges:
  * Lower margins

Solution 2: Digital-First Launch
- Description: Launch through an online storefront.
- Advantages: Strong unit economics
`

const stubPersonas = `[PERSONA_START]
Maria Chen (Early Adopter)
Basic Information: Maria Chen, 34, Product Manager
Background and Context: Works at a mid-size SaaS company.
[PERSONA_END]
`

const stubFeedback = `[SOLUTION_ANALYSIS_START]
Analysis for Solution 1: Direct Distribution Partnership

Feasibility Score: 82%
Return Score: 47%

[PERSONA_FEEDBACK_START]
**Maria Chen**
[First Person Quote]: "This would save my team hours every week."
[PERSONA_FEEDBACK_END]
[SOLUTION_ANALYSIS_END]
`

// stubGenerator scripts one response per stage, keyed by system prompt.
// Safe for the concurrent scenario/persona calls.
type stubGenerator struct {
	mu        sync.Mutex
	calls     []string
	responses map[string]string
	failures  map[string]error
}

func newStubGenerator() *stubGenerator {
	return &stubGenerator{
		responses: map[string]string{
			scenarioSystemPrompt: stubScenarios,
			personaSystemPrompt:  stubPersonas,
			feedbackSystemPrompt: stubFeedback,
		},
		failures: map[string]error{},
	}
}

func (s *stubGenerator) GenerateText(_ context.Context, system, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, system)
	if err := s.failures[system]; err != nil {
		return "", err
	}
	return s.responses[system], nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func testInput() SimulationInput {
	return SimulationInput{CompanyInfo: "B2B SaaS vendor", MarketChallenge: "Entering the EU market"}
}

func TestPipelineRunSuccess(t *testing.T) {
	gen := newStubGenerator()
	var events []StreamEvent
	res, err := NewPipeline(gen).RunWithProgress(context.Background(), testInput(), func(ev StreamEvent) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.callCount() != 3 {
		t.Fatalf("expected 3 generation calls, got %d", gen.callCount())
	}
	if res.Scenarios != stubScenarios || res.Personas != stubPersonas || res.Feedback != stubFeedback {
		t.Fatal("raw documents not retained on result")
	}
	if len(res.Solutions) != 1 {
		t.Fatalf("expected 1 reconciled solution, got %d", len(res.Solutions))
	}
	if res.Solutions[0].Title != "Direct Distribution Partnership" {
		t.Fatalf("unexpected solution: %+v", res.Solutions[0])
	}

	wantTypes := []EventType{EventStatus, EventScenarios, EventPersonas, EventStatus, EventFeedback, EventComplete}
	if len(events) != len(wantTypes) {
		t.Fatalf("expected %d events, got %+v", len(wantTypes), events)
	}
	for i, want := range wantTypes {
		if events[i].Type != want {
			t.Fatalf("event %d type = %q, want %q", i, events[i].Type, want)
		}
	}
	if len(events[1].SolutionTitles) != 2 || events[1].SolutionTitles[0] != "Direct Distribution Partnership" {
		t.Fatalf("unexpected scenario projection: %+v", events[1])
	}
	if len(events[2].PersonaSummaries) != 1 {
		t.Fatalf("unexpected persona projection: %+v", events[2])
	}
	if got := events[4].Scores["Direct Distribution Partnership"]; got != [2]int{82, 47} {
		t.Fatalf("unexpected score projection: %v", events[4].Scores)
	}
	if events[5].Result == nil || len(events[5].Result.Solutions) != 1 {
		t.Fatalf("complete event missing result: %+v", events[5])
	}
}

func TestPipelineValidatesInput(t *testing.T) {
	gen := newStubGenerator()
	_, err := NewPipeline(gen).Run(context.Background(), SimulationInput{CompanyInfo: "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if gen.callCount() != 0 {
		t.Fatalf("generator must not be called on invalid input, got %d calls", gen.callCount())
	}
}

func TestPipelineGenerationFailure(t *testing.T) {
	gen := newStubGenerator()
	gen.failures[scenarioSystemPrompt] = errors.New("status code: 429 rate limit exceeded")

	var events []StreamEvent
	_, err := NewPipeline(gen).RunWithProgress(context.Background(), testInput(), func(ev StreamEvent) {
		events = append(events, ev)
	})
	if err == nil {
		t.Fatal("expected generation failure")
	}
	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
	if ge.Code != CodeRateLimited || !ge.Transient {
		t.Fatalf("unexpected classification: %+v", ge)
	}
	if StageFromError(err) != "scenarios" {
		t.Fatalf("unexpected stage: %q", StageFromError(err))
	}
	// The feedback stage must never run after an upstream failure.
	for _, call := range gen.calls {
		if call == feedbackSystemPrompt {
			t.Fatal("feedback stage ran despite scenario failure")
		}
	}
	for _, ev := range events {
		if ev.Type == EventComplete {
			t.Fatal("complete event emitted despite failure")
		}
	}
}

func TestClassifyGenerationError(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{errors.New("status code: 401 invalid api key"), CodeInvalidAPIKey},
		{errors.New("authentication failed"), CodeInvalidAPIKey},
		{errors.New("429: rate limit exceeded"), CodeRateLimited},
		{errors.New("status code: 503 server error"), CodeServiceError},
		{errors.New("overloaded_error"), CodeServiceError},
		{context.DeadlineExceeded, CodeServiceError},
		{errors.New("something odd"), CodeUnknown},
	}
	for _, tc := range cases {
		ge := classifyGenerationError("feedback", tc.err)
		if ge.Code != tc.want {
			t.Fatalf("classify(%v) = %q, want %q", tc.err, ge.Code, tc.want)
		}
		if !errors.Is(ge, tc.err) {
			t.Fatalf("classified error must wrap the cause: %v", tc.err)
		}
	}
}

func TestErrorEventCarriesCode(t *testing.T) {
	ge := classifyGenerationError("personas", errors.New("429 rate limit"))
	ev := ErrorEvent(ge)
	if ev.Type != EventError || ev.Error == nil {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Error.Code != string(CodeRateLimited) {
		t.Fatalf("unexpected code: %q", ev.Error.Code)
	}

	plain := ErrorEvent(errors.New("boom"))
	if plain.Error.Code != "" || plain.Error.Message != "boom" {
		t.Fatalf("unexpected untagged payload: %+v", plain.Error)
	}
}
