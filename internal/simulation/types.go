package simulation

import (
	"errors"
	"strings"

	"github.com/rgoodwin/entrysim/internal/report"
)

// SimulationInput describes the company and the market question the
// simulation analyzes.
type SimulationInput struct {
	CompanyInfo     string `json:"companyInfo"`
	MarketChallenge string `json:"marketChallenge"`
}

func (in SimulationInput) Validate() error {
	if strings.TrimSpace(in.CompanyInfo) == "" {
		return errors.New("companyInfo is required")
	}
	if strings.TrimSpace(in.MarketChallenge) == "" {
		return errors.New("marketChallenge is required")
	}
	return nil
}

// SimulationResult carries the three raw generated documents alongside the
// solutions reconciled from them. Raw documents are retained so callers can
// render or re-parse them.
type SimulationResult struct {
	Input     SimulationInput   `json:"input"`
	Scenarios string            `json:"scenarios"`
	Personas  string            `json:"personas"`
	Feedback  string            `json:"feedback"`
	Solutions []report.Solution `json:"solutions"`
}

// EventType tags a staged-progress event. Each type carries only the
// fields relevant to that stage.
type EventType string

const (
	EventStatus    EventType = "status"
	EventScenarios EventType = "scenarios"
	EventPersonas  EventType = "personas"
	EventFeedback  EventType = "feedback"
	EventComplete  EventType = "complete"
	EventError     EventType = "error"
)

// StreamEvent is one staged-progress notification. Scenario events carry
// the solution titles extracted so far, persona events the persona
// summaries, feedback events the per-title score projection, complete
// events the full result, and error events the failure payload.
type StreamEvent struct {
	Type             EventType          `json:"type"`
	Message          string             `json:"message,omitempty"`
	SolutionTitles   []string           `json:"solutionTitles,omitempty"`
	PersonaSummaries []string           `json:"personaSummaries,omitempty"`
	Scores           map[string][2]int  `json:"scores,omitempty"`
	Result           *SimulationResult  `json:"result,omitempty"`
	Error            *StreamErrorDetail `json:"error,omitempty"`
}

// StreamErrorDetail is the error payload of an EventError frame.
type StreamErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func StatusEvent(message string) StreamEvent {
	return StreamEvent{Type: EventStatus, Message: message}
}

func ScenariosEvent(titles []string) StreamEvent {
	return StreamEvent{Type: EventScenarios, SolutionTitles: titles}
}

func PersonasEvent(summaries []string) StreamEvent {
	return StreamEvent{Type: EventPersonas, PersonaSummaries: summaries}
}

func FeedbackEvent(scores map[string][2]int) StreamEvent {
	return StreamEvent{Type: EventFeedback, Scores: scores}
}

func CompleteEvent(result SimulationResult) StreamEvent {
	return StreamEvent{Type: EventComplete, Result: &result}
}

func ErrorEvent(err error) StreamEvent {
	detail := &StreamErrorDetail{Message: err.Error()}
	var ge *GenerationError
	if errors.As(err, &ge) {
		detail.Code = string(ge.Code)
		detail.Message = ge.Message
	}
	return StreamEvent{Type: EventError, Error: detail}
}
