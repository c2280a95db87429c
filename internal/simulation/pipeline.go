package simulation

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rgoodwin/entrysim/internal/report"
)

// ProgressFn receives staged-progress events during a pipeline run. It is
// called synchronously from the pipeline goroutine, never concurrently.
type ProgressFn func(StreamEvent)

// Pipeline drives the three generation stages and hands the finished
// documents to the parsing core. Scenario and persona generation run
// concurrently; feedback generation depends on both outputs.
type Pipeline struct {
	gen TextGenerator
}

func NewPipeline(gen TextGenerator) *Pipeline {
	return &Pipeline{gen: gen}
}

func (p *Pipeline) Run(ctx context.Context, input SimulationInput) (SimulationResult, error) {
	return p.runWithProgress(ctx, input, nil)
}

func (p *Pipeline) RunWithProgress(ctx context.Context, input SimulationInput, progress ProgressFn) (SimulationResult, error) {
	return p.runWithProgress(ctx, input, progress)
}

func (p *Pipeline) runWithProgress(ctx context.Context, input SimulationInput, progress ProgressFn) (SimulationResult, error) {
	res := SimulationResult{Input: input}
	if err := input.Validate(); err != nil {
		return res, err
	}

	emit(progress, StatusEvent("Generating market entry scenarios and personas..."))

	var (
		wg                   sync.WaitGroup
		scenarios, personas  string
		scenarioErr, persErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		scenarios, scenarioErr = p.gen.GenerateText(ctx, scenarioSystemPrompt, ScenariosPrompt(input))
	}()
	go func() {
		defer wg.Done()
		personas, persErr = p.gen.GenerateText(ctx, personaSystemPrompt, PersonasPrompt(input))
	}()
	wg.Wait()

	if scenarioErr != nil {
		return res, classifyGenerationError("scenarios", scenarioErr)
	}
	if persErr != nil {
		return res, classifyGenerationError("personas", persErr)
	}
	res.Scenarios = scenarios
	res.Personas = personas

	// Side-channel projections over the documents as they land.
	emit(progress, ScenariosEvent(report.ExtractSolutionTitles(scenarios)))
	emit(progress, PersonasEvent(report.PersonaSummaries(personas)))

	emit(progress, StatusEvent("Generating persona feedback for each scenario..."))
	feedback, err := p.gen.GenerateText(ctx, feedbackSystemPrompt, FeedbackPrompt(scenarios, personas))
	if err != nil {
		return res, classifyGenerationError("feedback", err)
	}
	res.Feedback = feedback
	emit(progress, FeedbackEvent(report.ScoreProjection(feedback)))

	res.Solutions = report.Parse(scenarios, personas, feedback)
	emit(progress, CompleteEvent(res))
	return res, nil
}

func emit(progress ProgressFn, ev StreamEvent) {
	if progress != nil {
		progress(ev)
	}
}

// StageFromError names the generation stage an error came from, for log
// lines and diagnostics.
func StageFromError(err error) string {
	var ge *GenerationError
	if errors.As(err, &ge) && strings.TrimSpace(ge.Stage) != "" {
		return ge.Stage
	}
	return "pipeline"
}
