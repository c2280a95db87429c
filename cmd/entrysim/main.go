package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rgoodwin/entrysim/internal/render"
	"github.com/rgoodwin/entrysim/internal/simulation"
)

func main() {
	_ = godotenv.Load()

	companyInfo := flag.String("company", "", "Company and product description")
	marketChallenge := flag.String("challenge", "", "Market challenge to analyze")
	inputPath := flag.String("input", "", "Path to a JSON file with companyInfo and marketChallenge (overrides flags)")
	outputPath := flag.String("output", "", "Path to write the result JSON (defaults to stdout)")
	reportPath := flag.String("report", "", "Optional path to write a markdown report")
	flag.Parse()

	input := simulation.SimulationInput{
		CompanyInfo:     *companyInfo,
		MarketChallenge: *marketChallenge,
	}
	if *inputPath != "" {
		blob, err := os.ReadFile(*inputPath)
		if err != nil {
			log.Fatalf("read input: %v", err)
		}
		if err := json.Unmarshal(blob, &input); err != nil {
			log.Fatalf("decode input JSON: %v", err)
		}
	}
	if err := input.Validate(); err != nil {
		log.Fatal(err)
	}

	caller, err := simulation.NewAnthropicCallerFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	pipeline := simulation.NewPipeline(caller)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := pipeline.RunWithProgress(ctx, input, logProgress)
	if err != nil {
		log.Fatalf("simulation failed (stage %s): %v", simulation.StageFromError(err), err)
	}

	if err := writeResult(*outputPath, result); err != nil {
		log.Fatalf("write result: %v", err)
	}
	if *reportPath != "" {
		md := render.BuildMarkdown(result)
		if err := os.WriteFile(*reportPath, []byte(md), 0o644); err != nil {
			log.Fatalf("write report: %v", err)
		}
	}
}

func logProgress(ev simulation.StreamEvent) {
	switch ev.Type {
	case simulation.EventStatus:
		log.Print(ev.Message)
	case simulation.EventScenarios:
		log.Printf("scenarios ready: %s", strings.Join(ev.SolutionTitles, "; "))
	case simulation.EventPersonas:
		log.Printf("personas ready: %d generated", len(ev.PersonaSummaries))
	case simulation.EventFeedback:
		log.Printf("feedback ready: scores for %d solutions", len(ev.Scores))
	case simulation.EventComplete:
		log.Printf("simulation complete: %d solutions", len(ev.Result.Solutions))
	}
}

func writeResult(outputPath string, result simulation.SimulationResult) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if outputPath == "" {
		_, err := fmt.Println(string(b))
		return err
	}
	return os.WriteFile(outputPath, b, 0o644)
}
