package usecase

import (
	"context"
	"log"

	"shopassist/internal/domain/entity"
	"shopassist/internal/domain/repository"
	"shopassist/internal/prompts"
)

// Low temperature favors deterministic extraction.
const analysisTemperature = 0.2

// QueryAnalyzer runs the stage-1 model call: it builds the extraction prompt,
// parses the output as a QueryAnalysis, re-prompts exactly once on malformed
// output, and degrades to the general intent when both attempts fail to
// parse. Malformed model output never aborts the request; transport failures
// do propagate.
type QueryAnalyzer struct{}

func NewQueryAnalyzer() *QueryAnalyzer {
	return &QueryAnalyzer{}
}

func (a *QueryAnalyzer) Analyze(ctx context.Context, gen repository.TextGenerator, message string) (entity.QueryAnalysis, error) {
	prompt := prompts.BuildAnalysisPrompt(message)

	raw, err := gen.Generate(ctx, prompt, prompts.AnalysisSystem, analysisTemperature)
	if err != nil {
		return entity.QueryAnalysis{}, err
	}

	analysis, parseErr := prompts.ParseAnalysis(raw)
	if parseErr == nil {
		return analysis, nil
	}
	log.Printf("analysis parse failed, re-prompting once: %v", parseErr)

	raw, err = gen.Generate(ctx, prompt+prompts.RetryDirective, prompts.AnalysisSystem, analysisTemperature)
	if err != nil {
		return entity.QueryAnalysis{}, err
	}

	analysis, parseErr = prompts.ParseAnalysis(raw)
	if parseErr != nil {
		log.Printf("analysis parse failed twice, defaulting to general intent: %v", parseErr)
		return entity.DefaultAnalysis(), nil
	}
	return analysis, nil
}
