package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"shopassist/internal/domain/entity"
	"shopassist/internal/domain/repository"
)

// Orchestrator wires the two-stage pipeline: analyze the query (stage 1),
// load the cached catalog, synthesize a grounded answer (stage 2).
type Orchestrator struct {
	catalog      repository.Catalog
	limiter      repository.RequestLimiter // nil when rate limiting is disabled
	newGenerator repository.TextGeneratorFactory
	analyzer     *QueryAnalyzer
	synthesizer  *ResponseSynthesizer
	defaultKey   string
}

func NewOrchestrator(catalog repository.Catalog, limiter repository.RequestLimiter, factory repository.TextGeneratorFactory, defaultKey string) *Orchestrator {
	return &Orchestrator{
		catalog:      catalog,
		limiter:      limiter,
		newGenerator: factory,
		analyzer:     NewQueryAnalyzer(),
		synthesizer:  NewResponseSynthesizer(),
		defaultKey:   defaultKey,
	}
}

// Chat answers a single user message. clientID identifies the caller for
// rate limiting only; no conversation state is kept between calls.
func (o *Orchestrator) Chat(ctx context.Context, clientID, message, apiKey string) (string, error) {
	key := o.resolveKey(apiKey)
	if key == "" {
		return "", entity.ErrMissingCredential
	}

	if o.limiter != nil {
		allowed, err := o.limiter.Allow(ctx, clientID)
		if err != nil {
			// Fail open: a limiter outage should not take chat down.
			log.Printf("rate limiter check failed, allowing request: %v", err)
		} else if !allowed {
			return "", entity.ErrRateLimitExceeded
		}
	}

	gen := o.newGenerator(key)

	analysis, err := o.analyzer.Analyze(ctx, gen, message)
	if err != nil {
		return "", fmt.Errorf("query analysis failed: %w", err)
	}

	products, err := o.catalog.Products(ctx)
	if err != nil {
		return "", fmt.Errorf("catalog load failed: %w", err)
	}

	answer, err := o.synthesizer.Synthesize(ctx, gen, message, analysis, products)
	if err != nil {
		return "", fmt.Errorf("response synthesis failed: %w", err)
	}
	return answer, nil
}

// Products exposes the cached catalog to the API layer.
func (o *Orchestrator) Products(ctx context.Context) ([]entity.Product, error) {
	return o.catalog.Products(ctx)
}

// resolveKey resolves the Groq API key: request body first, then process
// configuration, then the environment.
func (o *Orchestrator) resolveKey(requestKey string) string {
	if k := strings.TrimSpace(requestKey); k != "" {
		return k
	}
	if o.defaultKey != "" {
		return o.defaultKey
	}
	return os.Getenv("GROQ_API_KEY")
}
