package repository

import (
	"context"

	"shopassist/internal/domain/entity"
)

// CatalogSource fetches the complete, unpaginated product catalog from the
// remote API.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]entity.Product, error)
}

// Catalog serves the cached catalog. Callers must not mutate the returned
// slice or its elements.
type Catalog interface {
	Products(ctx context.Context) ([]entity.Product, error)
}

// TextGenerator issues a single chat-style completion: optional system
// instruction, one user prompt, trimmed text back. No retries, no caching.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, system string, temperature float64) (string, error)
}

// TextGeneratorFactory builds a TextGenerator bound to a resolved API key.
// Keys can arrive per request, so generators are constructed per request.
type TextGeneratorFactory func(apiKey string) TextGenerator

// RequestLimiter gates chat requests per client.
type RequestLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}
