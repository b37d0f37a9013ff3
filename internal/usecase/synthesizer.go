package usecase

import (
	"context"
	"encoding/json"

	"shopassist/internal/domain/entity"
	"shopassist/internal/domain/repository"
	"shopassist/internal/prompts"
)

const (
	// Moderate temperature for a conversational answer.
	responseTemperature = 0.6

	// At most this many products are serialized into the grounding data.
	maxGroundingProducts = 5
)

// ResponseSynthesizer runs the stage-2 model call: it selects the grounding
// subset of the catalog for the extracted intent, shapes and serializes it,
// and asks the model for an answer grounded strictly in that data.
type ResponseSynthesizer struct{}

func NewResponseSynthesizer() *ResponseSynthesizer {
	return &ResponseSynthesizer{}
}

func (s *ResponseSynthesizer) Synthesize(ctx context.Context, gen repository.TextGenerator, message string, analysis entity.QueryAnalysis, products []entity.Product) (string, error) {
	data := s.groundingData(analysis, products)
	prompt := prompts.BuildResponsePrompt(message, analysis, data)
	return gen.Generate(ctx, prompt, prompts.ResponseSystem, responseTemperature)
}

// groundingData serializes the catalog subset the answer must be based on.
// For list_categories that is the sorted set of category names; otherwise a
// filtered, truncated, field-stripped product list.
func (s *ResponseSynthesizer) groundingData(analysis entity.QueryAnalysis, products []entity.Product) string {
	if analysis.Intent == entity.IntentListCategories {
		categories := UniqueCategories(products)
		if categories == nil {
			categories = []string{}
		}
		b, _ := json.Marshal(categories)
		return string(b)
	}

	subset := s.selectProducts(analysis, products)
	if len(subset) > maxGroundingProducts {
		subset = subset[:maxGroundingProducts]
	}

	trimmed := make([]entity.Product, 0, len(subset))
	for _, p := range subset {
		trimmed = append(trimmed, trimForPrompt(p))
	}
	b, _ := json.MarshalIndent(trimmed, "", "  ")
	return string(b)
}

// selectProducts applies the filters in priority order: name, then category,
// then rating. Nothing applicable means an empty subset; the response
// template turns that into the fixed fallback answer.
func (s *ResponseSynthesizer) selectProducts(analysis entity.QueryAnalysis, products []entity.Product) []entity.Product {
	switch {
	case analysis.ProductName != "":
		return FilterByName(products, analysis.ProductName)
	case analysis.Category != "":
		return FilterByCategory(products, analysis.Category)
	case analysis.RatingThreshold > 0:
		direction := analysis.RatingDirection
		if direction == "" {
			direction = entity.DirectionAbove
		}
		return FilterByRating(products, analysis.RatingThreshold, direction)
	}
	return nil
}

// trimForPrompt copies a product with token-heavy, presentation-only fields
// dropped before serialization. The cached product is never mutated.
func trimForPrompt(p entity.Product) entity.Product {
	p.Meta = nil
	p.Images = nil
	p.Thumbnail = ""
	p.SKU = ""
	p.Weight = 0
	p.Dimensions = nil
	p.ShippingInformation = ""
	return p
}
