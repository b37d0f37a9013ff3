package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"shopassist/internal/domain/entity"
)

// System instructions for the two model calls.
const (
	AnalysisSystem = "You are a JSON extraction tool. Respond with ONLY valid JSON as instructed, no other text."
	ResponseSystem = "Follow instructions precisely. Base on data only."
)

// RetryDirective is appended to the extraction prompt on the single re-prompt
// after a parse failure.
const RetryDirective = "\n\nIMPORTANT: Output ONLY the JSON now."

// FallbackAnswer is the templated reply the model is instructed to give when
// the grounding data is empty. Not an error.
const FallbackAnswer = "Sorry, I couldn't find any matching products. Try another query?"

const analysisTemplate = `Analyze the following customer query about products and extract the key information.

Possible intents: 'product_details', 'product_price', 'product_reviews', 'list_by_category', 'list_by_rating', 'list_categories', 'general'.

Extract:
- intent: one of the above (e.g., 'product_price' for price questions, 'list_categories' for asking about available categories)
- product_name: specific product mentioned (if any, e.g., 'Kiwi' or 'Volleyball'), empty string if none
- category: category mentioned (if any, e.g., 'electronics' or 'beauty'), empty string if none
- rating_threshold: number greater than 0 if 'list_by_rating' (e.g., 4 from 'above 4', 3 from 'below 3'), else 0
- rating_direction: 'above', 'below', or 'equal' for rating queries (default 'above' if unspecified), empty string otherwise

Examples:
- Query: "Tell me the reviews for Kiwi." -> {"intent": "product_reviews", "product_name": "Kiwi", "category": "", "rating_threshold": 0, "rating_direction": ""}
- Query: "Show me products with ratings above 4." -> {"intent": "list_by_rating", "product_name": "", "category": "", "rating_threshold": 4, "rating_direction": "above"}
- Query: "Show products with poor rating below 3." -> {"intent": "list_by_rating", "product_name": "", "category": "", "rating_threshold": 3, "rating_direction": "below"}
- Query: "Products with exactly 4.5 rating." -> {"intent": "list_by_rating", "product_name": "", "category": "", "rating_threshold": 4.5, "rating_direction": "equal"}
- Query: "Do you have any electronics?" -> {"intent": "list_by_category", "product_name": "", "category": "electronics", "rating_threshold": 0, "rating_direction": ""}
- Query: "What category products do you have?" -> {"intent": "list_categories", "product_name": "", "category": "", "rating_threshold": 0, "rating_direction": ""}
- Query: "What's the price of kiwi?" -> {"intent": "product_price", "product_name": "kiwi", "category": "", "rating_threshold": 0, "rating_direction": ""}

Query: %s

Output ONLY the valid JSON object in this exact format: {"intent": "str", "product_name": "str", "category": "str", "rating_threshold": 0, "rating_direction": "str"}
No additional text, explanations, or formatting - just the JSON.`

// BuildAnalysisPrompt embeds the user message into the extraction prompt.
func BuildAnalysisPrompt(message string) string {
	return fmt.Sprintf(analysisTemplate, message)
}

const responseBaseTemplate = `You are a friendly customer service rep for an online store.

Customer asked: %s

Base response ONLY on the provided data. Do not invent details. If data is empty, say: "%s"
Be concise, natural, human-like. End with a question if appropriate.

Data:
%s
`

// BuildResponsePrompt assembles the stage-2 prompt: base grounding rules plus
// an intent-specific instruction section.
func BuildResponsePrompt(message string, analysis entity.QueryAnalysis, data string) string {
	base := fmt.Sprintf(responseBaseTemplate, message, FallbackAnswer, data)

	switch analysis.Intent {
	case entity.IntentProductReviews:
		return base + `
- Respond with ONLY the overall rating and 1-2 sample reviews (quote them with reviewer name if available).
- Example: "The Kiwi has a 4.93 rating. Reviews: 'Highly recommended!' - Emily Brown. 'Fast shipping!' - Nora Russell."
`
	case entity.IntentListByRating:
		return base + fmt.Sprintf(`
- List 3-5 products with ONLY their category, name, and rating.
- Mention the filter (e.g., 'Showing products rated %s %v').
- Format as bullet points: "- [Category]: [Title] (Rating: [rating])"
`, analysis.RatingDirection, analysis.RatingThreshold)
	case entity.IntentProductPrice:
		return base + `
- Respond with ONLY the price. If discountPercentage is greater than 0, mention the discounted price.
- Example: "The Kiwi is priced at $2.49 (15.22% discount applied)."
`
	case entity.IntentListCategories:
		return base + `
- List all unique categories in a simple bulleted list.
- Example: "- Beauty\n- Electronics (includes smartphones, laptops, etc.)\n..."
`
	case entity.IntentListByCategory:
		return base + `
- List 3-5 products with name, brief description (from data), price, and rating.
- Use bullets.
`
	default: // product_details or general
		return base + `
- For details: Mention title, description, price (with discount if any), rating, brand, tags, warranty, shipping, availability, return policy.
- Keep to 1-2 sentences.
`
	}
}

// ParseAnalysis parses model output into a QueryAnalysis. The model sometimes
// wraps the JSON in prose or code fences, so the first '{' to the last '}' is
// taken as the candidate object. Any structural violation is a parse error,
// never a silent coercion.
func ParseAnalysis(content string) (entity.QueryAnalysis, error) {
	raw := extractJSON(content)
	if raw == "" {
		return entity.QueryAnalysis{}, fmt.Errorf("no valid JSON found in response")
	}

	var analysis entity.QueryAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return entity.QueryAnalysis{}, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if !analysis.Intent.Valid() {
		return entity.QueryAnalysis{}, fmt.Errorf("unknown intent %q", analysis.Intent)
	}
	if analysis.RatingThreshold < 0 {
		return entity.QueryAnalysis{}, fmt.Errorf("negative rating threshold %v", analysis.RatingThreshold)
	}
	analysis.RatingDirection = strings.ToLower(strings.TrimSpace(analysis.RatingDirection))
	switch analysis.RatingDirection {
	case "", entity.DirectionAbove, entity.DirectionBelow, entity.DirectionEqual:
	default:
		return entity.QueryAnalysis{}, fmt.Errorf("unknown rating direction %q", analysis.RatingDirection)
	}

	return analysis, nil
}

func extractJSON(content string) string {
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(content, "}")
	if end == -1 || end <= start {
		return ""
	}
	return content[start : end+1]
}
