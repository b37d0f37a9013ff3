package entity

// Intent is the classified purpose of a user query, drawn from a fixed
// enumeration. Anything outside the enumeration is a parse failure, never a
// best-effort coercion.
type Intent string

const (
	IntentProductDetails Intent = "product_details"
	IntentProductPrice   Intent = "product_price"
	IntentProductReviews Intent = "product_reviews"
	IntentListByCategory Intent = "list_by_category"
	IntentListByRating   Intent = "list_by_rating"
	IntentListCategories Intent = "list_categories"
	IntentGeneral        Intent = "general"
)

// Valid reports whether the intent is one of the known values.
func (i Intent) Valid() bool {
	switch i {
	case IntentProductDetails, IntentProductPrice, IntentProductReviews,
		IntentListByCategory, IntentListByRating, IntentListCategories,
		IntentGeneral:
		return true
	}
	return false
}

// Rating filter directions.
const (
	DirectionAbove = "above"
	DirectionBelow = "below"
	DirectionEqual = "equal"
)

// QueryAnalysis is the structured record extracted from a user message by the
// stage-1 model call. Created fresh per request, never persisted.
type QueryAnalysis struct {
	Intent          Intent  `json:"intent"`
	ProductName     string  `json:"product_name"`
	Category        string  `json:"category"`
	RatingThreshold float64 `json:"rating_threshold"`
	RatingDirection string  `json:"rating_direction"`
}

// DefaultAnalysis is the degrade-to-general fallback used when extraction
// fails to parse twice. The pipeline always proceeds to stage 2 with it.
func DefaultAnalysis() QueryAnalysis {
	return QueryAnalysis{Intent: IntentGeneral}
}
