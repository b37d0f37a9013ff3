package entity

// Review is a single customer review attached to a product.
type Review struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerEmail string  `json:"reviewerEmail"`
}

// Dimensions are the physical dimensions reported by the catalog source.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Product mirrors the DummyJSON product schema. Entries are fetched once and
// cached for the process lifetime; cached products must never be mutated.
// Unknown wire fields are ignored, missing optional fields stay zero-valued.
type Product struct {
	ID                   int            `json:"id"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Category             string         `json:"category"`
	Price                float64        `json:"price"`
	DiscountPercentage   float64        `json:"discountPercentage,omitempty"`
	Rating               float64        `json:"rating,omitempty"`
	Stock                int            `json:"stock,omitempty"`
	Tags                 []string       `json:"tags,omitempty"`
	Brand                string         `json:"brand,omitempty"`
	SKU                  string         `json:"sku,omitempty"`
	Weight               float64        `json:"weight,omitempty"`
	Dimensions           *Dimensions    `json:"dimensions,omitempty"`
	WarrantyInformation  string         `json:"warrantyInformation,omitempty"`
	ShippingInformation  string         `json:"shippingInformation,omitempty"`
	AvailabilityStatus   string         `json:"availabilityStatus,omitempty"`
	Reviews              []Review       `json:"reviews,omitempty"`
	ReturnPolicy         string         `json:"returnPolicy,omitempty"`
	MinimumOrderQuantity int            `json:"minimumOrderQuantity,omitempty"`
	Meta                 map[string]any `json:"meta,omitempty"`
	Thumbnail            string         `json:"thumbnail,omitempty"`
	Images               []string       `json:"images,omitempty"`
}
