package entity

// ChatRequest is the body of POST /api/chat. The Groq key is optional here;
// resolution order is request body, then process config, then environment.
type ChatRequest struct {
	Message    string `json:"message"`
	GroqAPIKey string `json:"groq_api_key,omitempty"`
}

// ChatResponse carries the assistant's natural-language answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// ProductsResponse is the body of GET /api/products.
type ProductsResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
