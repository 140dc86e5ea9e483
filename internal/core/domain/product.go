package domain

// Product is the core inventory entity. The ID is assigned by the server on
// creation and never changes; updates replace every other field at once.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
