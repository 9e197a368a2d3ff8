package models

// Car represents a vehicle listing in the marketplace catalog.
type Car struct {
	ID          string   `json:"id"`
	Make        string   `json:"make" validate:"required,max=100"`
	Model       string   `json:"model" validate:"required,max=100"`
	Year        int      `json:"year" validate:"required"`
	Price       int64    `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"max=2000"`
	ImageURL    string   `json:"imageUrl"`
	Features    []string `json:"features"`
	Sold        bool     `json:"sold"`
	// BuyerID is the purchaser's user ID once the car is sold, nil while the
	// car is still available. The JSON key is "sellerId", a misnomer kept so
	// collections persisted by earlier versions keep loading.
	BuyerID *string `json:"sellerId"`
}

// PurchasedBy reports whether the car was bought by the given user.
func (c Car) PurchasedBy(buyerID string) bool {
	return c.Sold && c.BuyerID != nil && *c.BuyerID == buyerID
}
