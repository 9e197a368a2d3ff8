package models

// PriceRange is an inclusive price filter bound. Low == High is a valid
// single-value range.
type PriceRange struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Contains reports whether the price falls inside the range.
func (r PriceRange) Contains(price int64) bool {
	return price >= r.Low && price <= r.High
}

// YearRange is an inclusive model-year filter bound.
type YearRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Contains reports whether the year falls inside the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Low && year <= r.High
}

// Criteria is the set of user-chosen filter parameters applied to the
// available catalog. A zero Criteria matches every car.
type Criteria struct {
	// Search is matched case-insensitively as a substring of make, model or
	// description. Empty matches everything.
	Search string
	// Price and Year are nil when the corresponding filter is not active.
	Price *PriceRange
	Year  *YearRange
	// Make is an exact-match filter. The empty string means "all makes";
	// that sentinel is part of the contract, not an accident.
	Make string
}
