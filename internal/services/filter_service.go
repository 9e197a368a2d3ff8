package services

import (
	"strings"

	"carhub/internal/models"
)

// FilterService narrows a catalog snapshot against user-chosen criteria.
// It holds no state and persists nothing; callers recompute whenever the
// snapshot or any criterion changes, and only ever pass the latest criteria
// (debouncing of keystrokes is the caller's concern).
type FilterService struct{}

// NewFilterService creates a new FilterService.
func NewFilterService() *FilterService {
	return &FilterService{}
}

// Apply returns the cars matching every active criterion, in the same order
// as the input. All criteria are pure predicates ANDed together, so the
// order they are applied in never changes the result.
func (s *FilterService) Apply(cars []models.Car, criteria models.Criteria) []models.Car {
	search := strings.ToLower(criteria.Search)

	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if search != "" && !matchesSearch(car, search) {
			continue
		}
		if criteria.Price != nil && !criteria.Price.Contains(car.Price) {
			continue
		}
		if criteria.Year != nil && !criteria.Year.Contains(car.Year) {
			continue
		}
		if criteria.Make != "" && car.Make != criteria.Make {
			continue
		}
		filtered = append(filtered, car)
	}
	return filtered
}

// matchesSearch reports whether the lowercased search term occurs in the
// car's make, model or description.
func matchesSearch(car models.Car, search string) bool {
	return strings.Contains(strings.ToLower(car.Make), search) ||
		strings.Contains(strings.ToLower(car.Model), search) ||
		strings.Contains(strings.ToLower(car.Description), search)
}

// PriceBounds returns the observed minimum and maximum price across the
// snapshot. The second return is false for an empty snapshot. A single-car
// snapshot yields a degenerate Low == High range, which is still valid.
func (s *FilterService) PriceBounds(cars []models.Car) (models.PriceRange, bool) {
	if len(cars) == 0 {
		return models.PriceRange{}, false
	}

	bounds := models.PriceRange{Low: cars[0].Price, High: cars[0].Price}
	for _, car := range cars[1:] {
		if car.Price < bounds.Low {
			bounds.Low = car.Price
		}
		if car.Price > bounds.High {
			bounds.High = car.Price
		}
	}
	return bounds, true
}

// YearBounds returns the observed minimum and maximum model year across the
// snapshot. The second return is false for an empty snapshot.
func (s *FilterService) YearBounds(cars []models.Car) (models.YearRange, bool) {
	if len(cars) == 0 {
		return models.YearRange{}, false
	}

	bounds := models.YearRange{Low: cars[0].Year, High: cars[0].Year}
	for _, car := range cars[1:] {
		if car.Year < bounds.Low {
			bounds.Low = car.Year
		}
		if car.Year > bounds.High {
			bounds.High = car.Year
		}
	}
	return bounds, true
}

// Makes returns the distinct makes in the snapshot, in first-appearance
// order.
func (s *FilterService) Makes(cars []models.Car) []string {
	seen := make(map[string]bool, len(cars))
	makes := make([]string, 0, len(cars))
	for _, car := range cars {
		if !seen[car.Make] {
			seen[car.Make] = true
			makes = append(makes, car.Make)
		}
	}
	return makes
}
