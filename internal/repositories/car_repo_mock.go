package repositories

import (
	"fmt"
	"sync"

	"carhub/internal/models"

	"github.com/google/uuid"
)

// MockCarRepository is an in-memory implementation of CarRepository. It is
// slice-backed rather than map-backed so storage order stays observable,
// matching the persistent implementation.
type MockCarRepository struct {
	cars []models.Car
	mu   sync.RWMutex
}

// NewMockCarRepository creates a new MockCarRepository holding the given
// cars.
func NewMockCarRepository(cars ...models.Car) *MockCarRepository {
	return &MockCarRepository{
		cars: append([]models.Car(nil), cars...),
	}
}

// GetAll returns every car in insertion order.
func (r *MockCarRepository) GetAll() ([]models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Car(nil), r.cars...), nil
}

// GetAvailable returns the unsold cars in insertion order.
func (r *MockCarRepository) GetAvailable() ([]models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	available := make([]models.Car, 0, len(r.cars))
	for _, car := range r.cars {
		if !car.Sold {
			available = append(available, car)
		}
	}
	return available, nil
}

// GetByID returns the car with the given ID.
func (r *MockCarRepository) GetByID(id string) (*models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.cars {
		if r.cars[i].ID == id {
			car := r.cars[i]
			return &car, nil
		}
	}
	return nil, fmt.Errorf("car with ID %s: %w", id, ErrCarNotFound)
}

// GetPurchasedBy returns the cars bought by the given user.
func (r *MockCarRepository) GetPurchasedBy(buyerID string) ([]models.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchased := make([]models.Car, 0)
	for _, car := range r.cars {
		if car.PurchasedBy(buyerID) {
			purchased = append(purchased, car)
		}
	}
	return purchased, nil
}

// Purchase marks the car sold and records the buyer.
func (r *MockCarRepository) Purchase(carID, buyerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cars {
		if r.cars[i].ID != carID {
			continue
		}
		if r.cars[i].Sold {
			return fmt.Errorf("car with ID %s: %w", carID, ErrCarUnavailable)
		}
		r.cars[i].Sold = true
		r.cars[i].BuyerID = &buyerID
		return nil
	}
	return fmt.Errorf("car with ID %s: %w", carID, ErrCarUnavailable)
}

// Create assigns a fresh ID if the car has none and appends it.
func (r *MockCarRepository) Create(car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if car.ID == "" {
		car.ID = uuid.New().String()
	}
	r.cars = append(r.cars, *car)
	return nil
}

// Update replaces the stored car with the same ID in place.
func (r *MockCarRepository) Update(car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cars {
		if r.cars[i].ID == car.ID {
			r.cars[i] = *car
			return nil
		}
	}
	return fmt.Errorf("car with ID %s: %w", car.ID, ErrCarNotFound)
}

// Delete removes the car with the given ID.
func (r *MockCarRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]models.Car, 0, len(r.cars))
	for _, car := range r.cars {
		if car.ID != id {
			kept = append(kept, car)
		}
	}
	if len(kept) == len(r.cars) {
		return fmt.Errorf("car with ID %s: %w", id, ErrCarNotFound)
	}
	r.cars = kept
	return nil
}
