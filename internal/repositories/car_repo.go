package repositories

import (
	"errors"

	"carhub/internal/models"
)

// Catalog access errors.
var (
	// ErrCarNotFound is returned when no car with the requested ID exists.
	ErrCarNotFound = errors.New("car not found")
	// ErrCarUnavailable is returned when purchasing a car that does not
	// exist or is already sold.
	ErrCarUnavailable = errors.New("car is not available for purchase")
)

// CarRepository defines the interface for catalog data access. Every
// implementation preserves the catalog's insertion order across operations,
// and every failed mutation leaves the catalog untouched.
type CarRepository interface {
	// GetAll returns every car, sold or not, in storage order.
	GetAll() ([]models.Car, error)
	// GetAvailable returns the unsold subset of GetAll, order preserved.
	GetAvailable() ([]models.Car, error)
	// GetByID returns the car with the given ID, or ErrCarNotFound.
	GetByID(id string) (*models.Car, error)
	// GetPurchasedBy returns the cars bought by the given user.
	GetPurchasedBy(buyerID string) ([]models.Car, error)
	// Purchase marks the car sold and records the buyer. Returns
	// ErrCarUnavailable if the car does not exist or is already sold.
	Purchase(carID, buyerID string) error
	// Create assigns a fresh ID if the car has none and appends it.
	Create(car *models.Car) error
	// Update replaces the stored car with the same ID in place, or returns
	// ErrCarNotFound.
	Update(car *models.Car) error
	// Delete removes the car with the given ID, or returns ErrCarNotFound.
	Delete(id string) error
}
