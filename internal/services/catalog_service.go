package services

import (
	"errors"
	"fmt"

	"carhub/internal/models"
	"carhub/internal/repositories"
	"carhub/pkg/notify"

	"github.com/go-playground/validator/v10"
)

// ErrMissingBuyer is returned when a car is written as sold without a
// recorded buyer.
var ErrMissingBuyer = errors.New("a sold car must record its buyer")

// CatalogService handles business logic for the vehicle catalog. Every
// mutation emits one user-facing notification describing the outcome;
// callers must branch on the returned values, the notification is display
// only.
type CatalogService struct {
	repo     repositories.CarRepository
	notifier notify.Notifier
	validate *validator.Validate
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CarRepository, notifier notify.Notifier) *CatalogService {
	return &CatalogService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(),
	}
}

// GetAllCars retrieves the whole catalog, sold cars included.
func (s *CatalogService) GetAllCars() ([]models.Car, error) {
	return s.repo.GetAll()
}

// GetAvailableCars retrieves the unsold subset of the catalog.
func (s *CatalogService) GetAvailableCars() ([]models.Car, error) {
	return s.repo.GetAvailable()
}

// GetCarByID retrieves a single car by its ID.
func (s *CatalogService) GetCarByID(id string) (*models.Car, error) {
	return s.repo.GetByID(id)
}

// GetUserPurchases retrieves the cars bought by the given user.
func (s *CatalogService) GetUserPurchases(buyerID string) ([]models.Car, error) {
	return s.repo.GetPurchasedBy(buyerID)
}

// PurchaseCar marks a car as sold to the given buyer. The buyer ID is an
// opaque key supplied by the session collaborator; it is stored and
// compared, never looked up.
func (s *CatalogService) PurchaseCar(carID, buyerID string) error {
	if err := s.repo.Purchase(carID, buyerID); err != nil {
		if errors.Is(err, repositories.ErrCarUnavailable) {
			s.notifier.Error("Car is not available for purchase!")
		} else {
			s.notifier.Error("Failed to purchase car!")
		}
		return err
	}
	s.notifier.Success("Car purchased successfully!")
	return nil
}

// AddCar validates the car, hands it to the store for ID assignment and
// returns the stored record.
func (s *CatalogService) AddCar(car *models.Car) (*models.Car, error) {
	if err := s.validate.Struct(car); err != nil {
		s.notifier.Error("Car details are invalid!")
		return nil, fmt.Errorf("invalid car: %w", err)
	}
	if err := s.normalizeSale(car); err != nil {
		return nil, err
	}

	// The store owns ID assignment, whatever the caller sent.
	car.ID = ""
	if err := s.repo.Create(car); err != nil {
		s.notifier.Error("Failed to add car!")
		return nil, fmt.Errorf("failed to add car: %w", err)
	}
	s.notifier.Success("Car added successfully!")
	return car, nil
}

// UpdateCar replaces the stored car with the same ID.
func (s *CatalogService) UpdateCar(car *models.Car) error {
	if err := s.validate.Struct(car); err != nil {
		s.notifier.Error("Car details are invalid!")
		return fmt.Errorf("invalid car: %w", err)
	}
	if err := s.normalizeSale(car); err != nil {
		return err
	}

	if err := s.repo.Update(car); err != nil {
		if errors.Is(err, repositories.ErrCarNotFound) {
			s.notifier.Error("Car not found!")
		} else {
			s.notifier.Error("Failed to update car!")
		}
		return err
	}
	s.notifier.Success("Car updated successfully!")
	return nil
}

// DeleteCar removes a car from the catalog.
func (s *CatalogService) DeleteCar(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCarNotFound) {
			s.notifier.Error("Car not found!")
		} else {
			s.notifier.Error("Failed to delete car!")
		}
		return err
	}
	s.notifier.Success("Car deleted successfully!")
	return nil
}

// normalizeSale keeps the sold/buyer pairing consistent on every write path:
// an available car carries no buyer, and a sold car must name one.
func (s *CatalogService) normalizeSale(car *models.Car) error {
	if !car.Sold {
		car.BuyerID = nil
		return nil
	}
	if car.BuyerID == nil || *car.BuyerID == "" {
		s.notifier.Error("A sold car must have a buyer!")
		return fmt.Errorf("car %s: %w", car.ID, ErrMissingBuyer)
	}
	return nil
}
