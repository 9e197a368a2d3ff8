package repositories

import (
	"encoding/json"
	"fmt"
	"sync"

	"carhub/internal/models"
	"carhub/pkg/localstore"

	"github.com/google/uuid"
)

// SlotCarRepository persists the whole catalog as one JSON array in a single
// localstore slot. Every operation is a full read of the collection, and
// every mutation writes the full collection back; there is no incremental
// diffing. The mutex serializes goroutines inside this process; across
// processes the last writer wins at whole-collection granularity, a
// deliberate trade-off for a single-session tool.
type SlotCarRepository struct {
	store localstore.Store
	key   string
	seed  []models.Car
	mu    sync.Mutex
}

// NewSlotCarRepository creates a repository over the given store and slot
// key. The seed catalog is written on the first access that finds the slot
// absent; after that the slot persists independently of the seed.
func NewSlotCarRepository(store localstore.Store, key string, seed []models.Car) *SlotCarRepository {
	return &SlotCarRepository{
		store: store,
		key:   key,
		seed:  seed,
	}
}

// load reads the catalog slot, seeding it first if it does not exist yet.
// Callers must hold the mutex.
func (r *SlotCarRepository) load() ([]models.Car, error) {
	raw, ok, err := r.store.Get(r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if !ok {
		if err := r.save(r.seed); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		return append([]models.Car(nil), r.seed...), nil
	}

	var cars []models.Car
	if err := json.Unmarshal(raw, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return cars, nil
}

// save serializes the full collection into the slot. Callers must hold the
// mutex.
func (r *SlotCarRepository) save(cars []models.Car) error {
	raw, err := json.Marshal(cars)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := r.store.Set(r.key, raw); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}

// GetAll returns every car in storage order.
func (r *SlotCarRepository) GetAll() ([]models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// GetAvailable returns the unsold cars in storage order.
func (r *SlotCarRepository) GetAvailable() ([]models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return nil, err
	}

	available := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if !car.Sold {
			available = append(available, car)
		}
	}
	return available, nil
}

// GetByID returns the car with the given ID by linear scan.
func (r *SlotCarRepository) GetByID(id string) (*models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range cars {
		if cars[i].ID == id {
			car := cars[i]
			return &car, nil
		}
	}
	return nil, fmt.Errorf("car with ID %s: %w", id, ErrCarNotFound)
}

// GetPurchasedBy returns the cars bought by the given user, in storage order.
func (r *SlotCarRepository) GetPurchasedBy(buyerID string) ([]models.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return nil, err
	}

	purchased := make([]models.Car, 0)
	for _, car := range cars {
		if car.PurchasedBy(buyerID) {
			purchased = append(purchased, car)
		}
	}
	return purchased, nil
}

// Purchase marks the car sold and records the buyer. A nonexistent or
// already-sold car returns ErrCarUnavailable and leaves the catalog as is.
func (r *SlotCarRepository) Purchase(carID, buyerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return err
	}

	for i := range cars {
		if cars[i].ID != carID {
			continue
		}
		if cars[i].Sold {
			return fmt.Errorf("car with ID %s: %w", carID, ErrCarUnavailable)
		}
		cars[i].Sold = true
		cars[i].BuyerID = &buyerID
		return r.save(cars)
	}
	return fmt.Errorf("car with ID %s: %w", carID, ErrCarUnavailable)
}

// Create assigns a fresh ID if the car has none and appends it to the
// catalog.
func (r *SlotCarRepository) Create(car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return err
	}

	if car.ID == "" {
		car.ID = uuid.New().String()
	}
	cars = append(cars, *car)
	return r.save(cars)
}

// Update replaces the stored car with the same ID, keeping its position.
func (r *SlotCarRepository) Update(car *models.Car) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return err
	}

	for i := range cars {
		if cars[i].ID == car.ID {
			cars[i] = *car
			return r.save(cars)
		}
	}
	return fmt.Errorf("car with ID %s: %w", car.ID, ErrCarNotFound)
}

// Delete removes the car with the given ID from the catalog.
func (r *SlotCarRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.ID != id {
			kept = append(kept, car)
		}
	}
	if len(kept) == len(cars) {
		return fmt.Errorf("car with ID %s: %w", id, ErrCarNotFound)
	}
	return r.save(kept)
}
