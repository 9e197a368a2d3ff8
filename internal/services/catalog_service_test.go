package services_test

import (
	"fmt"
	"testing"

	"carhub/internal/models"
	"carhub/internal/repositories"
	"carhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCarRepository is a mock implementation of repositories.CarRepository
type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) GetAll() ([]models.Car, error) {
	args := m.Called()
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) GetAvailable() ([]models.Car, error) {
	args := m.Called()
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) GetByID(id string) (*models.Car, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarRepository) GetPurchasedBy(buyerID string) ([]models.Car, error) {
	args := m.Called(buyerID)
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) Purchase(carID, buyerID string) error {
	args := m.Called(carID, buyerID)
	return args.Error(0)
}

func (m *MockCarRepository) Create(car *models.Car) error {
	args := m.Called(car)
	return args.Error(0)
}

func (m *MockCarRepository) Update(car *models.Car) error {
	args := m.Called(car)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// recordingNotifier captures emitted notifications for assertions.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.errors = append(n.errors, message)
}

func TestCatalogService_PurchaseCar(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	// Successful purchase notifies success.
	mockRepo.On("Purchase", "2", "userA").Return(nil).Once()
	err := service.PurchaseCar("2", "userA")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Car purchased successfully!"}, notifier.successes)
	mockRepo.AssertExpectations(t)

	// Unavailable car notifies the storefront message and surfaces the error.
	mockRepo.On("Purchase", "2", "userB").
		Return(fmt.Errorf("car with ID 2: %w", repositories.ErrCarUnavailable)).Once()
	err = service.PurchaseCar("2", "userB")
	assert.ErrorIs(t, err, repositories.ErrCarUnavailable)
	assert.Equal(t, []string{"Car is not available for purchase!"}, notifier.errors)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_AddCar(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	car := &models.Car{
		ID:    "caller-picked", // the store owns ID assignment
		Make:  "Mazda",
		Model: "MX-5",
		Year:  2023,
		Price: 28000,
	}
	mockRepo.On("Create", mock.AnythingOfType("*models.Car")).Return(nil).Once()

	added, err := service.AddCar(car)
	assert.NoError(t, err)
	assert.Empty(t, added.ID, "caller-supplied ID must be discarded before the store assigns one")
	assert.Equal(t, []string{"Car added successfully!"}, notifier.successes)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_AddCarValidation(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	// Missing make and model never reaches the repository.
	_, err := service.AddCar(&models.Car{Year: 2020, Price: 10000})
	assert.Error(t, err)
	assert.Equal(t, []string{"Car details are invalid!"}, notifier.errors)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)

	// Negative price is rejected too.
	_, err = service.AddCar(&models.Car{Make: "Mazda", Model: "MX-5", Year: 2023, Price: -1})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCatalogService_UpdateCarNormalizesBuyer(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	// An unsold car sheds any stale buyer before hitting the store.
	stale := "userA"
	car := &models.Car{ID: "3", Make: "Ford", Model: "Mustang", Year: 2020, Price: 35000, Sold: false, BuyerID: &stale}
	mockRepo.On("Update", mock.MatchedBy(func(c *models.Car) bool {
		return c.ID == "3" && c.BuyerID == nil
	})).Return(nil).Once()

	err := service.UpdateCar(car)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Car updated successfully!"}, notifier.successes)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateCarRejectsSoldWithoutBuyer(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	car := &models.Car{ID: "3", Make: "Ford", Model: "Mustang", Year: 2020, Price: 35000, Sold: true}
	err := service.UpdateCar(car)
	assert.ErrorIs(t, err, services.ErrMissingBuyer)
	assert.Equal(t, []string{"A sold car must have a buyer!"}, notifier.errors)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestCatalogService_UpdateCarNotFound(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	car := &models.Car{ID: "999", Make: "Ghost", Model: "Car", Year: 2020, Price: 1000}
	mockRepo.On("Update", mock.AnythingOfType("*models.Car")).
		Return(fmt.Errorf("car with ID 999: %w", repositories.ErrCarNotFound)).Once()

	err := service.UpdateCar(car)
	assert.ErrorIs(t, err, repositories.ErrCarNotFound)
	assert.Equal(t, []string{"Car not found!"}, notifier.errors)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteCar(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteCar("1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Car deleted successfully!"}, notifier.successes)

	mockRepo.On("Delete", "999").
		Return(fmt.Errorf("car with ID 999: %w", repositories.ErrCarNotFound)).Once()
	err = service.DeleteCar("999")
	assert.ErrorIs(t, err, repositories.ErrCarNotFound)
	assert.Equal(t, []string{"Car not found!"}, notifier.errors)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ReadsDelegateToRepository(t *testing.T) {
	mockRepo := new(MockCarRepository)
	notifier := &recordingNotifier{}
	service := services.NewCatalogService(mockRepo, notifier)

	catalog := repositories.DefaultCatalog()
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	mockRepo.On("GetAvailable").Return(catalog, nil).Once()
	mockRepo.On("GetPurchasedBy", "userA").Return([]models.Car{}, nil).Once()
	mockRepo.On("GetByID", "1").Return(&catalog[0], nil).Once()

	all, err := service.GetAllCars()
	assert.NoError(t, err)
	assert.Equal(t, catalog, all)

	available, err := service.GetAvailableCars()
	assert.NoError(t, err)
	assert.Equal(t, catalog, available)

	purchases, err := service.GetUserPurchases("userA")
	assert.NoError(t, err)
	assert.Empty(t, purchases)

	car, err := service.GetCarByID("1")
	assert.NoError(t, err)
	assert.Equal(t, catalog[0], *car)

	// Reads never notify.
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.errors)
	mockRepo.AssertExpectations(t)
}
