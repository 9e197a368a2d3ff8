package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"carhub/internal/models"
	"carhub/pkg/localstore"
	"carhub/pkg/notify"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Session errors.
var (
	// ErrInvalidCredentials is returned when no user matches the login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrNotLoggedIn is returned when no session is active.
	ErrNotLoggedIn = errors.New("not logged in")
)

// SessionService is the mock identity collaborator. Logins match the seeded
// users by email alone; the password is accepted unchecked because the
// storefront carries no real authentication. The active session is one user
// record persisted in its own storage slot.
type SessionService struct {
	store    localstore.Store
	key      string
	users    []models.User
	notifier notify.Notifier
	validate *validator.Validate
}

// NewSessionService creates a SessionService persisting the session under
// the given slot key.
func NewSessionService(store localstore.Store, key string, notifier notify.Notifier) *SessionService {
	return &SessionService{
		store:    store,
		key:      key,
		users:    defaultUsers(),
		notifier: notifier,
		validate: validator.New(),
	}
}

// defaultUsers is the fixed identity source the mock login matches against.
func defaultUsers() []models.User {
	return []models.User{
		{ID: "1", Email: "admin@example.com", Name: "Admin User", IsAdmin: true},
		{ID: "2", Email: "user@example.com", Name: "Regular User", IsAdmin: false},
	}
}

// Login starts a session for the user with the given email. The password is
// deliberately not verified.
func (s *SessionService) Login(email, password string) (*models.User, error) {
	_ = password

	for _, user := range s.users {
		if user.Email != email {
			continue
		}
		if err := s.saveSession(user); err != nil {
			s.notifier.Error("Failed to login!")
			return nil, err
		}
		s.notifier.Success("Login successful!")
		return &user, nil
	}

	s.notifier.Error("Invalid email or password!")
	return nil, ErrInvalidCredentials
}

// Register creates a new non-admin user and starts a session for them.
// Registered users are not added to the seeded identity source; they exist
// only as the active session, matching the mock identity model.
func (s *SessionService) Register(email, password, name string) (*models.User, error) {
	_ = password

	for _, user := range s.users {
		if user.Email == email {
			s.notifier.Error("User already exists!")
			return nil, fmt.Errorf("email %s: %w", email, ErrUserExists)
		}
	}

	user := models.User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  name,
	}
	if err := s.validate.Struct(user); err != nil {
		s.notifier.Error("Failed to register!")
		return nil, fmt.Errorf("invalid registration: %w", err)
	}

	if err := s.saveSession(user); err != nil {
		s.notifier.Error("Failed to register!")
		return nil, err
	}
	s.notifier.Success("Registration successful!")
	return &user, nil
}

// Logout ends the active session, if any.
func (s *SessionService) Logout() error {
	if err := s.store.Delete(s.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.notifier.Success("Logged out successfully!")
	return nil
}

// Current returns the active session's user, or ErrNotLoggedIn.
func (s *SessionService) Current() (*models.User, error) {
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, ErrNotLoggedIn
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

// saveSession persists the user as the active session.
func (s *SessionService) saveSession(user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(s.key, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
