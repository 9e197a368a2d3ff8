package models

// User represents a storefront user as held by the session collaborator.
// There is no credential material here: authentication is mocked and the
// session is just this record persisted locally.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	IsAdmin bool   `json:"isAdmin"`
}
