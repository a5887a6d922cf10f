//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Client represents a homeowner who posts jobs.
type Client struct {
	ID        string    `json:"id"              db:"id"`
	FirstName string    `json:"first_name"      db:"first_name"`
	LastName  string    `json:"last_name"       db:"last_name"`
	Email     string    `json:"email"           db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"`
}

// CreateClientRequest represents a client signup.
type CreateClientRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
}

// Validate validates the CreateClientRequest fields.
func (r *CreateClientRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("first_name is required and cannot be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errors.New("last_name is required and cannot be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	return nil
}
