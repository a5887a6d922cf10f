//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Tradesperson represents a service provider who applies for jobs.
type Tradesperson struct {
	ID        string    `json:"id"              db:"id"`
	FirstName string    `json:"first_name"      db:"first_name"`
	LastName  string    `json:"last_name"       db:"last_name"`
	Email     string    `json:"email"           db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Trade     string    `json:"trade"           db:"trade"`
	Postcode  string    `json:"postcode"        db:"postcode"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"`
}

// TradespeopleListOptions groups parameters for the tradesperson directory
// listing. Trade uses the same synonym expansion as job search; Location is
// a case-insensitive postcode prefix.
type TradespeopleListOptions struct {
	Page     int
	Limit    int
	Trade    string
	Location string
}

// Normalize clamps pagination values to their documented defaults.
func (o *TradespeopleListOptions) Normalize() {
	o.Page, o.Limit = normalizePage(o.Page, o.Limit)
}

// CreateTradespersonRequest represents a tradesperson signup.
type CreateTradespersonRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Trade     string  `json:"trade"`
	Postcode  string  `json:"postcode"`
}

// Validate validates the CreateTradespersonRequest fields.
func (r *CreateTradespersonRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("first_name is required and cannot be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errors.New("last_name is required and cannot be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required and cannot be empty")
	}
	if strings.TrimSpace(r.Trade) == "" {
		return errors.New("trade is required and cannot be empty")
	}
	return nil
}
