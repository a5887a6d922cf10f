// Package testutil provides testing utilities and helpers for the tradehub API.
package testutil

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tradehub/tradehub-api/internal/domain/model"
)

// ClientRequestBuilder provides a fluent interface for building CreateClientRequest objects for testing.
type ClientRequestBuilder struct {
	req *model.CreateClientRequest
}

// NewClientRequest creates a new ClientRequestBuilder with sensible defaults.
// Emails are randomized so repeated builds never trip the unique constraint.
func NewClientRequest() *ClientRequestBuilder {
	return &ClientRequestBuilder{
		req: &model.CreateClientRequest{
			FirstName: "Jane",
			LastName:  "Homeowner",
			Email:     fmt.Sprintf("client-%s@example.com", uuid.NewString()[:8]),
		},
	}
}

// WithName sets the client first and last names.
func (b *ClientRequestBuilder) WithName(first, last string) *ClientRequestBuilder {
	b.req.FirstName = first
	b.req.LastName = last
	return b
}

// WithEmail sets the client email.
func (b *ClientRequestBuilder) WithEmail(email string) *ClientRequestBuilder {
	b.req.Email = email
	return b
}

// WithPhone sets the client phone.
func (b *ClientRequestBuilder) WithPhone(phone string) *ClientRequestBuilder {
	b.req.Phone = &phone
	return b
}

// Build returns the constructed CreateClientRequest.
func (b *ClientRequestBuilder) Build() *model.CreateClientRequest {
	return b.req
}

// TradespersonRequestBuilder provides a fluent interface for building CreateTradespersonRequest objects.
type TradespersonRequestBuilder struct {
	req *model.CreateTradespersonRequest
}

// NewTradespersonRequest creates a new TradespersonRequestBuilder with sensible defaults.
func NewTradespersonRequest() *TradespersonRequestBuilder {
	return &TradespersonRequestBuilder{
		req: &model.CreateTradespersonRequest{
			FirstName: "Sam",
			LastName:  "Sparks",
			Email:     fmt.Sprintf("trades-%s@example.com", uuid.NewString()[:8]),
			Trade:     "Electrician",
			Postcode:  "SW1A 1AA",
		},
	}
}

// WithName sets the tradesperson first and last names.
func (b *TradespersonRequestBuilder) WithName(first, last string) *TradespersonRequestBuilder {
	b.req.FirstName = first
	b.req.LastName = last
	return b
}

// WithEmail sets the tradesperson email.
func (b *TradespersonRequestBuilder) WithEmail(email string) *TradespersonRequestBuilder {
	b.req.Email = email
	return b
}

// WithTrade sets the tradesperson trade.
func (b *TradespersonRequestBuilder) WithTrade(trade string) *TradespersonRequestBuilder {
	b.req.Trade = trade
	return b
}

// WithPostcode sets the tradesperson postcode.
func (b *TradespersonRequestBuilder) WithPostcode(postcode string) *TradespersonRequestBuilder {
	b.req.Postcode = postcode
	return b
}

// Build returns the constructed CreateTradespersonRequest.
func (b *TradespersonRequestBuilder) Build() *model.CreateTradespersonRequest {
	return b.req
}

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a new JobRequestBuilder with sensible defaults.
// ClientID must be set to a real client before the request reaches the
// database; the FK rejects anything else.
func NewJobRequest(clientID string) *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			ClientID:       clientID,
			Trade:          "Plumbing",
			JobDescription: "Fix a leaking kitchen tap",
			Postcode:       "M1 2AB",
		},
	}
}

// WithTrade sets the job trade.
func (b *JobRequestBuilder) WithTrade(trade string) *JobRequestBuilder {
	b.req.Trade = trade
	return b
}

// WithDescription sets the job description.
func (b *JobRequestBuilder) WithDescription(description string) *JobRequestBuilder {
	b.req.JobDescription = description
	return b
}

// WithPostcode sets the job postcode.
func (b *JobRequestBuilder) WithPostcode(postcode string) *JobRequestBuilder {
	b.req.Postcode = postcode
	return b
}

// Build returns the constructed CreateJobRequest.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	return b.req
}
