//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// JobApplication records a tradesperson's application to a job. The set of
// applications for a tradesperson is the exclusion list for that
// tradesperson's open-job search.
type JobApplication struct {
	ID             string    `json:"id"              db:"id"`
	JobID          string    `json:"job_id"          db:"job_id"`
	TradespersonID string    `json:"tradesperson_id" db:"tradesperson_id"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
}

// CreateJobApplicationRequest represents a tradesperson applying to a job.
type CreateJobApplicationRequest struct {
	JobID          string `json:"job_id"`
	TradespersonID string `json:"tradespersonId"`
}

// Validate validates the CreateJobApplicationRequest fields.
func (r *CreateJobApplicationRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return errors.New("job_id is required and cannot be empty")
	}
	if strings.TrimSpace(r.TradespersonID) == "" {
		return errors.New("tradesperson_id is required and cannot be empty")
	}
	return nil
}
