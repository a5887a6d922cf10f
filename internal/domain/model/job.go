// Package model defines the core data types and structures used throughout the tradehub marketplace.
package model

import (
	"errors"
	"strings"
	"time"
)

// JobStatus represents the moderation status of a posted job.
type JobStatus string

// JobAction represents an admin moderation action on a pending job.
type JobAction string

const (
	// JobStatusPending indicates a job is awaiting admin review.
	JobStatusPending JobStatus = "pending"
	// JobStatusApproved indicates a job passed admin review and is live.
	JobStatusApproved JobStatus = "approved"
	// JobStatusRejected indicates a job failed admin review.
	JobStatusRejected JobStatus = "rejected"

	// JobActionApprove approves a job and opens it for applications.
	JobActionApprove JobAction = "approve"
	// JobActionReject rejects a job and closes it for applications.
	JobActionReject JobAction = "reject"

	// ApplicationStatusOpen marks a job as accepting tradesperson applications.
	ApplicationStatusOpen = "open"

	// JobStatusAll is the admin listing filter value that matches every status.
	JobStatusAll = "all"
)

// Valid returns true if the JobStatus is valid.
func (s JobStatus) Valid() bool {
	return s == JobStatusPending || s == JobStatusApproved || s == JobStatusRejected
}

// Valid returns true if the JobAction is valid.
func (a JobAction) Valid() bool {
	return a == JobActionApprove || a == JobActionReject
}

// ParseJobAction normalizes an action string and reports whether it is supported.
func ParseJobAction(value string) (JobAction, bool) {
	action := JobAction(strings.ToLower(strings.TrimSpace(value)))
	if action.Valid() {
		return action, true
	}
	return "", false
}

// Job represents a homeowner's posted request for trade work.
type Job struct {
	ID                     string     `json:"id"                                 db:"id"`
	ClientID               string     `json:"client_id"                          db:"client_id"`
	Trade                  string     `json:"trade"                              db:"trade"`
	JobDescription         string     `json:"job_description"                    db:"job_description"`
	Postcode               string     `json:"postcode"                           db:"postcode"`
	Status                 JobStatus  `json:"status"                             db:"status"`
	IsApproved             bool       `json:"is_approved"                        db:"is_approved"`
	ApplicationStatus      *string    `json:"application_status,omitempty"       db:"application_status"`
	IsCompleted            bool       `json:"is_completed"                       db:"is_completed"`
	IsFlagged              bool       `json:"is_flagged"                         db:"is_flagged"`
	AssignedTradespersonID *string    `json:"assigned_tradesperson_id,omitempty" db:"assigned_tradesperson_id"`
	AdminNotes             *string    `json:"admin_notes,omitempty"              db:"admin_notes"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"              db:"approved_at"`
	CreatedAt              time.Time  `json:"created_at"                         db:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"                         db:"updated_at"`
}

// OpenForApplication reports whether the job satisfies the five-condition
// visibility invariant for tradesperson search: approved, not completed,
// open for applications, unassigned, and not flagged.
func (j *Job) OpenForApplication() bool {
	return j.IsApproved &&
		j.Status == JobStatusApproved &&
		!j.IsCompleted &&
		j.ApplicationStatus != nil && *j.ApplicationStatus == ApplicationStatusOpen &&
		j.AssignedTradespersonID == nil &&
		!j.IsFlagged
}

// JobWithClient represents a job joined with the posting client's contact fields.
type JobWithClient struct {
	Job
	ClientFirstName *string `json:"client_first_name,omitempty" db:"client_first_name"`
	ClientLastName  *string `json:"client_last_name,omitempty"  db:"client_last_name"`
	ClientEmail     *string `json:"client_email,omitempty"      db:"client_email"`
	ClientPhone     *string `json:"client_phone,omitempty"      db:"client_phone"`
}

// CreateJobRequest represents a client's job submission.
type CreateJobRequest struct {
	ClientID       string `json:"client_id"`
	Trade          string `json:"trade"`
	JobDescription string `json:"job_description"`
	Postcode       string `json:"postcode"`
}

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.ClientID) == "" {
		return errors.New("client_id is required and cannot be empty")
	}
	if strings.TrimSpace(r.Trade) == "" {
		return errors.New("trade is required and cannot be empty")
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return errors.New("job_description is required and cannot be empty")
	}
	if strings.TrimSpace(r.Postcode) == "" {
		return errors.New("postcode is required and cannot be empty")
	}
	return nil
}

// ApproveJobRequest represents an admin moderation request for a job.
type ApproveJobRequest struct {
	JobID      string  `json:"jobId"`
	Action     string  `json:"action"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}
