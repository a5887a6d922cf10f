// Package core defines the ports between the service layer and the data
// layer (hexagonal architecture). Services depend on these interfaces, not
// on concrete repository implementations.
package core

import (
	"context"
	"time"

	"github.com/tradehub/tradehub-api/internal/domain/model"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.JobWithClient, error)
	// ListAdmin returns one page of jobs with joined client fields for the
	// admin review listing, plus the total count of the identical predicate.
	ListAdmin(ctx context.Context, opts *model.JobAdminListOptions) ([]*model.JobWithClient, int, error)
	// ListOpen returns one page of open-for-application jobs visible to a
	// tradesperson, plus the total count of the identical predicate. Jobs
	// whose ids appear in excludeJobIDs are omitted; an empty slice excludes
	// nothing.
	ListOpen(ctx context.Context, opts *model.OpenJobsListOptions, excludeJobIDs []string) ([]*model.JobWithClient, int, error)
	// Approve applies the admin moderation transition and returns the
	// updated row. It is a plain field overwrite: re-invoking it on an
	// already-moderated job rewrites the same fields.
	Approve(ctx context.Context, params ApproveJobParams) (*model.Job, error)
}

// ApproveJobParams groups parameters for JobRepository.Approve.
type ApproveJobParams struct {
	JobID      string
	Action     model.JobAction
	AdminNotes *string
}

// JobApplicationRepository defines the interface for job application data.
type JobApplicationRepository interface {
	Create(ctx context.Context, req *model.CreateJobApplicationRequest) (*model.JobApplication, error)
	// AppliedJobIDs resolves the full set of job ids the tradesperson has
	// applied to, for use as a search exclusion list.
	AppliedJobIDs(ctx context.Context, tradespersonID string) ([]string, error)
}

// TradespersonRepository defines the interface for tradesperson data operations.
type TradespersonRepository interface {
	Create(ctx context.Context, req *model.CreateTradespersonRequest) (*model.Tradesperson, error)
	GetByID(ctx context.Context, id string) (*model.Tradesperson, error)
	// List returns one page of the tradesperson directory plus the total
	// count of the identical predicate.
	List(ctx context.Context, opts *model.TradespeopleListOptions) ([]*model.Tradesperson, int, error)
}

// ClientRepository defines the interface for client data operations.
type ClientRepository interface {
	Create(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}
