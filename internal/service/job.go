// Package service implements the business logic between the HTTP layer and
// the repositories.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/tradehub/tradehub-api/internal/core"
	"github.com/tradehub/tradehub-api/internal/data"
	"github.com/tradehub/tradehub-api/internal/domain/model"
	apperrors "github.com/tradehub/tradehub-api/internal/errors"
)

// defaultAppliedCacheTTL bounds how stale a tradesperson's exclusion list may
// be between applications.
const defaultAppliedCacheTTL = time.Minute

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	JobRepo         core.JobRepository
	ApplicationRepo core.JobApplicationRepository
	Cache           core.CacheRepository // optional
	CacheTTL        time.Duration
	Logger          *slog.Logger
}

// JobService orchestrates job intake, moderation, and the two search
// listings.
type JobService struct {
	jobs     core.JobRepository
	apps     core.JobApplicationRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultAppliedCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		jobs:     opts.JobRepo,
		apps:     opts.ApplicationRepo,
		cache:    opts.Cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// JobListPage is one page of a job listing with its pagination metadata.
type JobListPage struct {
	Jobs       []*model.JobWithClient `json:"jobs"`
	Pagination model.Pagination       `json:"pagination"`
}

// Create validates and stores a client's job submission. New jobs always
// start pending regardless of input.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// Get retrieves a single job with its client contact fields.
func (s *JobService) Get(ctx context.Context, id string) (*model.JobWithClient, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.ValidationField("id", "Job ID is required")
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// AdminList returns one page of the admin review listing. The total reflects
// the same status and search filters as the page itself.
func (s *JobService) AdminList(ctx context.Context, opts *model.JobAdminListOptions) (*JobListPage, error) {
	if opts == nil {
		opts = &model.JobAdminListOptions{}
	}
	opts.Normalize()

	jobs, total, err := s.jobs.ListAdmin(ctx, opts)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &JobListPage{
		Jobs:       jobs,
		Pagination: model.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

// OpenList returns one page of jobs a tradesperson can apply to. When a
// tradesperson ID is given, jobs they already applied to are excluded.
func (s *JobService) OpenList(ctx context.Context, opts *model.OpenJobsListOptions) (*JobListPage, error) {
	if opts == nil {
		opts = &model.OpenJobsListOptions{}
	}
	opts.Normalize()

	var excludeJobIDs []string
	if tradespersonID := strings.TrimSpace(opts.TradespersonID); tradespersonID != "" {
		ids, err := s.appliedJobIDs(ctx, tradespersonID)
		if err != nil {
			return nil, apperrors.MapDBError(err)
		}
		excludeJobIDs = ids
	}

	jobs, total, err := s.jobs.ListOpen(ctx, opts, excludeJobIDs)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &JobListPage{
		Jobs:       jobs,
		Pagination: model.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

// Approve applies an admin moderation action to a job. The action always
// overwrites the moderation fields, so re-moderating a job is allowed.
func (s *JobService) Approve(ctx context.Context, req *model.ApproveJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if strings.TrimSpace(req.JobID) == "" {
		return nil, apperrors.ValidationField("jobId", "Job ID is required")
	}
	action, ok := model.ParseJobAction(req.Action)
	if !ok {
		return nil, apperrors.ValidationField("action", "Invalid action. Must be \"approve\" or \"reject\"")
	}

	job, err := s.jobs.Approve(ctx, core.ApproveJobParams{
		JobID:      req.JobID,
		Action:     action,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			return nil, apperrors.NotFound("Job not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// Apply records a tradesperson's application to an open job.
func (s *JobService) Apply(ctx context.Context, req *model.CreateJobApplicationRequest) (*model.JobApplication, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.Get(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if !job.OpenForApplication() {
		return nil, apperrors.Conflict("Job is not open for applications")
	}

	app, err := s.apps.Create(ctx, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	s.invalidateAppliedCache(ctx, req.TradespersonID)
	return app, nil
}

// appliedJobIDs returns the tradesperson's exclusion list, served from the
// cache when possible. Cache failures degrade to a direct query.
func (s *JobService) appliedJobIDs(ctx context.Context, tradespersonID string) ([]string, error) {
	key := appliedCacheKey(tradespersonID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("applied-jobs cache read failed", "error", err)
		} else if cached != nil {
			var ids []string
			if err := json.Unmarshal(cached, &ids); err == nil {
				return ids, nil
			}
			s.logger.Warn("applied-jobs cache entry corrupt, discarding", "key", key)
		}
	}

	ids, err := s.apps.AppliedJobIDs(ctx, tradespersonID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(ids); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.cacheTTL); err != nil {
				s.logger.Warn("applied-jobs cache write failed", "error", err)
			}
		}
	}
	return ids, nil
}

func (s *JobService) invalidateAppliedCache(ctx context.Context, tradespersonID string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Delete(ctx, appliedCacheKey(tradespersonID)); err != nil {
		s.logger.Warn("applied-jobs cache invalidation failed", "error", err)
	}
}

func appliedCacheKey(tradespersonID string) string {
	return "tradehub:applied_jobs:" + tradespersonID
}
