// Package data implements the Postgres repositories behind the core ports.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/tradehub/tradehub-api/internal/core"
	"github.com/tradehub/tradehub-api/internal/data/database"
	"github.com/tradehub/tradehub-api/internal/data/pgxutil"
	"github.com/tradehub/tradehub-api/internal/domain/model"
)

// JobRepo provides database operations for jobs.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobRepo creates a new JobRepo with real time provider.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobRepoWithTimeProvider creates a new JobRepo with a custom time provider (useful for tests).
func NewJobRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobRepo {
	return &JobRepo{DB: db, timeProvider: tp}
}

// clientJoin joins the posting client onto job rows for display fields.
const clientJoin = `LEFT JOIN "clients" ON "clients"."id" = "jobs"."client_id"`

// jobColumns returns the job column list for RETURNING clauses.
func jobColumns() string {
	return `id, client_id, trade, job_description, postcode, status, is_approved,
		application_status, is_completed, is_flagged, assigned_tradesperson_id,
		admin_notes, approved_at, created_at, updated_at`
}

// jobWithClientColumns returns the column list for joined job listings.
// Aliases line up with the db tags on model.JobWithClient.
func jobWithClientColumns() []string {
	return []string{
		"jobs.id",
		"jobs.client_id",
		"jobs.trade",
		"jobs.job_description",
		"jobs.postcode",
		"jobs.status",
		"jobs.is_approved",
		"jobs.application_status",
		"jobs.is_completed",
		"jobs.is_flagged",
		"jobs.assigned_tradesperson_id",
		"jobs.admin_notes",
		"jobs.approved_at",
		"jobs.created_at",
		"jobs.updated_at",
		"clients.first_name AS client_first_name",
		"clients.last_name AS client_last_name",
		"clients.email AS client_email",
		"clients.phone AS client_phone",
	}
}

// Create inserts a new pending job from a client submission.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (client_id, trade, job_description, postcode, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+jobColumns(),
			strings.TrimSpace(req.ClientID),
			strings.TrimSpace(req.Trade),
			strings.TrimSpace(req.JobDescription),
			strings.TrimSpace(req.Postcode),
			model.JobStatusPending,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a job with joined client fields by ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.JobWithClient, error) {
	opts := database.NewListQueryOptions("jobs",
		database.WithColumns(jobWithClientColumns()...),
		database.WithJoin(clientJoin),
		database.WithCondition(database.WhereCond("jobs.id", database.Equal, id)),
	)
	query, args := database.BuildListQuery(opts)

	var job model.JobWithClient
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		job, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobWithClient])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return &job, nil
}

// ListAdmin retrieves one page of jobs for the admin review listing, plus the
// total count computed with the identical filter predicate.
func (r *JobRepo) ListAdmin(
	ctx context.Context,
	opts *model.JobAdminListOptions,
) ([]*model.JobWithClient, int, error) {
	if opts == nil {
		opts = &model.JobAdminListOptions{}
	}
	opts.Normalize()

	queryOpts := r.buildAdminQueryOptions(opts)
	return r.runListing(ctx, queryOpts)
}

// ListOpen retrieves one page of jobs visible to tradespeople for
// application, plus the total count computed with the identical predicate.
// Jobs whose ids appear in excludeJobIDs are omitted; an empty exclusion
// list leaves the result set untouched.
func (r *JobRepo) ListOpen(
	ctx context.Context,
	opts *model.OpenJobsListOptions,
	excludeJobIDs []string,
) ([]*model.JobWithClient, int, error) {
	if opts == nil {
		opts = &model.OpenJobsListOptions{}
	}
	opts.Normalize()

	queryOpts := r.buildOpenQueryOptions(opts, excludeJobIDs)
	return r.runListing(ctx, queryOpts)
}

// Approve applies the admin moderation transition as a plain field
// overwrite and returns the updated row.
func (r *JobRepo) Approve(ctx context.Context, params core.ApproveJobParams) (*model.Job, error) {
	if !params.Action.Valid() {
		return nil, fmt.Errorf("invalid job action %q", params.Action)
	}

	approve := params.Action == model.JobActionApprove
	now := r.timeProvider.Now().UTC()

	status := model.JobStatusRejected
	var applicationStatus *string
	var approvedAt any
	if approve {
		status = model.JobStatusApproved
		open := model.ApplicationStatusOpen
		applicationStatus = &open
		approvedAt = now
	}

	var out model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE jobs SET
				is_approved = $1,
				status = $2,
				application_status = $3,
				admin_notes = $4,
				approved_at = $5,
				updated_at = $6
			WHERE id = $7
			RETURNING `+jobColumns(),
			approve,
			status,
			applicationStatus,
			params.AdminNotes,
			approvedAt,
			now,
			params.JobID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	return &out, nil
}

// runListing executes the listing query and its count twin concurrently and
// collects the page plus the total.
func (r *JobRepo) runListing(
	ctx context.Context,
	queryOpts *database.ListQueryOptions,
) ([]*model.JobWithClient, int, error) {
	listQuery, listArgs := database.BuildListQuery(queryOpts)
	countQuery, countArgs := database.BuildListQuery(database.CountOptions(queryOpts))

	var (
		rowsOut []model.JobWithClient
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pgxutil.WithPgxConn(gctx, r.DB, func(conn *pgx.Conn) error {
			rows, err := conn.Query(gctx, listQuery, listArgs...)
			if err != nil {
				return err
			}
			defer rows.Close()
			rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobWithClient])
			return err
		})
	})
	g.Go(func() error {
		return pgxutil.WithPgxConn(gctx, r.DB, func(conn *pgx.Conn) error {
			return conn.QueryRow(gctx, countQuery, countArgs...).Scan(&total)
		})
	})
	// A count failure fails the request the same way a listing failure
	// does: returning a page without a trustworthy total silently breaks
	// pagination downstream.
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	res := make([]*model.JobWithClient, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, total, nil
}

// buildAdminQueryOptions builds query options for the admin job listing.
func (r *JobRepo) buildAdminQueryOptions(opts *model.JobAdminListOptions) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(jobWithClientColumns()...),
		database.WithJoin(clientJoin),
		database.WithOrderBy("jobs.created_at DESC", "jobs.id DESC"),
		database.WithLimit(opts.Limit),
		database.WithOffset(model.Offset(opts.Page, opts.Limit)),
	}

	if status := strings.TrimSpace(opts.Status); status != "" && status != model.JobStatusAll {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("jobs.status", database.Equal, status),
		))
	}

	if search := strings.TrimSpace(opts.Search); search != "" {
		pattern := database.ContainsPattern(search)
		queryOpts = append(queryOpts, database.WithCondition(database.WhereOr(
			database.WhereCond("jobs.trade", database.ILike, pattern),
			database.WhereCond("jobs.job_description", database.ILike, pattern),
			database.WhereCond("jobs.postcode", database.ILike, pattern),
		)))
	}

	return database.NewListQueryOptions("jobs", queryOpts...)
}

// buildOpenQueryOptions builds query options for the tradesperson-facing
// listing. The five open-for-application conditions are always present and
// independent of user input.
func (r *JobRepo) buildOpenQueryOptions(
	opts *model.OpenJobsListOptions,
	excludeJobIDs []string,
) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(jobWithClientColumns()...),
		database.WithJoin(clientJoin),
		database.WithCondition(database.WhereCond("jobs.is_approved", database.Equal, true)),
		database.WithCondition(database.WhereCond("jobs.status", database.Equal, model.JobStatusApproved)),
		database.WithCondition(database.WhereCond("jobs.is_completed", database.Equal, false)),
		database.WithCondition(database.WhereCond("jobs.application_status", database.Equal, model.ApplicationStatusOpen)),
		database.WithCondition(database.WhereNull("jobs.assigned_tradesperson_id")),
		database.WithCondition(database.WhereCond("jobs.is_flagged", database.Equal, false)),
		database.WithOrderBy("jobs.created_at DESC", "jobs.id DESC"),
		database.WithLimit(opts.Limit),
		database.WithOffset(model.Offset(opts.Page, opts.Limit)),
	}

	if len(excludeJobIDs) > 0 {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("jobs.id", database.NotIn, excludeJobIDs),
		))
	}

	if trade := strings.TrimSpace(opts.Trade); trade != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			tradeMatchCondition("jobs.trade", trade),
		))
	}

	if location := strings.TrimSpace(opts.Location); location != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("jobs.postcode", database.ILike, database.PrefixPattern(location)),
		))
	}

	return database.NewListQueryOptions("jobs", queryOpts...)
}

// tradeMatchCondition broadens a trade filter into the OR of an exact match,
// a case-insensitive substring match, and the fixed synonym expansions.
func tradeMatchCondition(field, trade string) database.Condition {
	terms := model.TradeSearchTerms(trade)
	conds := make([]database.Condition, 0, len(terms)+1)
	conds = append(conds, database.WhereCond(field, database.Equal, trade))
	for _, term := range terms {
		conds = append(conds, database.WhereCond(field, database.ILike, database.ContainsPattern(term)))
	}
	return database.WhereOr(conds...)
}
