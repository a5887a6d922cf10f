package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tradehub/tradehub-api/internal/data/pgxutil"
	"github.com/tradehub/tradehub-api/internal/domain/model"
)

// JobApplicationRepo provides database operations for job applications.
type JobApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(db *sql.DB) *JobApplicationRepo {
	return &JobApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create records a tradesperson applying to a job. The unique constraint on
// (job_id, tradesperson_id) rejects duplicate applications.
func (r *JobApplicationRepo) Create(
	ctx context.Context,
	req *model.CreateJobApplicationRequest,
) (*model.JobApplication, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobApplication
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO job_applications (job_id, tradesperson_id, created_at)
			VALUES ($1, $2, $3)
			RETURNING id, job_id, tradesperson_id, created_at`,
			strings.TrimSpace(req.JobID),
			strings.TrimSpace(req.TradespersonID),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}
	return &out, nil
}

// AppliedJobIDs returns the ids of every job the tradesperson has already
// applied to. These jobs are excluded from the open listing.
func (r *JobApplicationRepo) AppliedJobIDs(ctx context.Context, tradespersonID string) ([]string, error) {
	var ids []string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT job_id FROM job_applications WHERE tradesperson_id = $1`,
			tradespersonID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		ids, err = pgx.CollectRows(rows, pgx.RowTo[string])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list applied job ids: %w", err)
	}
	return ids, nil
}
