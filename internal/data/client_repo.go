package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tradehub/tradehub-api/internal/data/pgxutil"
	"github.com/tradehub/tradehub-api/internal/domain/model"
)

// ClientRepo provides database operations for clients.
type ClientRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

func clientColumns() string {
	return `id, first_name, last_name, email, phone, created_at, updated_at`
}

// Create inserts a new client.
func (r *ClientRepo) Create(ctx context.Context, req *model.CreateClientRequest) (*model.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Client
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO clients (first_name, last_name, email, phone, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING `+clientColumns(),
			strings.TrimSpace(req.FirstName),
			strings.TrimSpace(req.LastName),
			strings.TrimSpace(req.Email),
			req.Phone,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Client])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a client by ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var out model.Client
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+clientColumns()+` FROM clients WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Client])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return &out, nil
}
