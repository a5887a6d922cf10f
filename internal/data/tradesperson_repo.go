package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/tradehub/tradehub-api/internal/data/database"
	"github.com/tradehub/tradehub-api/internal/data/pgxutil"
	"github.com/tradehub/tradehub-api/internal/domain/model"
)

// TradespersonRepo provides database operations for tradespeople.
type TradespersonRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTradespersonRepo creates a new TradespersonRepo.
func NewTradespersonRepo(db *sql.DB) *TradespersonRepo {
	return &TradespersonRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

func tradespersonColumns() string {
	return `id, first_name, last_name, email, phone, trade, postcode, created_at, updated_at`
}

// Create inserts a new tradesperson.
func (r *TradespersonRepo) Create(
	ctx context.Context,
	req *model.CreateTradespersonRequest,
) (*model.Tradesperson, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Tradesperson
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO tradespeople (first_name, last_name, email, phone, trade, postcode, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING `+tradespersonColumns(),
			strings.TrimSpace(req.FirstName),
			strings.TrimSpace(req.LastName),
			strings.TrimSpace(req.Email),
			req.Phone,
			strings.TrimSpace(req.Trade),
			strings.TrimSpace(req.Postcode),
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tradesperson])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create tradesperson: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a tradesperson by ID.
func (r *TradespersonRepo) GetByID(ctx context.Context, id string) (*model.Tradesperson, error) {
	var out model.Tradesperson
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+tradespersonColumns()+` FROM tradespeople WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tradesperson])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTradespersonNotFound
		}
		return nil, fmt.Errorf("failed to get tradesperson by ID: %w", err)
	}
	return &out, nil
}

// List retrieves one page of the tradesperson directory with the total count
// computed under the identical filter predicate. Trade filtering reuses the
// synonym expansion from job search.
func (r *TradespersonRepo) List(
	ctx context.Context,
	opts *model.TradespeopleListOptions,
) ([]*model.Tradesperson, int, error) {
	if opts == nil {
		opts = &model.TradespeopleListOptions{}
	}
	opts.Normalize()

	queryOpts := []database.ListQueryOption{
		database.WithOrderBy("created_at DESC", "id DESC"),
		database.WithLimit(opts.Limit),
		database.WithOffset(model.Offset(opts.Page, opts.Limit)),
	}
	if trade := strings.TrimSpace(opts.Trade); trade != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			tradeMatchCondition("trade", trade),
		))
	}
	if location := strings.TrimSpace(opts.Location); location != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("postcode", database.ILike, database.PrefixPattern(location)),
		))
	}

	listing := database.NewListQueryOptions("tradespeople", queryOpts...)
	listQuery, listArgs := database.BuildListQuery(listing)
	countQuery, countArgs := database.BuildListQuery(database.CountOptions(listing))

	var (
		rowsOut []model.Tradesperson
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
			rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Tradesperson])
			return err
		})
	})
	g.Go(func() error {
		return pgxutil.WithPgxConn(gctx, r.DB, func(conn *pgx.Conn) error {
			return conn.QueryRow(gctx, countQuery, countArgs...).Scan(&total)
		})
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("failed to list tradespeople: %w", err)
	}

	res := make([]*model.Tradesperson, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, total, nil
}
