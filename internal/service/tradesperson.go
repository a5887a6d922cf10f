package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tradehub/tradehub-api/internal/core"
	"github.com/tradehub/tradehub-api/internal/data"
	"github.com/tradehub/tradehub-api/internal/domain/model"
	apperrors "github.com/tradehub/tradehub-api/internal/errors"
)

// TradespersonServiceOptions groups dependencies for TradespersonService.
type TradespersonServiceOptions struct {
	TradespersonRepo core.TradespersonRepository
}

// TradespersonService handles tradesperson signup and the public directory.
type TradespersonService struct {
	tradespeople core.TradespersonRepository
}

// NewTradespersonService constructs a new TradespersonService.
func NewTradespersonService(opts TradespersonServiceOptions) *TradespersonService {
	return &TradespersonService{tradespeople: opts.TradespersonRepo}
}

// TradespeopleListPage is one page of the tradesperson directory.
type TradespeopleListPage struct {
	Tradespeople []*model.Tradesperson `json:"tradespeople"`
	Pagination   model.Pagination      `json:"pagination"`
}

// Create validates and stores a tradesperson signup.
func (s *TradespersonService) Create(
	ctx context.Context,
	req *model.CreateTradespersonRequest,
) (*model.Tradesperson, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	tp, err := s.tradespeople.Create(ctx, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return tp, nil
}

// Get retrieves a tradesperson by ID.
func (s *TradespersonService) Get(ctx context.Context, id string) (*model.Tradesperson, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.ValidationField("id", "Tradesperson ID is required")
	}

	tp, err := s.tradespeople.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrTradespersonNotFound) {
			return nil, apperrors.NotFound("Tradesperson not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return tp, nil
}

// List returns one page of the tradesperson directory. Trade and location
// filter the same way as the open-jobs search.
func (s *TradespersonService) List(
	ctx context.Context,
	opts *model.TradespeopleListOptions,
) (*TradespeopleListPage, error) {
	if opts == nil {
		opts = &model.TradespeopleListOptions{}
	}
	opts.Normalize()

	people, total, err := s.tradespeople.List(ctx, opts)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &TradespeopleListPage{
		Tradespeople: people,
		Pagination:   model.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}
