package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tradehub/tradehub-api/internal/data"
	"github.com/tradehub/tradehub-api/internal/domain/model"
	apperrors "github.com/tradehub/tradehub-api/internal/errors"
	"github.com/tradehub/tradehub-api/internal/mocks"
)

func TestTradespersonService_List_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTradespersonRepository(ctrl)
	svc := NewTradespersonService(TradespersonServiceOptions{TradespersonRepo: mockRepo})
	ctx := context.Background()

	people := []*model.Tradesperson{{ID: "tp-1", Trade: "Plumbing"}}
	mockRepo.EXPECT().
		List(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts *model.TradespeopleListOptions) ([]*model.Tradesperson, int, error) {
			assert.Equal(t, 1, opts.Page)
			assert.Equal(t, 10, opts.Limit)
			return people, 11, nil
		})

	page, err := svc.List(ctx, &model.TradespeopleListOptions{Page: -3, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, page.Tradespeople, 1)
	assert.Equal(t, 11, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasMore)
}

func TestTradespersonService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTradespersonRepository(ctrl)
	svc := NewTradespersonService(TradespersonServiceOptions{TradespersonRepo: mockRepo})

	_, err := svc.Create(context.Background(), &model.CreateTradespersonRequest{
		FirstName: "Sam",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestTradespersonService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTradespersonRepository(ctrl)
	svc := NewTradespersonService(TradespersonServiceOptions{TradespersonRepo: mockRepo})

	mockRepo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, data.ErrTradespersonNotFound)

	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))
}
