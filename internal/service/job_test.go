package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tradehub/tradehub-api/internal/core"
	"github.com/tradehub/tradehub-api/internal/data"
	"github.com/tradehub/tradehub-api/internal/domain/model"
	apperrors "github.com/tradehub/tradehub-api/internal/errors"
	"github.com/tradehub/tradehub-api/internal/mocks"
	"github.com/tradehub/tradehub-api/internal/testutil"
)

func openJobFixture(id string) *model.JobWithClient {
	open := model.ApplicationStatusOpen
	return &model.JobWithClient{
		Job: model.Job{
			ID:                id,
			ClientID:          "client-1",
			Trade:             "Plumbing",
			JobDescription:    "Fix tap",
			Postcode:          "M1 2AB",
			Status:            model.JobStatusApproved,
			IsApproved:        true,
			ApplicationStatus: &open,
			CreatedAt:         time.Now(),
		},
	}
}

func TestJobService_AdminList_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})
	ctx := context.Background()

	jobs := []*model.JobWithClient{openJobFixture("job-1"), openJobFixture("job-2")}
	mockJobs.EXPECT().
		ListAdmin(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts *model.JobAdminListOptions) ([]*model.JobWithClient, int, error) {
			// Out-of-range values must arrive normalized at the repository.
			assert.Equal(t, 1, opts.Page)
			assert.Equal(t, 2, opts.Limit)
			return jobs, 5, nil
		})

	page, err := svc.AdminList(ctx, &model.JobAdminListOptions{Page: 0, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 2)
	assert.Equal(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasMore)
}

func TestJobService_AdminList_LastPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})

	mockJobs.EXPECT().
		ListAdmin(gomock.Any(), gomock.Any()).
		Return([]*model.JobWithClient{openJobFixture("job-5")}, 5, nil)

	page, err := svc.AdminList(context.Background(), &model.JobAdminListOptions{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasMore)
}

func TestJobService_OpenList_NoTradesperson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs, ApplicationRepo: mockApps})
	ctx := context.Background()

	// Without a tradesperson ID the exclusion lookup is skipped entirely.
	mockJobs.EXPECT().
		ListOpen(ctx, gomock.Any(), nil).
		Return([]*model.JobWithClient{openJobFixture("job-1")}, 1, nil)

	page, err := svc.OpenList(ctx, &model.OpenJobsListOptions{})
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 1)
	assert.Equal(t, 1, page.Pagination.Total)
	assert.False(t, page.Pagination.HasMore)
}

func TestJobService_OpenList_ExcludesAppliedJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs, ApplicationRepo: mockApps})
	ctx := context.Background()

	applied := []string{"job-1", "job-2"}
	mockApps.EXPECT().AppliedJobIDs(ctx, "tp-1").Return(applied, nil)
	mockJobs.EXPECT().
		ListOpen(ctx, gomock.Any(), applied).
		Return([]*model.JobWithClient{openJobFixture("job-3")}, 1, nil)

	page, err := svc.OpenList(ctx, &model.OpenJobsListOptions{TradespersonID: "tp-1"})
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 1)
}

func TestJobService_OpenList_AppliedCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := NewJobService(JobServiceOptions{
		JobRepo:         mockJobs,
		ApplicationRepo: mockApps,
		Cache:           mockCache,
	})
	ctx := context.Background()

	applied := []string{"job-1"}
	encoded, err := json.Marshal(applied)
	require.NoError(t, err)

	// Cache hit: the application repository is never queried.
	mockCache.EXPECT().Get(ctx, "tradehub:applied_jobs:tp-1").Return(encoded, nil)
	mockJobs.EXPECT().
		ListOpen(ctx, gomock.Any(), applied).
		Return(nil, 0, nil)

	_, err = svc.OpenList(ctx, &model.OpenJobsListOptions{TradespersonID: "tp-1"})
	require.NoError(t, err)
}

func TestJobService_OpenList_AppliedCacheMissPopulates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := NewJobService(JobServiceOptions{
		JobRepo:         mockJobs,
		ApplicationRepo: mockApps,
		Cache:           mockCache,
		CacheTTL:        30 * time.Second,
	})
	ctx := context.Background()

	applied := []string{"job-1"}
	encoded, err := json.Marshal(applied)
	require.NoError(t, err)

	mockCache.EXPECT().Get(ctx, "tradehub:applied_jobs:tp-1").Return(nil, nil)
	mockApps.EXPECT().AppliedJobIDs(ctx, "tp-1").Return(applied, nil)
	mockCache.EXPECT().Set(ctx, "tradehub:applied_jobs:tp-1", encoded, 30*time.Second).Return(nil)
	mockJobs.EXPECT().ListOpen(ctx, gomock.Any(), applied).Return(nil, 0, nil)

	_, err = svc.OpenList(ctx, &model.OpenJobsListOptions{TradespersonID: "tp-1"})
	require.NoError(t, err)
}

func TestJobService_OpenList_CacheFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := NewJobService(JobServiceOptions{
		JobRepo:         mockJobs,
		ApplicationRepo: mockApps,
		Cache:           mockCache,
	})
	ctx := context.Background()

	mockCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, assert.AnError)
	mockApps.EXPECT().AppliedJobIDs(ctx, "tp-1").Return(nil, nil)
	mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
	mockJobs.EXPECT().ListOpen(ctx, gomock.Any(), gomock.Nil()).Return(nil, 0, nil)

	_, err := svc.OpenList(ctx, &model.OpenJobsListOptions{TradespersonID: "tp-1"})
	require.NoError(t, err)
}

func TestJobService_Approve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})
	ctx := context.Background()

	notes := "verified"
	expected := &model.Job{ID: "job-1", Status: model.JobStatusApproved, IsApproved: true}
	mockJobs.EXPECT().
		Approve(ctx, core.ApproveJobParams{
			JobID:      "job-1",
			Action:     model.JobActionApprove,
			AdminNotes: &notes,
		}).
		Return(expected, nil)

	job, err := svc.Approve(ctx, &model.ApproveJobRequest{
		JobID:      "job-1",
		Action:     "APPROVE", // case-insensitive
		AdminNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, job)
}

func TestJobService_Approve_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})
	ctx := context.Background()

	_, err := svc.Approve(ctx, nil)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Approve(ctx, &model.ApproveJobRequest{Action: "approve"})
	require.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "jobId", apperrors.GetField(err))

	_, err = svc.Approve(ctx, &model.ApproveJobRequest{JobID: "job-1", Action: "publish"})
	require.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "action", apperrors.GetField(err))
}

func TestJobService_Approve_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})

	mockJobs.EXPECT().
		Approve(gomock.Any(), gomock.Any()).
		Return(nil, data.ErrJobNotFound)

	_, err := svc.Approve(context.Background(), &model.ApproveJobRequest{
		JobID:  "missing",
		Action: "reject",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_Apply_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	mockCache := mocks.NewMockCacheRepository(ctrl)
	svc := NewJobService(JobServiceOptions{
		JobRepo:         mockJobs,
		ApplicationRepo: mockApps,
		Cache:           mockCache,
	})
	ctx := context.Background()

	req := &model.CreateJobApplicationRequest{JobID: "job-1", TradespersonID: "tp-1"}
	expected := &model.JobApplication{ID: "app-1", JobID: "job-1", TradespersonID: "tp-1"}

	mockJobs.EXPECT().GetByID(ctx, "job-1").Return(openJobFixture("job-1"), nil)
	mockApps.EXPECT().Create(ctx, req).Return(expected, nil)
	// A successful application invalidates the exclusion-list cache.
	mockCache.EXPECT().Delete(ctx, "tradehub:applied_jobs:tp-1").Return(true, nil)

	app, err := svc.Apply(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, app)
}

func TestJobService_Apply_JobNotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs, ApplicationRepo: mockApps})
	ctx := context.Background()

	closed := openJobFixture("job-1")
	closed.IsFlagged = true
	mockJobs.EXPECT().GetByID(ctx, "job-1").Return(closed, nil)

	_, err := svc.Apply(ctx, &model.CreateJobApplicationRequest{
		JobID:          "job-1",
		TradespersonID: "tp-1",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestJobService_Apply_JobNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	mockApps := mocks.NewMockJobApplicationRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs, ApplicationRepo: mockApps})

	mockJobs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrJobNotFound)

	_, err := svc.Apply(context.Background(), &model.CreateJobApplicationRequest{
		JobID:          "missing",
		TradespersonID: "tp-1",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestJobService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})

	_, err := svc.Create(context.Background(), &model.CreateJobRequest{
		Trade: "Plumbing",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mocks.NewMockJobRepository(ctrl)
	svc := NewJobService(JobServiceOptions{JobRepo: mockJobs})
	ctx := context.Background()

	expected := openJobFixture("job-1")
	expected.ClientFirstName = testutil.StringPtr("Jane")
	mockJobs.EXPECT().GetByID(ctx, "job-1").Return(expected, nil)

	job, err := svc.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, expected, job)

	_, err = svc.Get(ctx, " ")
	assert.True(t, apperrors.IsValidation(err))
}
