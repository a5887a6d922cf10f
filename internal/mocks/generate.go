// Package mocks provides mock implementations for testing the tradehub API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/tradehub/tradehub-api/internal/core JobRepository

// Generate mock for JobApplicationRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_application_repository_mock.go github.com/tradehub/tradehub-api/internal/core JobApplicationRepository

// Generate mock for TradespersonRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=tradesperson_repository_mock.go github.com/tradehub/tradehub-api/internal/core TradespersonRepository

// Generate mock for ClientRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=client_repository_mock.go github.com/tradehub/tradehub-api/internal/core ClientRepository

// Generate mock for CacheRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/tradehub/tradehub-api/internal/core CacheRepository
