// Package devseed populates a development database with sample clients,
// tradespeople, and jobs so the API has data to serve straight away.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tradehub/tradehub-api/internal/data"
	"github.com/tradehub/tradehub-api/internal/domain/model"
	apperrors "github.com/tradehub/tradehub-api/internal/errors"
	"github.com/tradehub/tradehub-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB           *sql.DB
	jobs         *service.JobService
	tradespeople *service.TradespersonService
	clients      *data.ClientRepo
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	jobRepo := data.NewJobRepo(db)
	applicationRepo := data.NewJobApplicationRepo(db)
	jobs := service.NewJobService(service.JobServiceOptions{
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,
	})
	tradespeople := service.NewTradespersonService(service.TradespersonServiceOptions{
		TradespersonRepo: data.NewTradespersonRepo(db),
	})

	return Services{
		DB:           db,
		jobs:         jobs,
		tradespeople: tradespeople,
		clients:      data.NewClientRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is additive: rows that already exist (matched by email) are left
// alone, and jobs are only created for clients inserted on this run.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedTradespeople(ctx, svcs.tradespeople, logger)

	clients, clientFailures := seedClients(ctx, svcs.clients, logger)
	failures += clientFailures
	failures += seedJobs(ctx, svcs.jobs, clients, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedTradespeople(ctx context.Context, svc *service.TradespersonService, logger *slog.Logger) int {
	failures := 0
	requests := []*model.CreateTradespersonRequest{
		{FirstName: "Sam", LastName: "Sparks", Email: "sam.sparks@example.com", Trade: "Electrician", Postcode: "SW1A 1AA"},
		{FirstName: "Paula", LastName: "Pipes", Email: "paula.pipes@example.com", Trade: "Plumbing", Postcode: "M1 2AB"},
		{FirstName: "Ray", LastName: "Ridge", Email: "ray.ridge@example.com", Trade: "Roofing", Postcode: "LS1 4DY"},
	}

	for _, req := range requests {
		if _, err := svc.Create(ctx, req); err != nil {
			if apperrors.IsConflict(err) {
				logger.InfoContext(ctx, "tradesperson already exists", "email", req.Email)
				continue
			}
			logger.ErrorContext(ctx, "failed to create tradesperson", "email", req.Email, "error", err)
			failures++
			continue
		}
		logger.InfoContext(ctx, "created tradesperson", "email", req.Email, "trade", req.Trade)
	}
	return failures
}

func seedClients(ctx context.Context, repo *data.ClientRepo, logger *slog.Logger) ([]*model.Client, int) {
	failures := 0
	requests := []*model.CreateClientRequest{
		{FirstName: "Alice", LastName: "Archer", Email: "alice.archer@example.com"},
		{FirstName: "Ben", LastName: "Booth", Email: "ben.booth@example.com"},
	}

	var created []*model.Client
	for _, req := range requests {
		client, err := repo.Create(ctx, req)
		if err != nil {
			if apperrors.IsConflict(apperrors.MapDBError(err)) {
				logger.InfoContext(ctx, "client already exists", "email", req.Email)
				continue
			}
			logger.ErrorContext(ctx, "failed to create client", "email", req.Email, "error", err)
			failures++
			continue
		}
		logger.InfoContext(ctx, "created client", "email", req.Email)
		created = append(created, client)
	}
	return created, failures
}

type jobSeed struct {
	trade       string
	description string
	postcode    string
	action      string
}

func seedJobs(ctx context.Context, svc *service.JobService, clients []*model.Client, logger *slog.Logger) int {
	if len(clients) == 0 {
		return 0
	}

	seeds := []jobSeed{
		{trade: "Plumbing", description: "Fix a leaking kitchen tap", postcode: "M1 2AB", action: "approve"},
		{trade: "Electrical", description: "Replace a faulty consumer unit", postcode: "SW1A 1AA", action: "approve"},
		{trade: "Roofing", description: "Re-lay slipped tiles after a storm", postcode: "LS1 4DY", action: "approve"},
		{trade: "Carpentry", description: "Build fitted wardrobes in the spare room", postcode: "M1 3CD"},
		{trade: "Painting", description: "Paint the whole ground floor", postcode: "SW1A 2BB", action: "reject"},
	}

	failures := 0
	for i, seed := range seeds {
		client := clients[i%len(clients)]
		job, err := svc.Create(ctx, &model.CreateJobRequest{
			ClientID:       client.ID,
			Trade:          seed.trade,
			JobDescription: seed.description,
			Postcode:       seed.postcode,
		})
		if err != nil {
			logger.ErrorContext(ctx, "failed to create job", "trade", seed.trade, "error", err)
			failures++
			continue
		}
		logger.InfoContext(ctx, "created job", "id", job.ID, "trade", seed.trade)

		if seed.action == "" {
			continue
		}
		if _, err := svc.Approve(ctx, &model.ApproveJobRequest{JobID: job.ID, Action: seed.action}); err != nil {
			logger.ErrorContext(ctx, "failed to moderate job", "id", job.ID, "action", seed.action, "error", err)
			failures++
		}
	}
	return failures
}
