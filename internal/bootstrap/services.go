package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tradehub/tradehub-api/config"
	"github.com/tradehub/tradehub-api/internal/core"
	"github.com/tradehub/tradehub-api/internal/data"
	"github.com/tradehub/tradehub-api/internal/service"
)

// ServiceContainer holds the application's wired services.
type ServiceContainer struct {
	Jobs         *service.JobService
	Tradespeople *service.TradespersonService
	Clients      core.ClientRepository
}

// BuildServices wires repositories and services from their dependencies.
// redisClient may be nil, in which case job listings skip the applied-jobs
// cache and query Postgres directly.
func BuildServices(
	cfg *config.AppConfig,
	db *sql.DB,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) *ServiceContainer {
	jobRepo := data.NewJobRepo(db)
	applicationRepo := data.NewJobApplicationRepo(db)
	tradespersonRepo := data.NewTradespersonRepo(db)
	clientRepo := data.NewClientRepo(db)

	var cache core.CacheRepository
	if redisClient != nil {
		cache = data.NewRedisCacheRepo(redisClient)
	}

	jobs := service.NewJobService(service.JobServiceOptions{
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,
		Cache:           cache,
		CacheTTL:        cfg.Cache.AppliedJobsTTL,
		Logger:          logger,
	})
	tradespeople := service.NewTradespersonService(service.TradespersonServiceOptions{
		TradespersonRepo: tradespersonRepo,
	})

	return &ServiceContainer{
		Jobs:         jobs,
		Tradespeople: tradespeople,
		Clients:      clientRepo,
	}
}
