package httpx

import (
	"net/http"

	"github.com/tradehub/tradehub-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Jobs         *service.JobService
	Tradespeople *service.TradespersonService
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	jobHandlers := &JobHandlers{Svc: services.Jobs}
	tradespersonHandlers := &TradespersonHandlers{Svc: services.Tradespeople}

	registerJobRoutes(mux, jobHandlers)
	registerTradespersonRoutes(mux, tradespersonHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerJobRoutes(mux *http.ServeMux, h *JobHandlers) {
	mux.HandleFunc("POST /api/jobs", h.Create)
	mux.HandleFunc("GET /api/jobs/admin", h.AdminList)
	mux.HandleFunc("GET /api/jobs/tradesperson", h.OpenList)
	mux.HandleFunc("POST /api/jobs/approve", h.Approve)
	mux.HandleFunc("GET /api/jobs/{id}", h.Get)
	mux.HandleFunc("POST /api/jobs/{id}/apply", h.Apply)
}

func registerTradespersonRoutes(mux *http.ServeMux, h *TradespersonHandlers) {
	mux.HandleFunc("POST /api/tradespeople", h.Create)
	mux.HandleFunc("GET /api/tradespeople", h.List)
	mux.HandleFunc("GET /api/tradespeople/{id}", h.Get)
}
