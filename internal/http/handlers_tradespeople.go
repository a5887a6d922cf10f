package httpx

import (
	"net/http"

	"github.com/tradehub/tradehub-api/internal/domain/model"
	"github.com/tradehub/tradehub-api/internal/service"
)

// TradespersonHandlers provides HTTP handlers for tradesperson signup and
// the public directory.
type TradespersonHandlers struct {
	Svc *service.TradespersonService
}

// Create handles POST /api/tradespeople.
func (h *TradespersonHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateTradespersonRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	tp, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, tp)
}

// Get handles GET /api/tradespeople/{id}.
func (h *TradespersonHandlers) Get(w http.ResponseWriter, r *http.Request) {
	tp, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, tp)
}

// List handles GET /api/tradespeople: the public directory with trade and
// location filters.
func (h *TradespersonHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r)
	q := r.URL.Query()
	opts := &model.TradespeopleListOptions{
		Page:     page,
		Limit:    limit,
		Trade:    q.Get("trade"),
		Location: q.Get("location"),
	}

	result, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, result)
}
