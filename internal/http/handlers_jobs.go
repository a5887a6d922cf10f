package httpx

import (
	"net/http"

	"github.com/tradehub/tradehub-api/internal/domain/model"
	"github.com/tradehub/tradehub-api/internal/service"
)

// JobHandlers provides HTTP handlers for job intake, moderation, and search.
type JobHandlers struct {
	Svc *service.JobService
}

// Create handles POST /api/jobs: a client submitting a new job for review.
func (h *JobHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccessMessage(w, http.StatusCreated, job, "Job submitted for review")
}

// Get handles GET /api/jobs/{id}.
func (h *JobHandlers) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, job)
}

// AdminList handles GET /api/jobs/admin: the moderation queue with optional
// status and free-text search filters.
func (h *JobHandlers) AdminList(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r)
	opts := &model.JobAdminListOptions{
		Page:   page,
		Limit:  limit,
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.Svc.AdminList(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, result)
}

// OpenList handles GET /api/jobs/tradesperson: open jobs a tradesperson can
// apply to, filtered by trade and postcode prefix, minus jobs they already
// applied to.
func (h *JobHandlers) OpenList(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r)
	q := r.URL.Query()
	opts := &model.OpenJobsListOptions{
		Page:           page,
		Limit:          limit,
		Trade:          q.Get("trade"),
		Location:       q.Get("location"),
		TradespersonID: q.Get("tradespersonId"),
	}

	result, err := h.Svc.OpenList(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, result)
}

// Approve handles POST /api/jobs/approve: an admin approving or rejecting a
// pending job.
func (h *JobHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	var req *model.ApproveJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Approve(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	message := "Job approved successfully"
	if job.Status == model.JobStatusRejected {
		message = "Job rejected successfully"
	}
	WriteSuccessMessage(w, http.StatusOK, job, message)
}

// Apply handles POST /api/jobs/{id}/apply: a tradesperson applying to an
// open job.
func (h *JobHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateJobApplicationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.JobID = r.PathValue("id")

	app, err := h.Svc.Apply(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccessMessage(w, http.StatusCreated, app, "Application submitted")
}
