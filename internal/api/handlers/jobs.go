package handlers

import (
	"dormdash-route-service/internal/api/dto"
	"dormdash-route-service/internal/platform/obs"
	"dormdash-route-service/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// JobHandler exposes the read-only job listing the planner works from.
type JobHandler struct {
	Repo ports.JobRepository
	Log  *zap.Logger
}

func (h *JobHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Repo.ListAvailableJobs(r.Context())
	if err != nil {
		h.Log.Error("list available jobs failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListJobsResponse(jobs))
}
