package handlers

import (
	"delivery-simulation-service/internal/adapters/dataset"
	"delivery-simulation-service/internal/api/dto"
	"delivery-simulation-service/internal/domain"
	"delivery-simulation-service/internal/platform/obs"
	"delivery-simulation-service/internal/services"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// SimulationHandler runs one isolated simulation per request.
type SimulationHandler struct {
	// MaxBodyBytes caps the dataset size; zero means 10 MiB.
	MaxBodyBytes int64
}

// Simulate decodes the request body as a dataset, runs assignment and
// simulation, and responds with the report.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = 10 << 20
	}

	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "dataset too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "could not read body")
		return
	}

	ctx := r.Context()
	ds, err := dataset.DecodeJSON(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report, err := services.Simulate(ctx, ds)
	if err != nil {
		if domain.IsConfigurationError(err) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		obs.Logger(ctx).Error("simulation failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewReportResponse(report))
}
