package api

import (
	"delivery-simulation-service/internal/api/handlers"
	"net/http"
	"time"
)

// NewRouter wires HTTP handlers and returns an http.Handler.
// Handlers hold no run state; every simulation request builds its own dataset.
func NewRouter() http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Started: time.Now()}
	simHandler := &handlers.SimulationHandler{}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/simulations", simHandler.Simulate)

	return loggingMiddleware(mux)
}
