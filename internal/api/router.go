package api

import (
	"dormdash-route-service/internal/api/handlers"
	"dormdash-route-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner handlers.RoutePlanner, jobs ports.JobRepository, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	routeHandler := handlers.NewSmartRouteHandler(planner, log)
	jobHandler := &handlers.JobHandler{Repo: jobs, Log: log}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /movers/{moverID}/smart-route", routeHandler.SmartRoute)
	mux.HandleFunc("GET /jobs/available", jobHandler.ListAvailable)
	mux.Handle("GET /metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
