package api

import (
	"launch-dashboard-service/internal/api/handlers"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(ds *domain.Dataset, images *services.ChartImages) http.Handler {
	mux := http.NewServeMux()

	dashHandler := &handlers.DashboardHandler{Dataset: ds}
	chartHandler := &handlers.ChartHandler{Dataset: ds, Images: images}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/", dashHandler.Index)
	mux.HandleFunc("/api/layout", dashHandler.Layout)
	mux.HandleFunc("/api/sites", dashHandler.Sites)
	mux.HandleFunc("/api/charts/pie", chartHandler.Pie)
	mux.HandleFunc("/api/charts/scatter", chartHandler.Scatter)
	mux.HandleFunc("/charts/pie.png", chartHandler.PiePNG)
	mux.HandleFunc("/charts/scatter.png", chartHandler.ScatterPNG)

	return requestIDMiddleware(loggingMiddleware(mux))
}
