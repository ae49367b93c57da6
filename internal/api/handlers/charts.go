package handlers

import (
	"launch-dashboard-service/internal/api/dto"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"launch-dashboard-service/internal/services"
	"log"
	"net/http"
)

// ChartHandler serves the pie and scatter charts as JSON figures and PNG images.
type ChartHandler struct {
	Dataset *domain.Dataset
	Images  *services.ChartImages
}

func (h *ChartHandler) Pie(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	site := siteParam(r)
	fig := services.PieChart(h.Dataset, site)

	res := dto.PieChartResponse{
		ID:     services.PieChartID,
		Type:   "pie",
		Title:  fig.Title,
		Site:   site,
		Slices: make([]dto.PieSliceResponse, 0, len(fig.Slices)),
	}
	for _, s := range fig.Slices {
		res.Slices = append(res.Slices, dto.PieSliceResponse{Label: s.Label, Value: s.Value})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ChartHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	site := siteParam(r)
	low, high, msg := payloadRangeParams(r, h.Dataset.PayloadBounds())
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	fig := services.ScatterChart(h.Dataset, site, low, high)

	res := dto.ScatterChartResponse{
		ID:     services.ScatterChartID,
		Type:   "scatter",
		Title:  fig.Title,
		Site:   site,
		XLabel: fig.XLabel,
		YLabel: fig.YLabel,
		Range:  [2]float64{fig.Range.Min, fig.Range.Max},
		Points: scatterPoints(fig.Points),
		Series: make([]dto.ScatterSeriesResponse, 0, len(fig.Series)),
	}
	for _, s := range fig.Series {
		res.Series = append(res.Series, dto.ScatterSeriesResponse{
			Category: s.Category,
			Points:   scatterPoints(s.Points),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ChartHandler) PiePNG(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	b, err := h.Images.PiePNG(r.Context(), siteParam(r))
	if err != nil {
		log.Printf("render pie chart failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writePNG(w, r, b)
}

func (h *ChartHandler) ScatterPNG(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	low, high, msg := payloadRangeParams(r, h.Dataset.PayloadBounds())
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	b, err := h.Images.ScatterPNG(r.Context(), siteParam(r), low, high)
	if err != nil {
		log.Printf("render scatter chart failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writePNG(w, r, b)
}

func scatterPoints(points []domain.ScatterPoint) []dto.ScatterPointResponse {
	out := make([]dto.ScatterPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ScatterPointResponse{
			FlightNumber:  p.FlightNumber,
			LaunchSite:    p.LaunchSite,
			PayloadMassKg: p.PayloadMassKg,
			Class:         p.Class,
			Category:      p.Category,
		})
	}
	return out
}
