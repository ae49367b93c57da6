package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"launch-dashboard-service/internal/api/dto"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"launch-dashboard-service/internal/services"
	"log"
	"net/http"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// DashboardHandler serves the page layout and the selector options.
type DashboardHandler struct {
	Dataset *domain.Dataset
}

func (h *DashboardHandler) Sites(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListSitesResponse{Options: siteOptions(h.Dataset)})
}

func (h *DashboardHandler) Layout(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	writeJSON(w, r, http.StatusOK, layoutResponse(services.BuildLayout(h.Dataset)))
}

// Index renders the dashboard page. The page script re-requests both charts
// whenever the site selector or the payload range changes.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	if !allowGet(w, r) {
		return
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, services.BuildLayout(h.Dataset)); err != nil {
		log.Printf("render index failed: req_id=%s err=%v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func siteOptions(ds *domain.Dataset) []dto.SiteOptionResponse {
	opts := services.SiteOptions(ds)
	out := make([]dto.SiteOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.SiteOptionResponse{Label: o.Label, Value: o.Value})
	}
	return out
}

func layoutResponse(l services.Layout) dto.LayoutResponse {
	opts := make([]dto.SiteOptionResponse, 0, len(l.Dropdown.Options))
	for _, o := range l.Dropdown.Options {
		opts = append(opts, dto.SiteOptionResponse{Label: o.Label, Value: o.Value})
	}

	return dto.LayoutResponse{
		Title: l.Title,
		Dropdown: dto.DropdownResponse{
			ID:          l.Dropdown.ID,
			Options:     opts,
			Value:       l.Dropdown.Value,
			Placeholder: l.Dropdown.Placeholder,
			Searchable:  l.Dropdown.Searchable,
		},
		PieChartID:   l.PieChartID,
		RangeCaption: l.RangeCaption,
		Slider: dto.RangeSliderResponse{
			ID:    l.Slider.ID,
			Min:   l.Slider.Min,
			Max:   l.Slider.Max,
			Step:  l.Slider.Step,
			Marks: l.Slider.Marks,
			Value: l.Slider.Value,
		},
		ScatterChartID: l.ScatterID,
	}
}
