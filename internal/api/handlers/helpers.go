package handlers

import (
	"encoding/json"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func writePNG(w http.ResponseWriter, r *http.Request, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Printf("write png failed: req_id=%s path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
	}
}

// allowGet rejects anything but GET, reporting whether the request may proceed.
func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// siteParam returns the requested site, defaulting to all sites.
func siteParam(r *http.Request) string {
	site := strings.TrimSpace(r.URL.Query().Get("site"))
	if site == "" {
		return domain.AllSites
	}
	return site
}

// payloadRangeParams parses min/max, falling back to the dataset bounds.
func payloadRangeParams(r *http.Request, bounds domain.PayloadBounds) (float64, float64, string) {
	q := r.URL.Query()

	low, high := bounds.Min, bounds.Max
	if v := strings.TrimSpace(q.Get("min")); v != "" {
		f, ok := parseFinite(v)
		if !ok {
			return 0, 0, "min must be a number"
		}
		low = f
	}
	if v := strings.TrimSpace(q.Get("max")); v != "" {
		f, ok := parseFinite(v)
		if !ok {
			return 0, 0, "max must be a number"
		}
		high = f
	}

	return low, high, ""
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
