package services

import (
	"launch-dashboard-service/internal/domain"
	"reflect"
	"testing"
)

func TestScatterChartAllSitesWithinRange(t *testing.T) {
	ds := newTestDataset(t)

	fig := ScatterChart(ds, domain.AllSites, 500, 5300)

	var flights []int
	for _, p := range fig.Points {
		if p.PayloadMassKg < 500 || p.PayloadMassKg > 5300 {
			t.Errorf("flight %d payload %v outside [500, 5300]", p.FlightNumber, p.PayloadMassKg)
		}
		flights = append(flights, p.FlightNumber)
	}

	// bounds are inclusive: flights 4 (500kg) and 7 (5300kg) are kept
	want := []int{2, 3, 4, 6, 7}
	if !reflect.DeepEqual(flights, want) {
		t.Fatalf("flights = %v, want %v", flights, want)
	}
	if fig.XLabel != "Payload Mass (kg)" || fig.YLabel != "class" {
		t.Errorf("axis labels = %q/%q", fig.XLabel, fig.YLabel)
	}
}

func TestScatterChartSingleSite(t *testing.T) {
	ds := newTestDataset(t)

	fig := ScatterChart(ds, "KSC LC-39A", 0, 10000)
	if len(fig.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(fig.Points))
	}
	for _, p := range fig.Points {
		if p.LaunchSite != "KSC LC-39A" {
			t.Errorf("flight %d from %q leaked into site filter", p.FlightNumber, p.LaunchSite)
		}
	}

	if len(fig.Series) != 2 {
		t.Fatalf("expected 2 category series, got %d", len(fig.Series))
	}
	if fig.Series[0].Category != "B4" || len(fig.Series[0].Points) != 1 {
		t.Errorf("series[0] = %+v", fig.Series[0])
	}
	if fig.Series[1].Category != "FT" || len(fig.Series[1].Points) != 2 {
		t.Errorf("series[1] = %+v", fig.Series[1])
	}
}

func TestScatterChartEmptyResults(t *testing.T) {
	ds := newTestDataset(t)

	if fig := ScatterChart(ds, "Boca Chica", 0, 10000); len(fig.Points) != 0 || len(fig.Series) != 0 {
		t.Errorf("unknown site: expected empty figure, got %+v", fig)
	}

	if fig := ScatterChart(ds, domain.AllSites, 8000, 1000); len(fig.Points) != 0 {
		t.Errorf("inverted range: expected no points, got %d", len(fig.Points))
	}
}

func TestScatterChartIsIdempotent(t *testing.T) {
	ds := newTestDataset(t)

	a := ScatterChart(ds, domain.AllSites, 0, 6000)
	b := ScatterChart(ds, domain.AllSites, 0, 6000)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("results differ: %+v vs %+v", a, b)
	}
}
