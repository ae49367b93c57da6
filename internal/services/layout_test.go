package services

import (
	"launch-dashboard-service/internal/domain"
	"testing"
)

func TestSiteOptions(t *testing.T) {
	ds := newTestDataset(t)

	opts := SiteOptions(ds)
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	if opts[0] != (SiteOption{Label: "All Sites", Value: domain.AllSites}) {
		t.Errorf("first option = %+v, want All Sites sentinel", opts[0])
	}
	// first-appearance order
	if opts[1].Value != "CCAFS LC-40" || opts[2].Value != "VAFB SLC-4E" || opts[3].Value != "KSC LC-39A" {
		t.Errorf("site order = %v", opts[1:])
	}
}

func TestBuildLayoutSeedsSliderFromDataset(t *testing.T) {
	ds := newTestDataset(t)

	l := BuildLayout(ds)

	if l.Dropdown.Value != domain.AllSites {
		t.Errorf("dropdown default = %q, want ALL", l.Dropdown.Value)
	}
	if l.Slider.Min != 0 || l.Slider.Max != 10000 || l.Slider.Step != 1000 {
		t.Errorf("slider geometry = %+v", l.Slider)
	}
	if l.Slider.Value != [2]float64{0, 9600} {
		t.Errorf("slider value = %v, want [0 9600]", l.Slider.Value)
	}
	if l.PieChartID != "success-pie-chart" || l.ScatterID != "success-payload-scatter-chart" {
		t.Errorf("chart ids = %q/%q", l.PieChartID, l.ScatterID)
	}
}
