package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNewDatasetComputesBoundsAndSites(t *testing.T) {
	records := []LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 0, BoosterVersionCategory: "v1.0"},
		{FlightNumber: 2, LaunchSite: "VAFB SLC-4E", Class: 1, PayloadMassKg: 9600, BoosterVersionCategory: "FT"},
		{FlightNumber: 3, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 525, BoosterVersionCategory: "v1.0"},
		{FlightNumber: 4, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 2490, BoosterVersionCategory: "FT"},
	}

	ds, err := NewDataset(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ds.Len() != 4 {
		t.Fatalf("len = %d, want 4", ds.Len())
	}

	b := ds.PayloadBounds()
	if b.Min != 0 || b.Max != 9600 {
		t.Fatalf("bounds = %+v, want {0 9600}", b)
	}

	sites := ds.Sites()
	want := []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A"}
	if len(sites) != len(want) {
		t.Fatalf("sites = %v, want %v", sites, want)
	}
	for i := range want {
		if sites[i] != want[i] {
			t.Errorf("sites[%d] = %q, want %q", i, sites[i], want[i])
		}
	}

	// every record must lie within the computed bounds
	ds.Each(func(r LaunchRecord) {
		if !b.Contains(r.PayloadMassKg) {
			t.Errorf("flight %d payload %v outside bounds %+v", r.FlightNumber, r.PayloadMassKg, b)
		}
	})
}

func TestNewDatasetIsIsolatedFromCaller(t *testing.T) {
	records := []LaunchRecord{{FlightNumber: 1, LaunchSite: "A", Class: 1, PayloadMassKg: 10}}

	ds, err := NewDataset(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records[0].LaunchSite = "B"
	got := ds.Records()
	if got[0].LaunchSite != "A" {
		t.Fatalf("dataset mutated through caller slice: %q", got[0].LaunchSite)
	}

	got[0].LaunchSite = "C"
	if ds.Records()[0].LaunchSite != "A" {
		t.Fatalf("dataset mutated through Records copy")
	}
}

func TestNewDatasetRejectsInvalidInput(t *testing.T) {
	if _, err := NewDataset(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}

	bad := [][]LaunchRecord{
		{{LaunchSite: "", Class: 1}},
		{{LaunchSite: "A", Class: 2}},
		{{LaunchSite: "A", Class: 0, PayloadMassKg: math.NaN()}},
	}
	for i, records := range bad {
		if _, err := NewDataset(records); err == nil {
			t.Errorf("case %d: expected error, got nil", i)
		}
	}
}
