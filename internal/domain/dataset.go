package domain

import (
	"errors"
	"fmt"
	"math"
)

// AllSites is the selector value meaning "do not restrict by launch site".
const AllSites = "ALL"

var ErrEmptyDataset = errors.New("dataset has no records")

// PayloadBounds is the inclusive [Min, Max] payload mass observed across the dataset.
type PayloadBounds struct {
	Min float64
	Max float64
}

// Contains reports whether kg lies inside the bounds (inclusive).
func (b PayloadBounds) Contains(kg float64) bool {
	return kg >= b.Min && kg <= b.Max
}

// Dataset is the in-memory launch table. It is built once at startup and
// never mutated afterwards, so it may be shared freely between requests.
type Dataset struct {
	records []LaunchRecord
	bounds  PayloadBounds
	sites   []string
}

// Build a Dataset from loaded records, validating each row and computing
// the payload bounds and the distinct sites in order of first appearance.
func NewDataset(records []LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("new dataset: %w", ErrEmptyDataset)
	}

	rows := make([]LaunchRecord, len(records))
	copy(rows, records)

	bounds := PayloadBounds{Min: math.Inf(1), Max: math.Inf(-1)}
	seen := map[string]struct{}{}
	sites := make([]string, 0, 8)

	for i, r := range rows {
		if r.LaunchSite == "" {
			return nil, fmt.Errorf("new dataset: record %d: launch site must not be empty", i+1)
		}
		if r.Class != 0 && r.Class != 1 {
			return nil, fmt.Errorf("new dataset: record %d: class must be 0 or 1, got %d", i+1, r.Class)
		}
		if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
			return nil, fmt.Errorf("new dataset: record %d: payload mass is not a finite number", i+1)
		}

		bounds.Min = math.Min(bounds.Min, r.PayloadMassKg)
		bounds.Max = math.Max(bounds.Max, r.PayloadMassKg)

		if _, ok := seen[r.LaunchSite]; !ok {
			seen[r.LaunchSite] = struct{}{}
			sites = append(sites, r.LaunchSite)
		}
	}

	return &Dataset{records: rows, bounds: bounds, sites: sites}, nil
}

// Records returns a copy of all rows in load order.
func (d *Dataset) Records() []LaunchRecord {
	out := make([]LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Each calls fn for every record in load order without copying the table.
func (d *Dataset) Each(fn func(LaunchRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) PayloadBounds() PayloadBounds { return d.bounds }

// Sites returns the distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}
