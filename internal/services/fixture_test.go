package services

import (
	"launch-dashboard-service/internal/domain"
	"testing"
)

func newTestDataset(t *testing.T) *domain.Dataset {
	t.Helper()

	records := []domain.LaunchRecord{
		{FlightNumber: 1, LaunchSite: "CCAFS LC-40", Class: 0, PayloadMassKg: 0, BoosterVersionCategory: "v1.0"},
		{FlightNumber: 2, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 525, BoosterVersionCategory: "v1.0"},
		{FlightNumber: 3, LaunchSite: "CCAFS LC-40", Class: 1, PayloadMassKg: 3170, BoosterVersionCategory: "v1.1"},
		{FlightNumber: 4, LaunchSite: "VAFB SLC-4E", Class: 0, PayloadMassKg: 500, BoosterVersionCategory: "v1.1"},
		{FlightNumber: 5, LaunchSite: "VAFB SLC-4E", Class: 0, PayloadMassKg: 9600, BoosterVersionCategory: "FT"},
		{FlightNumber: 6, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 2490, BoosterVersionCategory: "FT"},
		{FlightNumber: 7, LaunchSite: "KSC LC-39A", Class: 1, PayloadMassKg: 5300, BoosterVersionCategory: "FT"},
		{FlightNumber: 8, LaunchSite: "KSC LC-39A", Class: 0, PayloadMassKg: 6070, BoosterVersionCategory: "B4"},
	}

	ds, err := domain.NewDataset(records)
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}
