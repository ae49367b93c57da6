package domain

// Represents a single launch attempt loaded from the launch records dataset.
// Class is the mission outcome indicator: 1 for success, 0 for failure.
type LaunchRecord struct {
	FlightNumber           int
	LaunchSite             string
	Class                  int
	PayloadMassKg          float64
	BoosterVersion         string
	BoosterVersionCategory string
}

