package services

import "launch-dashboard-service/internal/domain"

// Element ids shared by the layout, the HTML page and the chart endpoints.
const (
	SiteDropdownID   = "site-dropdown"
	PieChartID       = "success-pie-chart"
	PayloadSliderID  = "payload-slider"
	ScatterChartID   = "success-payload-scatter-chart"
	DashboardTitle   = "SpaceX Launch Records Dashboard"
	PayloadRangeText = "Payload range (Kg):"
)

// Fixed slider geometry; the selected value is seeded from the dataset.
const (
	SliderMin  = 0
	SliderMax  = 10000
	SliderStep = 1000
)

type Dropdown struct {
	ID          string
	Options     []SiteOption
	Value       string
	Placeholder string
	Searchable  bool
}

type RangeSlider struct {
	ID    string
	Min   float64
	Max   float64
	Step  float64
	Marks []float64
	Value [2]float64
}

// Layout is the static arrangement of dashboard controls, top to bottom.
type Layout struct {
	Title        string
	Dropdown     Dropdown
	PieChartID   string
	RangeCaption string
	Slider       RangeSlider
	ScatterID    string
}

func BuildLayout(ds *domain.Dataset) Layout {
	b := ds.PayloadBounds()

	return Layout{
		Title: DashboardTitle,
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     SiteOptions(ds),
			Value:       domain.AllSites,
			Placeholder: "Select a launch site here",
			Searchable:  true,
		},
		PieChartID:   PieChartID,
		RangeCaption: PayloadRangeText,
		Slider: RangeSlider{
			ID:    PayloadSliderID,
			Min:   SliderMin,
			Max:   SliderMax,
			Step:  SliderStep,
			Marks: []float64{0, 2500, 5000, 7500, 10000},
			Value: [2]float64{b.Min, b.Max},
		},
		ScatterID: ScatterChartID,
	}
}
