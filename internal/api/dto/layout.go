package dto

type SiteOptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ListSitesResponse struct {
	Options []SiteOptionResponse `json:"options"`
}

type DropdownResponse struct {
	ID          string               `json:"id"`
	Options     []SiteOptionResponse `json:"options"`
	Value       string               `json:"value"`
	Placeholder string               `json:"placeholder"`
	Searchable  bool                 `json:"searchable"`
}

type RangeSliderResponse struct {
	ID    string     `json:"id"`
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Marks []float64  `json:"marks"`
	Value [2]float64 `json:"value"`
}

type LayoutResponse struct {
	Title          string              `json:"title"`
	Dropdown       DropdownResponse    `json:"dropdown"`
	PieChartID     string              `json:"pie_chart_id"`
	RangeCaption   string              `json:"range_caption"`
	Slider         RangeSliderResponse `json:"slider"`
	ScatterChartID string              `json:"scatter_chart_id"`
}
