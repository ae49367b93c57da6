package dto

type PieSliceResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type PieChartResponse struct {
	ID     string             `json:"id"`
	Type   string             `json:"type"`
	Title  string             `json:"title"`
	Site   string             `json:"site"`
	Slices []PieSliceResponse `json:"slices"`
}

type ScatterPointResponse struct {
	FlightNumber  int     `json:"flight_number"`
	LaunchSite    string  `json:"launch_site"`
	PayloadMassKg float64 `json:"payload_mass_kg"`
	Class         int     `json:"class"`
	Category      string  `json:"booster_version_category"`
}

type ScatterSeriesResponse struct {
	Category string                 `json:"booster_version_category"`
	Points   []ScatterPointResponse `json:"points"`
}

type ScatterChartResponse struct {
	ID     string                  `json:"id"`
	Type   string                  `json:"type"`
	Title  string                  `json:"title"`
	Site   string                  `json:"site"`
	XLabel string                  `json:"x_label"`
	YLabel string                  `json:"y_label"`
	Range  [2]float64              `json:"payload_range"`
	Points []ScatterPointResponse  `json:"points"`
	Series []ScatterSeriesResponse `json:"series"`
}
