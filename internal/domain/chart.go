package domain

// One wedge of a pie chart.
type PieSlice struct {
	Label string
	Value float64
}

// Pie chart data produced by the pie aggregator. An empty Slices list is a
// valid result and means no rows matched the selection.
type PieFigure struct {
	Title  string
	Slices []PieSlice
}

// Total returns the sum of all slice values.
func (f PieFigure) Total() float64 {
	var sum float64
	for _, s := range f.Slices {
		sum += s.Value
	}
	return sum
}

// One launch plotted on the payload/outcome scatter chart.
type ScatterPoint struct {
	FlightNumber  int
	LaunchSite    string
	PayloadMassKg float64
	Class         int
	Category      string
}

// Points sharing one booster version category, drawn in one color.
type ScatterSeries struct {
	Category string
	Points   []ScatterPoint
}

// Scatter chart data: x = payload mass, y = outcome class, color = booster
// version category. Points keep dataset order; Series groups them by category.
type ScatterFigure struct {
	Title  string
	XLabel string
	YLabel string
	Range  PayloadBounds
	Points []ScatterPoint
	Series []ScatterSeries
}
