package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"launch-dashboard-service/internal/domain"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const noDataText = "No launches match the current selection."

// Renderer draws chart figures to PNG at a fixed size.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// PiePNG renders the pie figure. A figure with no slices, or whose slices
// sum to zero, renders as a placeholder carrying the title.
func (r *Renderer) PiePNG(fig domain.PieFigure) ([]byte, error) {
	if len(fig.Slices) == 0 || fig.Total() <= 0 {
		return r.placeholder(fig.Title)
	}

	values := make([]chart.Value, 0, len(fig.Slices))
	for _, s := range fig.Slices {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", s.Label, strconv.FormatFloat(s.Value, 'f', -1, 64)),
			Value: s.Value,
		})
	}

	pie := chart.PieChart{
		Title:  fig.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie: %w", err)
	}
	return buf.Bytes(), nil
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// ScatterPNG renders one colored point series per booster version category.
func (r *Renderer) ScatterPNG(fig domain.ScatterFigure) ([]byte, error) {
	if len(fig.Points) == 0 {
		return r.placeholder(fig.Title)
	}

	series := make([]chart.Series, 0, len(fig.Series))
	for i, s := range fig.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, p.PayloadMassKg)
			ys = append(ys, float64(p.Class))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}

	xMin, xMax := fig.Range.Min, fig.Range.Max
	// go-chart rejects zero-width ranges
	if xMax <= xMin {
		xMin, xMax = xMin-500, xMin+500
	}

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 48}},
		XAxis: chart.XAxis{
			Name:  fig.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  fig.YLabel,
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter: %w", err)
	}
	return buf.Bytes(), nil
}

// placeholder draws a blank canvas with the chart title and a no-data hint,
// so the page visibly updates when a selection matches nothing.
func (r *Renderer) placeholder(title string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 80, G: 80, B: 80, A: 255}),
		Face: basicfont.Face7x13,
	}
	d.Dot = fixed.P(16, 24)
	d.DrawString(title)
	d.Dot = fixed.P(16, r.Height/2)
	d.DrawString(noDataText)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
