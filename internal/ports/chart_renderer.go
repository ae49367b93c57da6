package ports

import "launch-dashboard-service/internal/domain"

// Contract for turning chart figures into PNG images.
type ChartRenderer interface {
	PiePNG(fig domain.PieFigure) ([]byte, error)
	ScatterPNG(fig domain.ScatterFigure) ([]byte, error)
}
