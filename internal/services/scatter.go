package services

import (
	"launch-dashboard-service/internal/domain"
	"sort"
)

const (
	scatterTitle  = "Correlation between Payload and Success"
	scatterXLabel = "Payload Mass (kg)"
	scatterYLabel = "class"
)

// ScatterChart keeps the launches of site (or every site for AllSites)
// whose payload lies within [low, high], inclusive on both ends.
// low > high selects nothing.
func ScatterChart(ds *domain.Dataset, site string, low, high float64) domain.ScatterFigure {
	title := scatterTitle + " for All Sites"
	if site != domain.AllSites {
		title = scatterTitle + " for " + site
	}

	bounds := domain.PayloadBounds{Min: low, Max: high}
	points := make([]domain.ScatterPoint, 0, ds.Len())
	ds.Each(func(r domain.LaunchRecord) {
		if site != domain.AllSites && r.LaunchSite != site {
			return
		}
		if !bounds.Contains(r.PayloadMassKg) {
			return
		}
		points = append(points, domain.ScatterPoint{
			FlightNumber:  r.FlightNumber,
			LaunchSite:    r.LaunchSite,
			PayloadMassKg: r.PayloadMassKg,
			Class:         r.Class,
			Category:      r.BoosterVersionCategory,
		})
	})

	return domain.ScatterFigure{
		Title:  title,
		XLabel: scatterXLabel,
		YLabel: scatterYLabel,
		Range:  bounds,
		Points: points,
		Series: groupByCategory(points),
	}
}

func groupByCategory(points []domain.ScatterPoint) []domain.ScatterSeries {
	byCat := map[string][]domain.ScatterPoint{}
	for _, p := range points {
		byCat[p.Category] = append(byCat[p.Category], p)
	}

	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	series := make([]domain.ScatterSeries, 0, len(cats))
	for _, c := range cats {
		series = append(series, domain.ScatterSeries{Category: c, Points: byCat[c]})
	}
	return series
}
