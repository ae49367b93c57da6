package services

import (
	"fmt"
	"launch-dashboard-service/internal/domain"
	"sort"
	"strconv"
)

const allSitesPieTitle = "Launch success by launch site"

// PieChart reduces the dataset for the success pie chart.
//
// For the AllSites sentinel it sums successful launches per site. For a
// concrete site it counts launches per outcome class within that site.
// A site with no rows yields a figure with no slices.
func PieChart(ds *domain.Dataset, site string) domain.PieFigure {
	if site == domain.AllSites {
		return successBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successBySite(ds *domain.Dataset) domain.PieFigure {
	sums := map[string]int{}
	ds.Each(func(r domain.LaunchRecord) {
		sums[r.LaunchSite] += r.Class
	})

	sites := make([]string, 0, len(sums))
	for s := range sums {
		sites = append(sites, s)
	}
	sort.Strings(sites)

	slices := make([]domain.PieSlice, 0, len(sites))
	for _, s := range sites {
		slices = append(slices, domain.PieSlice{Label: s, Value: float64(sums[s])})
	}

	return domain.PieFigure{Title: allSitesPieTitle, Slices: slices}
}

func outcomesForSite(ds *domain.Dataset, site string) domain.PieFigure {
	counts := map[int]int{}
	ds.Each(func(r domain.LaunchRecord) {
		if r.LaunchSite == site {
			counts[r.Class]++
		}
	})

	classes := make([]int, 0, len(counts))
	for c := range counts {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	slices := make([]domain.PieSlice, 0, len(classes))
	for _, c := range classes {
		slices = append(slices, domain.PieSlice{Label: strconv.Itoa(c), Value: float64(counts[c])})
	}

	return domain.PieFigure{
		Title:  fmt.Sprintf("Mission Outcome for Launch Site %s", site),
		Slices: slices,
	}
}
