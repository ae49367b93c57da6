package services

import "launch-dashboard-service/internal/domain"

const AllSitesLabel = "All Sites"

// One entry of the launch site selector.
type SiteOption struct {
	Label string
	Value string
}

// SiteOptions lists the launch sites for the selector, led by the "All Sites" sentinel.
func SiteOptions(ds *domain.Dataset) []SiteOption {
	sites := ds.Sites()

	opts := make([]SiteOption, 0, len(sites)+1)
	opts = append(opts, SiteOption{Label: AllSitesLabel, Value: domain.AllSites})
	for _, s := range sites {
		opts = append(opts, SiteOption{Label: s, Value: s})
	}
	return opts
}
