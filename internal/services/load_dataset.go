package services

import (
	"context"
	"fmt"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"launch-dashboard-service/internal/ports"
)

// LoadDataset reads every launch from repo and freezes it into a Dataset.
func LoadDataset(ctx context.Context, repo ports.LaunchRepository) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "dataset.Load")(&err)

	records, err := repo.ListLaunches(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	ds, err := domain.NewDataset(records)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	return ds, nil
}
