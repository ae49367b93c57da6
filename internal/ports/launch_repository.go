package ports

import (
	"context"
	"launch-dashboard-service/internal/domain"
)

// Port: a boundary for retrieving LaunchRecord rows from a data source.
type LaunchRepository interface {
	// Retrieve all launch records in source order.
	ListLaunches(ctx context.Context) ([]domain.LaunchRecord, error)
}
