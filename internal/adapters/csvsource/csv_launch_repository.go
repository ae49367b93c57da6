package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"os"
	"strconv"
	"strings"
)

// Header names of the launch records CSV.
const (
	ColLaunchSite             = "Launch Site"
	ColPayloadMass            = "Payload Mass (kg)"
	ColClass                  = "class"
	ColFlightNumber           = "Flight Number"
	ColBoosterVersion         = "Booster Version"
	ColBoosterVersionCategory = "Booster Version Category"
)

var requiredColumns = []string{
	ColLaunchSite,
	ColPayloadMass,
	ColClass,
	ColFlightNumber,
	ColBoosterVersionCategory,
}

// CSV file-backed implementation of the LaunchRepository port.
// The file is re-read on every call; callers load once at startup.
type CSVLaunchRepository struct {
	Path string
}

func NewCSVLaunchRepository(path string) *CSVLaunchRepository {
	return &CSVLaunchRepository{Path: path}
}

func (c *CSVLaunchRepository) ListLaunches(ctx context.Context) (_ []domain.LaunchRecord, err error) {
	defer obs.Time(ctx, "csv.ListLaunches")(&err)

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("list launches: open %q: %w", c.Path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("list launches: %q: %w", c.Path, err)
	}
	return records, nil
}

// Parse decodes launch records from CSV with a header row.
// Columns are located by name; unknown columns are ignored.
func Parse(r io.Reader) ([]domain.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("parse csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		// Spreadsheet exports sometimes prefix the first cell with a UTF-8 BOM.
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("parse csv: missing column %q", col)
		}
	}
	versionCol, hasVersion := idx[ColBoosterVersion]

	records := make([]domain.LaunchRecord, 0, 64)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %w", line, err)
		}

		field := func(col string) string { return strings.TrimSpace(row[idx[col]]) }

		payload, err := strconv.ParseFloat(field(ColPayloadMass), 64)
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %s: %w", line, ColPayloadMass, err)
		}

		class, err := parseInt(field(ColClass))
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %s: %w", line, ColClass, err)
		}

		flight, err := parseInt(field(ColFlightNumber))
		if err != nil {
			return nil, fmt.Errorf("parse csv: line %d: %s: %w", line, ColFlightNumber, err)
		}

		rec := domain.LaunchRecord{
			FlightNumber:           flight,
			LaunchSite:             field(ColLaunchSite),
			Class:                  class,
			PayloadMassKg:          payload,
			BoosterVersionCategory: field(ColBoosterVersionCategory),
		}
		if hasVersion {
			rec.BoosterVersion = strings.TrimSpace(row[versionCol])
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseInt accepts integral values written either as "1" or "1.0".
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}
