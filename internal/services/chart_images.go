package services

import (
	"context"
	"fmt"
	"launch-dashboard-service/internal/domain"
	"launch-dashboard-service/internal/platform/obs"
	"launch-dashboard-service/internal/ports"
	"log"
	"net/url"
	"strconv"

	"golang.org/x/sync/singleflight"
)

// ChartImages renders the dashboard charts to PNG.
//
// Output depends only on the filters, so identical concurrent requests share
// one render and finished images may be kept in an optional cache. Cache
// failures are logged and never fail a request.
type ChartImages struct {
	Dataset  *domain.Dataset
	Renderer ports.ChartRenderer
	Cache    ports.ChartCache

	group singleflight.Group
}

func NewChartImages(ds *domain.Dataset, renderer ports.ChartRenderer, cache ports.ChartCache) *ChartImages {
	return &ChartImages{Dataset: ds, Renderer: renderer, Cache: cache}
}

func (c *ChartImages) PiePNG(ctx context.Context, site string) ([]byte, error) {
	key := "pie:" + url.QueryEscape(site)
	return c.load(ctx, key, func() ([]byte, error) {
		return c.Renderer.PiePNG(PieChart(c.Dataset, site))
	})
}

func (c *ChartImages) ScatterPNG(ctx context.Context, site string, low, high float64) ([]byte, error) {
	key := fmt.Sprintf("scatter:%s:%s:%s",
		url.QueryEscape(site),
		strconv.FormatFloat(low, 'g', -1, 64),
		strconv.FormatFloat(high, 'g', -1, 64),
	)
	return c.load(ctx, key, func() ([]byte, error) {
		return c.Renderer.ScatterPNG(ScatterChart(c.Dataset, site, low, high))
	})
}

func (c *ChartImages) load(ctx context.Context, key string, render func() ([]byte, error)) (_ []byte, err error) {
	defer obs.Time(ctx, "chart.render "+key)(&err)

	if c.Cache != nil {
		b, ok, err := c.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s chart cache get failed key=%s err=%v", obs.RequestID(ctx), key, err)
		}
		if ok {
			return b, nil
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		return render()
	})
	if err != nil {
		return nil, fmt.Errorf("chart images: %s: %w", key, err)
	}
	b := v.([]byte)

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, key, b); err != nil {
			log.Printf("req_id=%s chart cache put failed key=%s err=%v", obs.RequestID(ctx), key, err)
		}
	}

	return b, nil
}
