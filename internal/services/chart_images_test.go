package services

import (
	"bytes"
	"context"
	"errors"
	"launch-dashboard-service/internal/domain"
	"strings"
	"sync"
	"testing"
)

type stubRenderer struct {
	mu      sync.Mutex
	pies    []domain.PieFigure
	scatter []domain.ScatterFigure
}

func (s *stubRenderer) PiePNG(fig domain.PieFigure) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pies = append(s.pies, fig)
	return []byte("pie:" + fig.Title), nil
}

func (s *stubRenderer) ScatterPNG(fig domain.ScatterFigure) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scatter = append(s.scatter, fig)
	return []byte("scatter:" + fig.Title), nil
}

type mapCache struct {
	m      map[string][]byte
	getErr error
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.m[key]
	return b, ok, nil
}

func (c *mapCache) Put(ctx context.Context, key string, data []byte) error {
	c.m[key] = data
	return nil
}

func TestChartImagesUsesCache(t *testing.T) {
	ds := newTestDataset(t)
	r := &stubRenderer{}
	c := &mapCache{m: map[string][]byte{}}
	images := NewChartImages(ds, r, c)

	ctx := context.Background()
	first, err := images.PiePNG(ctx, "KSC LC-39A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := images.PiePNG(ctx, "KSC LC-39A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatalf("cached output differs: %q vs %q", first, second)
	}
	if len(r.pies) != 1 {
		t.Fatalf("renderer called %d times, want 1", len(r.pies))
	}
	if r.pies[0].Title != "Mission Outcome for Launch Site KSC LC-39A" {
		t.Errorf("rendered figure title = %q", r.pies[0].Title)
	}
	if len(c.m) != 1 {
		t.Errorf("cache entries = %d, want 1", len(c.m))
	}
}

func TestChartImagesScatterKeysIncludeRange(t *testing.T) {
	ds := newTestDataset(t)
	r := &stubRenderer{}
	c := &mapCache{m: map[string][]byte{}}
	images := NewChartImages(ds, r, c)

	ctx := context.Background()
	if _, err := images.ScatterPNG(ctx, domain.AllSites, 0, 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := images.ScatterPNG(ctx, domain.AllSites, 0, 6000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.scatter) != 2 {
		t.Fatalf("renderer called %d times, want 2", len(r.scatter))
	}
	for k := range c.m {
		if !strings.HasPrefix(k, "scatter:ALL:0:") {
			t.Errorf("unexpected cache key %q", k)
		}
	}
}

func TestChartImagesCacheFailureFallsThrough(t *testing.T) {
	ds := newTestDataset(t)
	r := &stubRenderer{}
	c := &mapCache{m: map[string][]byte{}, getErr: errors.New("connection refused")}
	images := NewChartImages(ds, r, c)

	b, err := images.PiePNG(context.Background(), domain.AllSites)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "pie:Launch success by launch site" {
		t.Fatalf("got %q", b)
	}
}

func TestChartImagesWithoutCache(t *testing.T) {
	ds := newTestDataset(t)
	r := &stubRenderer{}
	images := NewChartImages(ds, r, nil)

	for i := 0; i < 2; i++ {
		if _, err := images.ScatterPNG(context.Background(), "KSC LC-39A", 0, 10000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(r.scatter) != 2 {
		t.Fatalf("renderer called %d times, want 2", len(r.scatter))
	}
}
