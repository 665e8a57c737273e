// Package domain holds contracts for pageview analytics
package domain

import (
	"context"
	"time"
)

// View is one recorded page impression
type View struct {
	Path       string    `json:"path"`
	Country    string    `json:"country"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PopularRow is one entry of a most-viewed ranking
type PopularRow struct {
	Path  string `json:"path"`
	Views uint64 `json:"views"`
}

// EmitterPort records page impressions; implementations must be safe to call
// from short-lived goroutines
type EmitterPort interface {
	Emit(ctx context.Context, v View) error
}

// ReaderPort serves pageview rankings
type ReaderPort interface {
	Popular(ctx context.Context, country string, days, limit int) ([]PopularRow, error)
}
