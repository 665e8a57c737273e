// Package service contains pageview analytics workflows backed by clickhouse
package service

import (
	"context"
	"strings"
	"time"

	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/platform/store"
	"salaryscope/internal/services/pageviews/domain"
)

// Table is the clickhouse table impressions land in
const Table = "pageviews"

// Service defines the service contract for pageviews
type Service interface {
	domain.EmitterPort
	domain.ReaderPort
}

// Svc implements the Service interface
type Svc struct {
	ch store.Clickhouse
}

// New creates a pageviews service. A nil clickhouse seam degrades to a
// no-op emitter so page rendering never depends on analytics being up
func New(ch store.Clickhouse) *Svc {
	return &Svc{ch: ch}
}

// Emit records one impression
func (s *Svc) Emit(ctx context.Context, v domain.View) error {
	if s.ch == nil {
		return nil
	}
	if v.OccurredAt.IsZero() {
		v.OccurredAt = time.Now().UTC()
	}
	return s.ch.Insert(ctx, Table, [][]any{
		{v.Path, strings.ToLower(v.Country), v.Kind, v.OccurredAt},
	})
}

// Popular ranks the most viewed paths for a country over the trailing window
func (s *Svc) Popular(ctx context.Context, country string, days, limit int) ([]domain.PopularRow, error) {
	if s.ch == nil {
		return nil, perr.Unavailablef("pageview analytics are not enabled")
	}
	if days <= 0 {
		days = 30
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	const sql = `
select path, count() as views
from pageviews
where country = ? and occurred_at >= now() - interval ? day
group by path
order by views desc
limit ?
`
	rows, err := s.ch.Query(ctx, sql, strings.ToLower(country), days, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.PopularRow
	for rows.Next() {
		var r domain.PopularRow
		if err := rows.Scan(&r.Path, &r.Views); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
