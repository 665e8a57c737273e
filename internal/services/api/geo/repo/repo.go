// Package repo provides postgres access for the geographic directory
package repo

import (
	"context"

	"salaryscope/internal/modkit/repokit"
)

// Repo defines the repository contract for geography lookups
type Repo interface {
	Countries(ctx context.Context) ([]string, error)
	States(ctx context.Context, country string) ([]string, error)
	Locations(ctx context.Context, country, state string) ([]string, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Countries(ctx context.Context) ([]string, error) {
	const sql = `
select distinct country
from salary_records
order by country
`
	return r.names(ctx, sql)
}

func (r *queries) States(ctx context.Context, country string) ([]string, error) {
	const sql = `
select distinct state
from salary_records
where lower(country) = lower($1) and state <> ''
order by state
`
	return r.names(ctx, sql, country)
}

func (r *queries) Locations(ctx context.Context, country, state string) ([]string, error) {
	const sql = `
select distinct location
from salary_records
where lower(country) = lower($1) and lower(state) = lower($2) and location <> ''
order by location
`
	return r.names(ctx, sql, country, state)
}

func (r *queries) names(ctx context.Context, sql string, args ...any) ([]string, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
