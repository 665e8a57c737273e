// Package repo provides postgres access for salary listings
package repo

import (
	"context"
	"strings"

	"salaryscope/internal/modkit/repokit"
	"salaryscope/internal/platform/store"
	str "salaryscope/internal/platform/strings"
)

// Filter narrows a listing or detail query
type Filter struct {
	Country  string
	State    string
	Location string
	Query    string
	Letter   string
}

// OccupationRow is one aggregated listing row
type OccupationRow struct {
	Slug      string
	Title     string
	AvgSalary float64
	Currency  string
	Records   int
}

// DetailRow is the aggregate for a single occupation
type DetailRow struct {
	Slug      string
	Title     string
	AvgSalary float64
	MinSalary float64
	MaxSalary float64
	Currency  string
	Records   int
}

// Repo defines the repository contract for salaries.
// ListOccupations pages by slug keyset: rows strictly after cursor, ordered
// by slug; the returned next cursor is empty on the final page
type Repo interface {
	ListOccupations(ctx context.Context, f Filter, cursor string, limit int) ([]OccupationRow, string, error)
	GetOccupation(ctx context.Context, f Filter, slug string) (DetailRow, error)
	Slugs(ctx context.Context, country string, limit int) ([]string, error)
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

func (r *queries) ListOccupations(ctx context.Context, f Filter, cursor string, limit int) ([]OccupationRow, string, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	// fetch one extra row to learn whether a next page exists
	const sql = `
select occupation_slug,
min(occupation_title) as title,
round(avg(amount))::float8 as avg_salary,
min(currency) as currency,
count(*)::int as records
from salary_records
where lower(country) = lower($1)
and ($2::text is null or lower(state) = lower($2))
and ($3::text is null or lower(location) = lower($3))
and ($4::text is null or occupation_title ilike '%' || $4 || '%')
and ($5::text is null or left(occupation_slug, 1) = $5)
and ($6::text is null or occupation_slug > $6)
group by occupation_slug
order by occupation_slug
limit $7
`
	rows, err := r.q.Query(ctx, sql,
		f.Country,
		str.SQLNull(f.State),
		str.SQLNull(f.Location),
		str.SQLNull(likeEscape(f.Query)),
		str.SQLNull(f.Letter),
		str.SQLNull(cursor),
		limit+1,
	)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []OccupationRow
	for rows.Next() {
		var rr OccupationRow
		if err := rows.Scan(&rr.Slug, &rr.Title, &rr.AvgSalary, &rr.Currency, &rr.Records); err != nil {
			return nil, "", err
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	next := ""
	if len(out) > limit {
		out = out[:limit]
		next = out[limit-1].Slug
	}
	return out, next, nil
}

// likeEscape neutralizes ILIKE metacharacters so user search text matches
// literally
func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (r *queries) GetOccupation(ctx context.Context, f Filter, slug string) (DetailRow, error) {
	const sql = `
select occupation_slug,
min(occupation_title) as title,
round(avg(amount))::float8 as avg_salary,
min(amount)::float8 as min_salary,
max(amount)::float8 as max_salary,
min(currency) as currency,
count(*)::int as records
from salary_records
where lower(country) = lower($1)
and ($2::text is null or lower(state) = lower($2))
and ($3::text is null or lower(location) = lower($3))
and occupation_slug = $4
group by occupation_slug
`
	return store.One(ctx, r.q, func(row repokit.Row) (DetailRow, error) {
		var d DetailRow
		err := row.Scan(&d.Slug, &d.Title, &d.AvgSalary, &d.MinSalary, &d.MaxSalary, &d.Currency, &d.Records)
		return d, err
	}, sql, f.Country, str.SQLNull(f.State), str.SQLNull(f.Location), slug)
}

func (r *queries) Slugs(ctx context.Context, country string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 1000
	}
	const sql = `
select distinct occupation_slug
from salary_records
where lower(country) = lower($1)
order by occupation_slug
limit $2
`
	rows, err := r.q.Query(ctx, sql, country, limit)
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
