// Package repo provides postgres writes for admin record mutations
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"salaryscope/internal/modkit/repokit"
	perr "salaryscope/internal/platform/errors"
	str "salaryscope/internal/platform/strings"
)

// Row is one salary record as stored
type Row struct {
	ID              string
	Country         string
	State           string
	Location        string
	OccupationTitle string
	OccupationSlug  string
	Company         string
	Amount          float64
	Currency        string
	Period          string
	Source          string
	CreatedAt       string
	UpdatedAt       string
}

// Repo defines the repository contract for record mutations
type Repo interface {
	Insert(ctx context.Context, row Row) error
	Update(ctx context.Context, row Row) error
	// Delete removes a record and reports which country it belonged to
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, id string) (Row, error)
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

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into salary_records
(id, country, state, location, occupation_title, occupation_slug, company, amount, currency, period, source, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
`
	_, err := r.q.Exec(ctx, sql,
		row.ID, row.Country, row.State, row.Location,
		row.OccupationTitle, row.OccupationSlug, row.Company,
		row.Amount, row.Currency, row.Period, str.SQLNull(row.Source),
	)
	if err != nil {
		return perr.FromDB(err, "insert salary record")
	}
	return nil
}

func (r *queries) Update(ctx context.Context, row Row) error {
	const sql = `
update salary_records
set country = $2, state = $3, location = $4,
occupation_title = $5, occupation_slug = $6, company = $7,
amount = $8, currency = $9, period = $10, source = $11,
updated_at = now()
where id = $1
`
	tag, err := r.q.Exec(ctx, sql,
		row.ID, row.Country, row.State, row.Location,
		row.OccupationTitle, row.OccupationSlug, row.Company,
		row.Amount, row.Currency, row.Period, str.SQLNull(row.Source),
	)
	if err != nil {
		return perr.FromDB(err, "update salary record")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("record %s not found", row.ID)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) (string, error) {
	const sql = `
delete from salary_records
where id = $1
returning country
`
	var country string
	if err := r.q.QueryRow(ctx, sql, id).Scan(&country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", perr.NotFoundf("record %s not found", id)
		}
		return "", perr.FromDB(err, "delete salary record")
	}
	return country, nil
}

func (r *queries) Get(ctx context.Context, id string) (Row, error) {
	const sql = `
select id, country, state, location, occupation_title, occupation_slug,
coalesce(company, ''), amount, currency, period, coalesce(source, ''),
created_at::text, updated_at::text
from salary_records
where id = $1
`
	row := r.q.QueryRow(ctx, sql, id)
	var out Row
	err := row.Scan(&out.ID, &out.Country, &out.State, &out.Location,
		&out.OccupationTitle, &out.OccupationSlug, &out.Company,
		&out.Amount, &out.Currency, &out.Period, &out.Source,
		&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Row{}, perr.NotFoundf("record %s not found", id)
		}
		return Row{}, perr.FromDB(err, "get salary record")
	}
	return out, nil
}
