// Package service contains admin workflows for mutating salary data
package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"salaryscope/internal/core/paging"
	"salaryscope/internal/core/slugs"
	"salaryscope/internal/modkit/repokit"
	perr "salaryscope/internal/platform/errors"
	"salaryscope/internal/platform/logger"
	"salaryscope/internal/platform/net/http/bind"
	"salaryscope/internal/services/api/admin/domain"
	"salaryscope/internal/services/api/admin/repo"
)

// maxImportErrors bounds the error list in an import report
const maxImportErrors = 20

// Service defines the service contract for admin mutations
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	reg    *paging.Registry
}

// New creates an admin service. A nil registry falls back to the
// process-wide default
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], reg *paging.Registry) *Svc {
	if db == nil {
		panic("admin.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("admin.Service requires a non nil Repo binder")
	}
	if reg == nil {
		reg = paging.Default
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, reg: reg}
}

// ImportCSV ingests a salary CSV in one transaction. The first row must be a
// header naming at least country, occupation_title, amount, and currency.
// Invalid rows are skipped and reported, valid rows are inserted; a failed
// insert aborts the whole import. After a commit every memoized listing
// cursor is dropped, since a bulk load can shift any page boundary
func (s *Svc) ImportCSV(ctx context.Context, r io.Reader) (domain.ImportResult, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return domain.ImportResult{}, perr.InvalidArgf("csv header: %v", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"country", "occupation_title", "amount", "currency"} {
		if _, ok := cols[required]; !ok {
			return domain.ImportResult{}, perr.InvalidArgf("csv is missing the %q column", required)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out domain.ImportResult
	var rows []repo.Row
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return domain.ImportResult{}, perr.InvalidArgf("csv line %d: %v", line, err)
		}

		amount, err := strconv.ParseFloat(field(rec, "amount"), 64)
		if err != nil {
			out.Skipped++
			out.Errors = appendBounded(out.Errors, fmt.Sprintf("line %d: bad amount %q", line, field(rec, "amount")))
			continue
		}
		in := domain.RecordInput{
			Country:         field(rec, "country"),
			State:           field(rec, "state"),
			Location:        field(rec, "location"),
			OccupationTitle: field(rec, "occupation_title"),
			Company:         field(rec, "company"),
			Amount:          amount,
			Currency:        field(rec, "currency"),
			Period:          field(rec, "period"),
			Source:          field(rec, "source"),
		}
		if err := bind.Validate(&in); err != nil {
			out.Skipped++
			out.Errors = appendBounded(out.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		rows = append(rows, rowFromInput(in))
	}

	if len(rows) > 0 {
		err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
			r := s.binder.Bind(q)
			for _, row := range rows {
				if err := r.Insert(ctx, row); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return domain.ImportResult{}, err
		}
		out.Imported = len(rows)
		s.reg.ClearAll()
		logger.C(ctx).Info().Int("imported", out.Imported).Int("skipped", out.Skipped).Msg("csv import committed")
	}
	return out, nil
}

// Create inserts one record and invalidates that country's listing cursors
func (s *Svc) Create(ctx context.Context, in domain.RecordInput) (domain.Record, error) {
	row := rowFromInput(in)
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Record{}, err
	}
	s.reg.Clear(&paging.Scope{Country: in.Country})
	return s.record(ctx, row.ID)
}

// Update rewrites one record and invalidates that country's listing cursors
func (s *Svc) Update(ctx context.Context, id string, in domain.RecordInput) (domain.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Record{}, perr.InvalidArgf("record id must be a uuid")
	}
	row := rowFromInput(in)
	row.ID = id
	if err := s.Repo.Update(ctx, row); err != nil {
		return domain.Record{}, err
	}
	s.reg.Clear(&paging.Scope{Country: in.Country})
	return s.record(ctx, id)
}

// Delete removes one record and invalidates its country's listing cursors
func (s *Svc) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.InvalidArgf("record id must be a uuid")
	}
	country, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.reg.Clear(&paging.Scope{Country: country})
	return nil
}

func (s *Svc) record(ctx context.Context, id string) (domain.Record, error) {
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	return domain.Record{
		ID:              row.ID,
		Country:         row.Country,
		State:           row.State,
		Location:        row.Location,
		OccupationTitle: row.OccupationTitle,
		OccupationSlug:  row.OccupationSlug,
		Company:         row.Company,
		Amount:          row.Amount,
		Currency:        row.Currency,
		Period:          row.Period,
		Source:          row.Source,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func rowFromInput(in domain.RecordInput) repo.Row {
	period := in.Period
	if period == "" {
		period = "year"
	}
	return repo.Row{
		ID:              uuid.New().String(),
		Country:         strings.ToLower(strings.TrimSpace(in.Country)),
		State:           strings.TrimSpace(in.State),
		Location:        strings.TrimSpace(in.Location),
		OccupationTitle: strings.TrimSpace(in.OccupationTitle),
		OccupationSlug:  slugs.MakeOccupation(in.OccupationTitle),
		Company:         strings.TrimSpace(in.Company),
		Amount:          in.Amount,
		Currency:        in.Currency,
		Period:          period,
		Source:          strings.TrimSpace(in.Source),
	}
}

func appendBounded(errs []string, msg string) []string {
	if len(errs) >= maxImportErrors {
		return errs
	}
	return append(errs, msg)
}
