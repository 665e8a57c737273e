// Package domain holds DTOs for the admin record API
package domain

// RecordInput is a salary record create/update payload
type RecordInput struct {
	Country         string  `json:"country" validate:"required,min=2,max=60" example:"australia"`
	State           string  `json:"state,omitempty" validate:"omitempty,max=80" example:"Victoria"`
	Location        string  `json:"location,omitempty" validate:"omitempty,max=80" example:"Melbourne"`
	OccupationTitle string  `json:"occupation_title" validate:"required,min=2,max=200" example:"Software Engineer"`
	Company         string  `json:"company,omitempty" validate:"omitempty,max=200" example:"Acme Pty Ltd"`
	Amount          float64 `json:"amount" validate:"required,gt=0" example:"115000"`
	Currency        string  `json:"currency" validate:"required,len=3,uppercase" example:"AUD"`
	Period          string  `json:"period,omitempty" validate:"omitempty,oneof=year month week hour" example:"year"`
	Source          string  `json:"source,omitempty" validate:"omitempty,max=200" example:"survey-2026"`
}

// Record is a stored salary record
type Record struct {
	ID              string  `json:"id"`
	Country         string  `json:"country"`
	State           string  `json:"state,omitempty"`
	Location        string  `json:"location,omitempty"`
	OccupationTitle string  `json:"occupation_title"`
	OccupationSlug  string  `json:"occupation_slug"`
	Company         string  `json:"company,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Period          string  `json:"period"`
	Source          string  `json:"source,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ImportResult summarizes one CSV import
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
