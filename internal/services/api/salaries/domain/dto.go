// Package domain holds DTOs for salaries http and service contracts
package domain

// DefaultPageSize is the fixed page size for occupation listings
const DefaultPageSize = 50

// ListInput selects one listing scope and page
type ListInput struct {
	Country  string `json:"country" validate:"required,min=2,max=60" example:"australia"`
	State    string `json:"state,omitempty" validate:"omitempty,max=80" example:"Victoria"`
	Location string `json:"location,omitempty" validate:"omitempty,max=80" example:"Melbourne"`
	Query    string `json:"q,omitempty" validate:"omitempty,max=100" example:"engineer"`
	Letter   string `json:"letter,omitempty" validate:"omitempty,len=1,lowercase" example:"s"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1" example:"3"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// OccupationSummary is one row of an occupation listing
type OccupationSummary struct {
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	AvgSalary float64 `json:"avg_salary"`
	Currency  string  `json:"currency"`
	Records   int     `json:"records"`
}

// ListResult is a resolved listing page
type ListResult struct {
	Items    []OccupationSummary `json:"items"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	HasNext  bool                `json:"has_next"`
}

// DetailInput identifies one occupation page
type DetailInput struct {
	Country  string `json:"country" validate:"required"`
	State    string `json:"state,omitempty"`
	Location string `json:"location,omitempty"`
	Slug     string `json:"slug" validate:"required"`
}

// OccupationDetail is the payload for one occupation page
type OccupationDetail struct {
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Country   string  `json:"country"`
	State     string  `json:"state,omitempty"`
	Location  string  `json:"location,omitempty"`
	AvgSalary float64 `json:"avg_salary"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
	Currency  string  `json:"currency"`
	Records   int     `json:"records"`
}
