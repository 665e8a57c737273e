// Package domain holds contracts for the geographic directory
package domain

import "context"

// DirectoryPort is the read surface other modules use for geography.
// All three calls return ordered display names
type DirectoryPort interface {
	Countries(ctx context.Context) ([]string, error)
	States(ctx context.Context, country string) ([]string, error)
	Locations(ctx context.Context, country, state string) ([]string, error)
}
