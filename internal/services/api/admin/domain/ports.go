package domain

import (
	"context"
	"io"
)

// ServicePort defines the admin contract for mutating salary data
type ServicePort interface {
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
	Create(ctx context.Context, in RecordInput) (Record, error)
	Update(ctx context.Context, id string, in RecordInput) (Record, error)
	Delete(ctx context.Context, id string) error
}
