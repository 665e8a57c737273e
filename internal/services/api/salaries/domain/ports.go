package domain

import "context"

// ServicePort defines the service contract for salary listings
type ServicePort interface {
	List(ctx context.Context, in ListInput) (ListResult, error)
	Get(ctx context.Context, in DetailInput) (OccupationDetail, error)
}
