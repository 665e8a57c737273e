package domain

import "context"

// ServicePort defines the service contract for page resolution
type ServicePort interface {
	Resolve(ctx context.Context, country string, segments []string, page int) (Payload, error)
}
