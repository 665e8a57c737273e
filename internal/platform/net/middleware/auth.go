package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "salaryscope/internal/platform/errors"
	pnet "salaryscope/internal/platform/net"
)

// AuthPort is the seam the admin surface uses to verify credentials
type AuthPort interface {
	// Parse returns the actor name from the request or an error
	Parse(r *http.Request) (actor string, err error)
}

// Auth rejects requests the port cannot verify. A nil port disables the check
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			actor, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithActor(r.Context(), actor)))
		})
	}
}

// BearerToken is an AuthPort backed by a single static token
type BearerToken struct {
	Token string
	// Actor is the name recorded on the context for audit logs
	Actor string
}

// Parse implements AuthPort
func (b BearerToken) Parse(r *http.Request) (string, error) {
	if b.Token == "" {
		return "", perr.Unauthorizedf("admin auth not configured")
	}
	h := r.Header.Get("Authorization")
	got, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(b.Token)) != 1 {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	actor := b.Actor
	if actor == "" {
		actor = "admin"
	}
	return actor, nil
}
