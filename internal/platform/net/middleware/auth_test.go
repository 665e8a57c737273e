package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "salaryscope/internal/platform/net"
	"salaryscope/internal/platform/net/middleware"
)

func writeStub(w http.ResponseWriter, status int, _ any) {
	w.WriteHeader(status)
}

func TestAuthNilPortPassesThrough(t *testing.T) {
	t.Parallel()

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	mw := middleware.Auth(nil, writeStub)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	port := middleware.BearerToken{Token: "sekrit", Actor: "ops"}
	mw := middleware.Auth(port, writeStub)

	var actor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = pnet.Actor(r.Context())
		w.WriteHeader(200)
	})

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer sekrit", 200},
		{"wrong token", "Bearer nope", 401},
		{"missing header", "", 401},
		{"not bearer", "Basic abc", 401},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			mw(next).ServeHTTP(rr, req)
			if rr.Code != tc.code {
				t.Fatalf("code = %d, want %d", rr.Code, tc.code)
			}
		})
	}
	if actor != "ops" {
		t.Fatalf("actor = %q", actor)
	}
}

func TestBearerTokenUnconfiguredRejects(t *testing.T) {
	t.Parallel()

	mw := middleware.Auth(middleware.BearerToken{}, writeStub)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)
	if rr.Code != 401 {
		t.Fatalf("code = %d, want 401", rr.Code)
	}
}
