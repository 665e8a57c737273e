package paging

import (
	"context"
	"strconv"
	"sync"
)

// Page is one fetched slice of a listing. An empty NextCursor marks the end
// of the result set
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// FetchFunc loads one page of a listing starting at cursor. An empty cursor
// means the first page
type FetchFunc[T any] func(ctx context.Context, cursor string) (Page[T], error)

// Resolution is the outcome of resolving a page number to a cursor.
// Available=false means the listing ends before the requested page; callers
// should surface that as not found rather than clamping to the last page
type Resolution struct {
	Cursor    string
	Available bool
}

type entry struct {
	scope  Scope
	cursor string
}

// Registry memoizes page->cursor mappings per listing scope. Entries are
// upserted last-write-wins; concurrent walkers of the same scope may redo
// each other's fetches but always converge on the same cursors
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Default is the process-wide registry used by the listing services
var Default = NewRegistry()

func entryKey(scope Scope, page int) string {
	return scope.Key() + keySep + "p" + strconv.Itoa(page)
}

func (r *Registry) cursorFor(scope Scope, page int) (string, bool) {
	r.mu.RLock()
	e, ok := r.entries[entryKey(scope, page)]
	r.mu.RUnlock()
	return e.cursor, ok
}

func (r *Registry) put(scope Scope, page int, cursor string) {
	key := entryKey(scope, page)
	r.mu.Lock()
	r.entries[key] = entry{scope: scope.normalized(), cursor: cursor}
	r.mu.Unlock()
}

func (r *Registry) remove(scope Scope, page int) {
	r.mu.Lock()
	delete(r.entries, entryKey(scope, page))
	r.mu.Unlock()
}

// RememberNextCursor records the cursor that starts page+1 of scope. Passing
// an empty next deletes any stale entry instead, so a shrunken listing stops
// advertising pages it no longer has. Deleting an absent entry is a no-op
func (r *Registry) RememberNextCursor(scope Scope, page int, next string) {
	if next == "" {
		r.remove(scope, page+1)
		return
	}
	r.put(scope, page+1, next)
}

// Len reports the number of memoized entries
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.entries)
	r.mu.RUnlock()
	return n
}

// Clear drops every entry whose scope matches all fields set on filter.
// Zero-valued filter fields match anything; a nil filter clears everything
func (r *Registry) Clear(filter *Scope) {
	if filter == nil {
		r.ClearAll()
		return
	}
	r.mu.Lock()
	for k, e := range r.entries {
		if e.scope.matches(*filter) {
			delete(r.entries, k)
		}
	}
	r.mu.Unlock()
}

// ClearAll empties the registry. Called after bulk data imports, when every
// memoized cursor may point into a result set that no longer exists
func (r *Registry) ClearAll() {
	r.mu.Lock()
	r.entries = make(map[string]entry)
	r.mu.Unlock()
}

// ResolveCursorForPage turns a 1-based page number into the cursor that
// starts that page, fetching and memoizing intermediate pages as needed.
// Page 1 (and anything below) resolves to the empty cursor without touching
// the registry or the data layer. Fetch errors propagate unwrapped
func ResolveCursorForPage[T any](ctx context.Context, r *Registry, scope Scope, page int, fetch FetchFunc[T]) (Resolution, error) {
	if page <= 1 {
		return Resolution{Cursor: "", Available: true}, nil
	}
	cursor := ""
	for p := 1; p < page; p++ {
		if c, ok := r.cursorFor(scope, p+1); ok {
			cursor = c
			continue
		}
		res, err := fetch(ctx, cursor)
		if err != nil {
			return Resolution{}, err
		}
		if res.NextCursor == "" {
			// the listing ends at page p, short of the request
			return Resolution{Available: false}, nil
		}
		r.put(scope, p+1, res.NextCursor)
		cursor = res.NextCursor
	}
	return Resolution{Cursor: cursor, Available: true}, nil
}
