// Package state holds the claims client state: the snapshot type, the closed
// action set, the pure reducer, and the selector functions. Nothing in this
// package performs I/O; effects live in the application layer.
package state

import (
	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

// DefaultPageSize is the page limit used until the backend says otherwise.
const DefaultPageSize = 10

// State is the single in-memory snapshot owned by the store. It is only ever
// replaced by the reducer, never mutated in place; claims are held by pointer
// so an id-targeted patch leaves every other entry's identity unchanged.
type State struct {
	// Current claims data.
	Claims      []*claims.Claim
	ActiveClaim *claims.Claim

	// Pagination and filtering.
	Total   int
	Page    int
	Limit   int
	HasMore bool
	Filters claims.ClaimFilters

	// Request lifecycle flags, one per flow.
	Loading    bool
	Submitting bool
	Uploading  bool

	// Most recent error message; empty means none.
	Error string

	// Locally persisted creation form.
	Draft *claims.ClaimDraft

	// Cache bookkeeping. LastFetch is milliseconds since epoch, 0 = never.
	LastFetch  int64
	CacheValid bool
}

// Initial returns the all-empty snapshot created once at application start.
func Initial() State {
	return State{
		Claims:  []*claims.Claim{},
		Page:    1,
		Limit:   DefaultPageSize,
		Filters: claims.ClaimFilters{},
	}
}
