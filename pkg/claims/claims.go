// Package claimsapp provides the public API for claims-go.
//
// It wires the action store, the HTTP claims client, draft persistence, and
// the effects coordinator into one App. Callers dispatch actions and read
// state snapshots; all network and storage work happens asynchronously.
//
// Example:
//
//	app, err := claimsapp.New(claimsapp.Config{
//	    APIBaseURL: "https://example.com/api",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close()
//
//	app.Dispatch(claimsapp.LoadClaims{})
package claimsapp

import (
	"context"
	"time"

	appclaims "github.com/Joud-BaniIssa/claims-go/internal/application/claims"
	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
	"github.com/Joud-BaniIssa/claims-go/internal/domain/state"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/api"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/drafts"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/store"
)

// Re-export entity types for the public API.
type (
	Claim               = claims.Claim
	ClaimStatus         = claims.ClaimStatus
	ClaimType           = claims.ClaimType
	ClaimDraft          = claims.ClaimDraft
	ClaimFilters        = claims.ClaimFilters
	ClaimPatch          = claims.ClaimPatch
	ClaimInitiationForm = claims.ClaimInitiationForm
	ClaimEvent          = claims.ClaimEvent
	Document            = claims.Document
	DocumentType        = claims.DocumentType
	Photo               = claims.Photo
	DamageArea          = claims.DamageArea
	AIAssessment        = claims.AIAssessment
	Location            = claims.Location
	Adjuster            = claims.Adjuster
	SortField           = claims.SortField
	SortOrder           = claims.SortOrder
)

// Re-export state, action, and view types.
type (
	State  = state.State
	Action = state.Action

	LoadClaims        = state.LoadClaims
	LoadClaimDetails  = state.LoadClaimDetails
	SetActiveClaim    = state.SetActiveClaim
	ClearActiveClaim  = state.ClearActiveClaim
	CreateClaim       = state.CreateClaim
	UpdateClaim       = state.UpdateClaim
	UploadPhoto       = state.UploadPhoto
	UploadDocument    = state.UploadDocument
	SetFilters        = state.SetFilters
	ClearFilters      = state.ClearFilters
	SearchClaims      = state.SearchClaims
	FlagAsEmergency   = state.FlagAsEmergency
	RequestAIAnalysis = state.RequestAIAnalysis
	SaveDraft         = state.SaveDraft
	LoadDraft         = state.LoadDraft
	ClearDraft        = state.ClearDraft
	SetLoading        = state.SetLoading
	ClearError        = state.ClearError
	InvalidateCache   = state.InvalidateCache
	RefreshClaims     = state.RefreshClaims
	LoadMoreClaims    = state.LoadMoreClaims
	ResetPagination   = state.ResetPagination

	Summary      = state.ClaimsSummary
	Pagination   = state.PaginationView
	LoadingState = state.LoadingView
	CacheStatus  = state.CacheView
)

// DraftSettleDelay is how long a caller should allow for a dispatched draft
// change to reach durable storage: the autosave quiet interval plus margin.
const DraftSettleDelay = appclaims.DefaultDraftDebounce + 250*time.Millisecond

// Config holds App settings.
type Config struct {
	// APIBaseURL is the claims API root. Required.
	APIBaseURL string

	// APITimeout bounds each API request. Zero means the client default.
	APITimeout time.Duration

	// DraftDBPath locates the draft database. Empty keeps drafts in memory.
	DraftDBPath string

	// SearchDebounce and DraftDebounce override the effect quiet intervals.
	// Zero keeps the defaults.
	SearchDebounce time.Duration
	DraftDebounce  time.Duration
}

// App is the assembled claims application.
type App struct {
	store   *store.Store
	drafts  drafts.Store
	effects *appclaims.Effects
	cancel  context.CancelFunc
}

// New assembles and starts an App from the config.
func New(cfg Config) (*App, error) {
	client, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
	})
	if err != nil {
		return nil, err
	}

	var draftStore drafts.Store
	if cfg.DraftDBPath != "" {
		draftStore, err = drafts.NewSQLiteStore(cfg.DraftDBPath)
		if err != nil {
			return nil, err
		}
	} else {
		draftStore = drafts.NewMemoryStore()
	}

	s := store.New()

	var opts []appclaims.Option
	if cfg.SearchDebounce > 0 {
		opts = append(opts, appclaims.WithSearchDebounce(cfg.SearchDebounce))
	}
	if cfg.DraftDebounce > 0 {
		opts = append(opts, appclaims.WithDraftDebounce(cfg.DraftDebounce))
	}
	effects := appclaims.New(s, client, draftStore, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	go effects.Run(ctx)

	return &App{
		store:   s,
		drafts:  draftStore,
		effects: effects,
		cancel:  cancel,
	}, nil
}

// Dispatch sends an action through the store.
func (a *App) Dispatch(action Action) {
	a.store.Dispatch(action)
}

// State returns the current state snapshot.
func (a *App) State() State {
	return a.store.State()
}

// Subscribe returns a channel receiving every dispatched action.
func (a *App) Subscribe() <-chan Action {
	return a.store.SubscribeAll()
}

// WaitFor dispatches nothing; it blocks until pred holds for a state
// snapshot observed after some action, or the context ends. Useful for
// callers that dispatch a request and want its resolution.
func (a *App) WaitFor(ctx context.Context, pred func(State) bool) (State, error) {
	if s := a.store.State(); pred(s) {
		return s, nil
	}

	actions := a.store.SubscribeAll()
	defer a.store.UnsubscribeAll(actions)

	// Re-check: a transition may have landed before the subscription did.
	if s := a.store.State(); pred(s) {
		return s, nil
	}

	for {
		select {
		case <-ctx.Done():
			return a.store.State(), ctx.Err()
		case _, ok := <-actions:
			if !ok {
				return a.store.State(), context.Canceled
			}
			if s := a.store.State(); pred(s) {
				return s, nil
			}
		}
	}
}

// Selector shortcuts over the current snapshot.

// Summary computes the dashboard aggregates.
func (a *App) Summary() Summary {
	return state.Summary(a.store.State())
}

// RecentClaims returns claims reported in the last thirty days, newest
// first, capped at five.
func (a *App) RecentClaims() []*Claim {
	return state.RecentClaims(a.store.State(), time.Now())
}

// FilteredClaims applies the active filters and sort to the loaded claims.
func (a *App) FilteredClaims() []*Claim {
	return state.FilteredClaims(a.store.State())
}

// Cache reports freshness of the loaded list.
func (a *App) Cache() CacheStatus {
	return state.CacheStatus(a.store.State(), time.Now())
}

// Close stops the effects loop and releases draft storage.
func (a *App) Close() error {
	a.cancel()
	a.store.Close()
	return a.drafts.Close()
}
