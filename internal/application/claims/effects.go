// Package claims provides the effects coordinator: the only component that
// performs I/O. It consumes the store's action stream, calls the claims API
// or draft storage, and feeds results back as resolution actions.
package claims

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
	"github.com/Joud-BaniIssa/claims-go/internal/domain/state"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/api"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/drafts"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/store"
	"github.com/Joud-BaniIssa/claims-go/internal/shared"
)

// Debounce defaults: searches wait out rapid typing, draft autosave waits
// for a longer quiet period before touching durable storage.
const (
	DefaultSearchDebounce = 300 * time.Millisecond
	DefaultDraftDebounce  = time.Second
)

// Effects coordinates asynchronous work. Requests of the same flow do not
// abort one another, but stale resolutions are discarded via per-flow
// generation counters, so the latest issued request always wins.
type Effects struct {
	store  *store.Store
	client *api.Client
	drafts drafts.Store

	searchDebounce *shared.Debouncer
	draftDebounce  *shared.Debouncer

	listGen   shared.Generation
	detailGen shared.Generation
	searchGen shared.Generation

	mu          sync.Mutex
	lastSearch  string
	hasSearched bool
}

// Option configures the effects coordinator.
type Option func(*Effects)

// WithSearchDebounce overrides the search quiet interval.
func WithSearchDebounce(interval time.Duration) Option {
	return func(e *Effects) {
		e.searchDebounce = shared.NewDebouncer(interval)
	}
}

// WithDraftDebounce overrides the draft autosave quiet interval.
func WithDraftDebounce(interval time.Duration) Option {
	return func(e *Effects) {
		e.draftDebounce = shared.NewDebouncer(interval)
	}
}

// New creates the effects coordinator. Call Run to start it.
func New(s *store.Store, client *api.Client, draftStore drafts.Store, opts ...Option) *Effects {
	e := &Effects{
		store:          s,
		client:         client,
		drafts:         draftStore,
		searchDebounce: shared.NewDebouncer(DefaultSearchDebounce),
		draftDebounce:  shared.NewDebouncer(DefaultDraftDebounce),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run consumes the action stream until the context is cancelled or the store
// closes. Each I/O flow runs in its own goroutine, so unrelated flows stay
// concurrent; the store keeps processing actions while calls are in flight.
func (e *Effects) Run(ctx context.Context) {
	actions := e.store.SubscribeAll()
	for {
		select {
		case <-ctx.Done():
			e.Stop()
			return
		case action, ok := <-actions:
			if !ok {
				e.Stop()
				return
			}
			e.handle(ctx, action)
		}
	}
}

// Stop cancels pending debounced work.
func (e *Effects) Stop() {
	e.searchDebounce.Stop()
	e.draftDebounce.Stop()
}

func (e *Effects) handle(ctx context.Context, action state.Action) {
	switch a := action.(type) {
	case state.LoadClaims:
		gen := e.listGen.Next()
		go e.loadClaims(ctx, a, gen)

	case state.LoadClaimDetails:
		gen := e.detailGen.Next()
		go e.loadClaimDetails(ctx, a, gen)

	case state.CreateClaim:
		go e.createClaim(ctx, a)

	case state.UpdateClaim:
		go e.updateClaim(ctx, a)

	case state.UploadPhoto:
		go e.uploadPhoto(ctx, a)

	case state.UploadDocument:
		go e.uploadDocument(ctx, a)

	case state.SearchClaims:
		e.scheduleSearch(ctx, a.SearchTerm)

	case state.FlagAsEmergency:
		go e.flagAsEmergency(ctx, a)

	case state.RequestAIAnalysis:
		go e.requestAIAnalysis(ctx, a)

	case state.SaveDraft:
		e.scheduleDraftSave()

	case state.LoadDraft:
		go e.loadDraft()

	case state.ClearDraft:
		e.draftDebounce.Stop()
		go e.clearDraft()

	case state.RefreshClaims:
		e.store.Dispatch(state.LoadClaims{Refresh: true})

	case state.LoadMoreClaims:
		// The reducer has already advanced the page.
		e.store.Dispatch(state.LoadClaims{Page: e.store.State().Page})
	}
}

func (e *Effects) loadClaims(ctx context.Context, a state.LoadClaims, gen uint64) {
	snapshot := e.store.State()

	page := a.Page
	if page <= 0 {
		page = snapshot.Page
	}
	query := api.ListQuery{
		Page:    page,
		Limit:   snapshot.Limit,
		Filters: snapshot.Filters,
	}

	resp, err := e.client.ListClaims(ctx, query)
	if !e.listGen.IsCurrent(gen) {
		log.Printf("[claims][effects] discarding stale list result (page %d)", page)
		return
	}
	if err != nil {
		log.Printf("[claims][effects] list load failed: %v", err)
		e.store.Dispatch(state.LoadClaimsFailure{Error: errMessage(err, "Failed to load claims")})
		return
	}

	e.store.Dispatch(state.LoadClaimsSuccess{
		Claims:    resp.Claims,
		Total:     resp.Total,
		Page:      resp.Page,
		HasMore:   resp.HasMore,
		Append:    a.Page > 1,
		FetchedAt: shared.Now(),
	})
}

func (e *Effects) loadClaimDetails(ctx context.Context, a state.LoadClaimDetails, gen uint64) {
	claim, err := e.client.GetClaim(ctx, a.ClaimID)
	if !e.detailGen.IsCurrent(gen) {
		log.Printf("[claims][effects] discarding stale detail result for %s", a.ClaimID)
		return
	}
	if err != nil {
		e.store.Dispatch(state.LoadClaimDetailsFailure{Error: errMessage(err, "Failed to load claim details")})
		return
	}
	e.store.Dispatch(state.LoadClaimDetailsSuccess{Claim: claim})
}

func (e *Effects) createClaim(ctx context.Context, a state.CreateClaim) {
	resp, err := e.client.CreateClaim(ctx, a.Form)
	if err != nil {
		log.Printf("[claims][effects] create failed: %v", err)
		e.store.Dispatch(state.CreateClaimFailure{Error: errMessage(err, "Failed to create claim")})
		return
	}

	now := time.Now()
	e.store.Dispatch(state.CreateClaimSuccess{
		Response:   *resp,
		ReceivedAt: now,
		Event:      claims.NewClaimEvent(claims.EventSubmitted, "Claim submitted", "policyholder", now),
	})
}

func (e *Effects) updateClaim(ctx context.Context, a state.UpdateClaim) {
	claim, err := e.client.UpdateClaim(ctx, a.ClaimID, a.Patch)
	if err != nil {
		e.store.Dispatch(state.UpdateClaimFailure{Error: errMessage(err, "Failed to update claim")})
		return
	}
	e.store.Dispatch(state.UpdateClaimSuccess{Claim: claim})
}

func (e *Effects) uploadPhoto(ctx context.Context, a state.UploadPhoto) {
	photo, err := e.client.UploadPhoto(ctx, a.ClaimID, a.FileName, a.Data, a.DamageArea)
	if err != nil {
		e.store.Dispatch(state.UploadPhotoFailure{Error: errMessage(err, "Failed to upload photo")})
		return
	}
	e.store.Dispatch(state.UploadPhotoSuccess{ClaimID: a.ClaimID, Photo: *photo})
}

func (e *Effects) uploadDocument(ctx context.Context, a state.UploadDocument) {
	doc, err := e.client.UploadDocument(ctx, a.ClaimID, a.FileName, a.Data, a.DocumentType)
	if err != nil {
		e.store.Dispatch(state.UploadDocumentFailure{Error: errMessage(err, "Failed to upload document")})
		return
	}
	e.store.Dispatch(state.UploadDocumentSuccess{ClaimID: a.ClaimID, Document: *doc})
}

// scheduleSearch debounces the request and suppresses unchanged consecutive
// terms so rapid typing does not translate into request bursts.
func (e *Effects) scheduleSearch(ctx context.Context, term string) {
	e.mu.Lock()
	if e.hasSearched && term == e.lastSearch {
		e.mu.Unlock()
		log.Printf("[claims][effects] search suppressed: unchanged term")
		return
	}
	e.lastSearch = term
	e.hasSearched = true
	e.mu.Unlock()

	e.searchDebounce.Do(func() {
		gen := e.searchGen.Next()

		resp, err := e.client.SearchClaims(ctx, term)
		if !e.searchGen.IsCurrent(gen) {
			log.Printf("[claims][effects] discarding stale search result for %q", term)
			return
		}
		if err != nil {
			e.store.Dispatch(state.LoadClaimsFailure{Error: errMessage(err, "Search failed")})
			return
		}
		e.store.Dispatch(state.LoadClaimsSuccess{
			Claims:    resp.Claims,
			Total:     resp.Total,
			Page:      1,
			HasMore:   resp.HasMore,
			FetchedAt: shared.Now(),
		})
	})
}

func (e *Effects) flagAsEmergency(ctx context.Context, a state.FlagAsEmergency) {
	if err := e.client.FlagEmergency(ctx, a.ClaimID); err != nil {
		e.store.Dispatch(state.FlagAsEmergencyFailure{Error: errMessage(err, "Failed to flag as emergency")})
		return
	}
	e.store.Dispatch(state.FlagAsEmergencySuccess{ClaimID: a.ClaimID})
}

func (e *Effects) requestAIAnalysis(ctx context.Context, a state.RequestAIAnalysis) {
	assessment, err := e.client.RequestAIAnalysis(ctx, a.ClaimID, a.PhotoIDs)
	if err != nil {
		e.store.Dispatch(state.AIAnalysisFailure{Error: errMessage(err, "AI analysis failed")})
		return
	}
	e.store.Dispatch(state.AIAnalysisSuccess{ClaimID: a.ClaimID, Assessment: assessment})
}

// scheduleDraftSave persists the merged draft after the quiet interval. The
// reducer has already folded the patch into the snapshot, so the snapshot's
// draft is the authoritative value to store.
func (e *Effects) scheduleDraftSave() {
	e.draftDebounce.Do(func() {
		draft := e.store.State().Draft
		if draft == nil {
			return
		}
		if err := e.drafts.Save(draft); err != nil {
			log.Printf("[claims][effects] draft autosave failed: %v", err)
		}
	})
}

func (e *Effects) loadDraft() {
	draft, err := e.drafts.Load()
	if errors.Is(err, drafts.ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("[claims][effects] draft load failed: %v", err)
		return
	}
	e.store.Dispatch(state.SaveDraft{Draft: draft})
}

func (e *Effects) clearDraft() {
	if err := e.drafts.Clear(); err != nil {
		log.Printf("[claims][effects] draft clear failed: %v", err)
	}
}

// errMessage prefers the transport error's message, falling back to a
// generic per-flow message when none is available.
func errMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
