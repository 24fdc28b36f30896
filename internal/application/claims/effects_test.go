package claims

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
	"github.com/Joud-BaniIssa/claims-go/internal/domain/state"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/api"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/drafts"
	"github.com/Joud-BaniIssa/claims-go/internal/infrastructure/store"
)

const testDebounce = 25 * time.Millisecond

type fixture struct {
	store  *store.Store
	drafts *drafts.MemoryStore
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.New(api.Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	s := store.New()
	draftStore := drafts.NewMemoryStore()
	effects := New(s, client, draftStore,
		WithSearchDebounce(testDebounce),
		WithDraftDebounce(testDebounce),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go effects.Run(ctx)
	t.Cleanup(func() {
		cancel()
		s.Close()
	})

	return &fixture{store: s, drafts: draftStore}
}

// waitState polls until pred holds or the deadline passes.
func waitState(t *testing.T, s *store.Store, pred func(state.State) bool) state.State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snapshot := s.State(); pred(snapshot) {
			return snapshot
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached; state: %+v", s.State())
	return state.State{}
}

func listBody(page int, ids ...string) map[string]any {
	list := make([]map[string]any, len(ids))
	for i, id := range ids {
		list[i] = map[string]any{"id": id, "claimNumber": "CLA-" + id}
	}
	return map[string]any{
		"claims": list, "total": len(ids), "page": page, "limit": 10, "hasMore": page == 1,
	}
}

func TestEffects_LoadClaims(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(listBody(1, "c1", "c2"))
	})

	fx.store.Dispatch(state.LoadClaims{})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 2 })
	if snapshot.Error != "" {
		t.Errorf("unexpected error %q", snapshot.Error)
	}
	if snapshot.LastFetch == 0 || !snapshot.CacheValid {
		t.Errorf("expected cache bookkeeping, got lastFetch=%d valid=%v", snapshot.LastFetch, snapshot.CacheValid)
	}
}

func TestEffects_LoadClaimsFailure(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "backend down"})
	})

	fx.store.Dispatch(state.LoadClaims{})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return !s.Loading && s.Error != "" })
	if snapshot.Error != "backend down" {
		t.Errorf("expected the backend message, got %q", snapshot.Error)
	}
}

func TestEffects_LoadMoreAppends(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page <= 1 {
			json.NewEncoder(w).Encode(listBody(1, "c1"))
			return
		}
		json.NewEncoder(w).Encode(listBody(2, "c2"))
	})

	fx.store.Dispatch(state.LoadClaims{})
	waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 1 })

	fx.store.Dispatch(state.LoadMoreClaims{})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 2 })
	if snapshot.Claims[0].ID != "c1" || snapshot.Claims[1].ID != "c2" {
		t.Errorf("unexpected order: %s then %s", snapshot.Claims[0].ID, snapshot.Claims[1].ID)
	}
	if snapshot.Page != 2 {
		t.Errorf("expected page 2, got %d", snapshot.Page)
	}
}

func TestEffects_RefreshReloadsFromPageOne(t *testing.T) {
	var mu sync.Mutex
	var pages []string
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		pages = append(pages, r.URL.Query().Get("page"))
		mu.Unlock()
		json.NewEncoder(w).Encode(listBody(1, "c1"))
	})

	fx.store.Dispatch(state.RefreshClaims{})

	waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 1 })

	mu.Lock()
	defer mu.Unlock()
	if len(pages) != 1 || pages[0] != "1" {
		t.Errorf("expected one request for page 1, got %v", pages)
	}
}

func TestEffects_SearchDebounce(t *testing.T) {
	var mu sync.Mutex
	var terms []string
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		terms = append(terms, r.URL.Query().Get("q"))
		mu.Unlock()
		json.NewEncoder(w).Encode(listBody(1, "c1"))
	})

	fx.store.Dispatch(state.SearchClaims{SearchTerm: "r"})
	fx.store.Dispatch(state.SearchClaims{SearchTerm: "ro"})
	fx.store.Dispatch(state.SearchClaims{SearchTerm: "roof"})

	waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 1 })

	mu.Lock()
	defer mu.Unlock()
	if len(terms) != 1 || terms[0] != "roof" {
		t.Errorf("expected one request for the final term, got %v", terms)
	}
}

func TestEffects_SearchSuppressesRepeatedTerm(t *testing.T) {
	var mu sync.Mutex
	requests := 0
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		json.NewEncoder(w).Encode(listBody(1, "c1"))
	})

	fx.store.Dispatch(state.SearchClaims{SearchTerm: "roof"})
	waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 1 })

	fx.store.Dispatch(state.SearchClaims{SearchTerm: "roof"})
	time.Sleep(4 * testDebounce)

	mu.Lock()
	defer mu.Unlock()
	if requests != 1 {
		t.Errorf("expected the repeated term suppressed, got %d requests", requests)
	}
}

func TestEffects_CreateClaim(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "claimId": "srv-1", "claimNumber": "CLA-9001", "message": "Received",
		})
	})

	fx.store.Dispatch(state.CreateClaim{Form: claims.ClaimInitiationForm{Description: "hail damage"}})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return !s.Submitting && len(s.Claims) == 1 })
	created := snapshot.Claims[0]
	if created.ID != "srv-1" || created.ClaimNumber != "CLA-9001" {
		t.Errorf("unexpected claim %s / %s", created.ID, created.ClaimNumber)
	}
	if snapshot.Total != 1 {
		t.Errorf("expected total 1, got %d", snapshot.Total)
	}
	if len(created.Timeline) != 1 || created.Timeline[0].Type != claims.EventSubmitted {
		t.Fatalf("expected a submission timeline entry, got %+v", created.Timeline)
	}
	if created.Timeline[0].ID == "" {
		t.Error("expected a generated event ID")
	}
}

func TestEffects_CreateClaimFailure(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "description required"})
	})

	fx.store.Dispatch(state.CreateClaim{Form: claims.ClaimInitiationForm{}})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return !s.Submitting && s.Error != "" })
	if snapshot.Error != "description required" {
		t.Errorf("unexpected error %q", snapshot.Error)
	}
	if len(snapshot.Claims) != 0 {
		t.Error("a failed submission must not add a claim")
	}
}

func TestEffects_DraftAutosave(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("draft persistence must not touch the network")
	})

	desc := "hail damage on the roof"
	fx.store.Dispatch(state.SaveDraft{Draft: &claims.ClaimDraft{Description: &desc}})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if saved, err := fx.drafts.Load(); err == nil {
			if saved.Description == nil || *saved.Description != desc {
				t.Errorf("unexpected persisted draft %+v", saved)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("draft was never persisted")
}

func TestEffects_DraftAutosavePersistsMergedDraft(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	desc := "hail damage"
	when := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	fx.store.Dispatch(state.SaveDraft{Draft: &claims.ClaimDraft{Description: &desc}})
	fx.store.Dispatch(state.SaveDraft{Draft: &claims.ClaimDraft{IncidentDate: &when}})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		saved, err := fx.drafts.Load()
		if err == nil && saved.IncidentDate != nil {
			if saved.Description == nil || *saved.Description != desc {
				t.Error("persisted draft must carry fields from earlier patches")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("merged draft was never persisted")
}

func TestEffects_LoadDraftRehydrates(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	desc := "saved earlier"
	if err := fx.drafts.Save(&claims.ClaimDraft{Description: &desc}); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	fx.store.Dispatch(state.LoadDraft{})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return s.Draft != nil })
	if snapshot.Draft.Description == nil || *snapshot.Draft.Description != desc {
		t.Errorf("unexpected rehydrated draft %+v", snapshot.Draft)
	}
}

func TestEffects_LoadDraftWithoutSavedDraft(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	fx.store.Dispatch(state.LoadDraft{})
	time.Sleep(50 * time.Millisecond)

	if fx.store.State().Draft != nil {
		t.Error("a missing draft must leave the state untouched")
	}
	if fx.store.State().Error != "" {
		t.Error("a missing draft is not an error")
	}
}

func TestEffects_ClearDraftClearsStorage(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	desc := "to be discarded"
	if err := fx.drafts.Save(&claims.ClaimDraft{Description: &desc}); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	fx.store.Dispatch(state.ClearDraft{})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := fx.drafts.Load(); err != nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("draft storage was never cleared")
}

func TestEffects_EmergencyFlag(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		json.NewEncoder(w).Encode(listBody(1, "c1"))
	})

	fx.store.Dispatch(state.LoadClaims{})
	waitState(t, fx.store, func(s state.State) bool { return !s.Loading && len(s.Claims) == 1 })

	fx.store.Dispatch(state.FlagAsEmergency{ClaimID: "c1"})

	snapshot := waitState(t, fx.store, func(s state.State) bool {
		return !s.Loading && len(s.Claims) == 1 && s.Claims[0].EmergencyFlag
	})
	if snapshot.Error != "" {
		t.Errorf("unexpected error %q", snapshot.Error)
	}
}

func TestEffects_DetailLoad(t *testing.T) {
	fx := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "c7", "claimNumber": "CLA-0007"})
	})

	fx.store.Dispatch(state.LoadClaimDetails{ClaimID: "c7"})

	snapshot := waitState(t, fx.store, func(s state.State) bool { return s.ActiveClaim != nil })
	if snapshot.ActiveClaim.ClaimNumber != "CLA-0007" {
		t.Errorf("unexpected active claim %+v", snapshot.ActiveClaim)
	}
}
