package store

import (
	"sync"
	"testing"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
	"github.com/Joud-BaniIssa/claims-go/internal/domain/state"
)

func TestStore_DispatchTransitionsState(t *testing.T) {
	s := New()

	s.Dispatch(state.LoadClaims{})
	if !s.State().Loading {
		t.Error("expected loading set after dispatch")
	}

	s.Dispatch(state.LoadClaimsSuccess{
		Claims: []*claims.Claim{{ID: "c1", ClaimNumber: "CLA-0001"}},
		Total:  1,
		Page:   1,
	})
	snapshot := s.State()
	if snapshot.Loading {
		t.Error("expected loading cleared")
	}
	if len(snapshot.Claims) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(snapshot.Claims))
	}
}

func TestStore_SubscribeByType(t *testing.T) {
	s := New()
	ch := s.Subscribe(state.ActionLoadClaimsSuccess)

	s.Dispatch(state.LoadClaims{})
	s.Dispatch(state.LoadClaimsSuccess{Page: 1})

	select {
	case action := <-ch:
		if action.Type() != state.ActionLoadClaimsSuccess {
			t.Errorf("unexpected action type %s", action.Type())
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the subscribed action")
	}

	select {
	case action := <-ch:
		t.Errorf("unexpected second delivery: %s", action.Type())
	default:
	}
}

func TestStore_SubscribeAllSeesEveryAction(t *testing.T) {
	s := New()
	ch := s.SubscribeAll()

	s.Dispatch(state.LoadClaims{})
	s.Dispatch(state.ClearError{})

	for _, want := range []state.ActionType{state.ActionLoadClaims, state.ActionClearError} {
		select {
		case action := <-ch:
			if action.Type() != want {
				t.Errorf("expected %s, got %s", want, action.Type())
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := New()
	ch := s.SubscribeAll()
	s.UnsubscribeAll(ch)

	// The channel is closed; a receive completes immediately.
	if _, ok := <-ch; ok {
		t.Error("expected the channel closed after unsubscribe")
	}
}

func TestStore_OnHandler(t *testing.T) {
	s := New()

	var mu sync.Mutex
	var seen []state.ActionType
	done := make(chan struct{})

	s.On(state.ActionSearchClaims, func(action state.Action) {
		mu.Lock()
		seen = append(seen, action.Type())
		mu.Unlock()
		close(done)
	})

	s.Dispatch(state.SearchClaims{SearchTerm: "roof"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 || seen[0] != state.ActionSearchClaims {
		t.Errorf("unexpected handler calls: %v", seen)
	}
}

func TestStore_WithInitialState(t *testing.T) {
	seed := state.Initial()
	seed.Total = 7

	s := New(WithInitialState(seed))
	if s.State().Total != 7 {
		t.Errorf("expected seeded total 7, got %d", s.State().Total)
	}
}

func TestStore_CloseStopsDelivery(t *testing.T) {
	s := New()
	ch := s.SubscribeAll()
	s.Close()

	if _, ok := <-ch; ok {
		t.Error("expected subscriber channel closed")
	}

	// Dispatch after close is a no-op.
	s.Dispatch(state.LoadClaims{})
	if s.State().Loading {
		t.Error("expected no transition after close")
	}
}

func TestStore_ConcurrentDispatches(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(state.LoadMoreClaims{})
		}()
	}
	wg.Wait()

	// Page starts at 1 and each dispatch increments it exactly once.
	if got := s.State().Page; got != 51 {
		t.Errorf("expected page 51, got %d", got)
	}
}
