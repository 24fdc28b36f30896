package state

import (
	"testing"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

func claimWith(id string, status claims.ClaimStatus, reported time.Time) *claims.Claim {
	return &claims.Claim{
		ID:           id,
		ClaimNumber:  "CLA-" + id,
		Status:       status,
		Type:         claims.TypeAutoCollision,
		DateReported: reported,
		UpdatedAt:    reported,
	}
}

func TestRecentClaims_WindowAndCap(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	s := Initial()
	s.Claims = []*claims.Claim{
		claimWith("today", claims.StatusSubmitted, now),
		claimWith("edge", claims.StatusSubmitted, now.AddDate(0, 0, -29)),
		claimWith("out", claims.StatusSubmitted, now.AddDate(0, 0, -31)),
	}

	recent := RecentClaims(s, now)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent claims, got %d", len(recent))
	}
	if recent[0].ID != "today" || recent[1].ID != "edge" {
		t.Errorf("expected newest first, got %s then %s", recent[0].ID, recent[1].ID)
	}

	t.Run("capped at five", func(t *testing.T) {
		many := Initial()
		for i := 0; i < 8; i++ {
			many.Claims = append(many.Claims, claimWith(string(rune('a'+i)), claims.StatusSubmitted, now.AddDate(0, 0, -i)))
		}
		if got := RecentClaims(many, now); len(got) != 5 {
			t.Errorf("expected 5, got %d", len(got))
		}
	})
}

func TestStatusPartitions(t *testing.T) {
	s := Initial()
	s.Claims = []*claims.Claim{
		claimWith("p1", claims.StatusUnderReview, time.Time{}),
		claimWith("p2", claims.StatusProcessing, time.Time{}),
		claimWith("t1", claims.StatusApproved, time.Time{}),
		claimWith("t2", claims.StatusClosed, time.Time{}),
		claimWith("d1", claims.StatusDraft, time.Time{}),
	}
	s.Claims[0].EmergencyFlag = true

	if got := len(PendingClaims(s)); got != 2 {
		t.Errorf("expected 2 pending, got %d", got)
	}
	if got := len(ActiveClaims(s)); got != 3 {
		t.Errorf("expected 3 active, got %d", got)
	}
	if got := len(EmergencyClaims(s)); got != 1 {
		t.Errorf("expected 1 emergency, got %d", got)
	}

	byStatus := ClaimsByStatus(s)
	if len(byStatus[claims.StatusApproved]) != 1 {
		t.Errorf("expected 1 approved in partition, got %d", len(byStatus[claims.StatusApproved]))
	}
}

func TestSummary_Aggregates(t *testing.T) {
	reported := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	withAmounts := func(id string, status claims.ClaimStatus, estimated *float64, approved *float64, updated time.Time) *claims.Claim {
		c := claimWith(id, status, reported)
		c.EstimatedDamage = estimated
		c.ApprovedAmount = approved
		c.UpdatedAt = updated
		return c
	}
	f := func(v float64) *float64 { return &v }

	s := Initial()
	s.Claims = []*claims.Claim{
		withAmounts("a", claims.StatusApproved, f(100), f(80), reported.AddDate(0, 0, 10)),
		withAmounts("b", claims.StatusRejected, f(200), nil, reported.AddDate(0, 0, 20)),
		withAmounts("c", claims.StatusUnderReview, nil, nil, reported),
	}

	summary := Summary(s)
	if summary.TotalClaims != 3 {
		t.Errorf("expected 3 total, got %d", summary.TotalClaims)
	}
	if summary.TotalEstimatedDamage != 300 {
		t.Errorf("claims without an estimate must contribute zero: got %v", summary.TotalEstimatedDamage)
	}
	if summary.TotalApprovedAmount != 80 {
		t.Errorf("expected 80 approved, got %v", summary.TotalApprovedAmount)
	}
	// Terminal claims took 10 and 20 days; mean is 15.
	if summary.AverageProcessingTime != 15 {
		t.Errorf("expected 15 days, got %d", summary.AverageProcessingTime)
	}
	// One approved of three claims, rounded.
	if summary.ApprovalRate != 33 {
		t.Errorf("expected 33%%, got %d%%", summary.ApprovalRate)
	}
}

func TestSummary_EmptyState(t *testing.T) {
	summary := Summary(Initial())
	if summary.ApprovalRate != 0 {
		t.Errorf("expected 0%% on empty state, got %d%%", summary.ApprovalRate)
	}
	if summary.AverageProcessingTime != 0 {
		t.Errorf("expected 0 days on empty state, got %d", summary.AverageProcessingTime)
	}
}

func TestFilteredClaims(t *testing.T) {
	reported := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	f := func(v float64) *float64 { return &v }

	roof := claimWith("roof", claims.StatusSubmitted, reported)
	roof.Description = "Roof damaged by hail"
	roof.EstimatedDamage = f(5000)

	fender := claimWith("fender", claims.StatusApproved, reported.AddDate(0, 0, -5))
	fender.Description = "Fender bender downtown"
	fender.EstimatedDamage = f(800)
	fender.Type = claims.TypeAutoLiability

	s := Initial()
	s.Claims = []*claims.Claim{roof, fender}

	t.Run("search term matches the description", func(t *testing.T) {
		s := s
		s.Filters = claims.ClaimFilters{SearchTerm: "roof"}
		got := FilteredClaims(s)
		if len(got) != 1 || got[0].ID != "roof" {
			t.Fatalf("expected only the roof claim, got %d", len(got))
		}
	})

	t.Run("criteria apply conjunctively", func(t *testing.T) {
		s := s
		min := 1000.0
		s.Filters = claims.ClaimFilters{
			Status:    []claims.ClaimStatus{claims.StatusSubmitted, claims.StatusApproved},
			AmountMin: &min,
		}
		got := FilteredClaims(s)
		if len(got) != 1 || got[0].ID != "roof" {
			t.Fatalf("expected only the roof claim, got %d", len(got))
		}
	})

	t.Run("sort descending by estimated damage", func(t *testing.T) {
		s := s
		s.Filters = claims.ClaimFilters{SortBy: claims.SortByEstimatedDamage, SortOrder: claims.SortDesc}
		got := FilteredClaims(s)
		if got[0].ID != "roof" || got[1].ID != "fender" {
			t.Errorf("unexpected order: %s then %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		if got := FilteredClaims(s); len(got) != 2 {
			t.Errorf("expected 2 claims, got %d", len(got))
		}
	})
}

func TestClaimByID(t *testing.T) {
	s := Initial()
	s.Claims = []*claims.Claim{claimWith("c1", claims.StatusSubmitted, time.Time{})}

	if got := ClaimByID(s, "c1"); got == nil || got.ID != "c1" {
		t.Error("expected to find c1")
	}
	if got := ClaimByID(s, "missing"); got != nil {
		t.Error("expected nil for an unknown ID")
	}
}

func TestCacheStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fresh fetch", func(t *testing.T) {
		s := Initial()
		s.CacheValid = true
		s.LastFetch = now.Add(-time.Minute).UnixMilli()
		if view := CacheStatus(s, now); view.ShouldRefresh {
			t.Error("a one-minute-old fetch must not need a refresh")
		}
	})

	t.Run("stale fetch", func(t *testing.T) {
		s := Initial()
		s.CacheValid = true
		s.LastFetch = now.Add(-6 * time.Minute).UnixMilli()
		if view := CacheStatus(s, now); !view.ShouldRefresh {
			t.Error("a six-minute-old fetch must need a refresh")
		}
	})

	t.Run("invalidated cache", func(t *testing.T) {
		s := Initial()
		s.CacheValid = false
		if view := CacheStatus(s, now); !view.ShouldRefresh {
			t.Error("an invalidated cache must need a refresh")
		}
	})
}

func TestLoadingStateAndPagination(t *testing.T) {
	s := Initial()
	s.Submitting = true
	s.Total = 25
	s.Page = 2
	s.HasMore = true

	loading := LoadingState(s)
	if loading.IsLoading || !loading.IsSubmitting || !loading.HasAnyLoading {
		t.Errorf("unexpected loading view: %+v", loading)
	}

	paging := Pagination(s)
	if paging.Page != 2 || paging.Total != 25 || !paging.HasMore || paging.Limit != DefaultPageSize {
		t.Errorf("unexpected pagination view: %+v", paging)
	}
}
