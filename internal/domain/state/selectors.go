package state

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

// Selector policy constants.
const (
	// RecentWindow bounds the dashboard's recent-claims view.
	RecentWindow = 30 * 24 * time.Hour
	recentLimit  = 5

	// CacheFreshness is how long a fetched list stays reusable.
	CacheFreshness = 5 * time.Minute
)

// PaginationView is the pagination slice of the snapshot.
type PaginationView struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Pagination returns the current paging cursor.
func Pagination(s State) PaginationView {
	return PaginationView{Page: s.Page, Limit: s.Limit, Total: s.Total, HasMore: s.HasMore}
}

// LoadingView rolls the three independent busy flags up for the UI.
type LoadingView struct {
	IsLoading     bool `json:"isLoading"`
	IsSubmitting  bool `json:"isSubmitting"`
	IsUploading   bool `json:"isUploading"`
	HasAnyLoading bool `json:"hasAnyLoading"`
}

// LoadingState reports which flows are in flight.
func LoadingState(s State) LoadingView {
	return LoadingView{
		IsLoading:     s.Loading,
		IsSubmitting:  s.Submitting,
		IsUploading:   s.Uploading,
		HasAnyLoading: s.Loading || s.Submitting || s.Uploading,
	}
}

// RecentClaims returns claims reported within the last 30 days, most recent
// first, capped at five entries.
func RecentClaims(s State, now time.Time) []*claims.Claim {
	cutoff := now.Add(-RecentWindow)

	recent := make([]*claims.Claim, 0, len(s.Claims))
	for _, c := range s.Claims {
		if !c.DateReported.Before(cutoff) {
			recent = append(recent, c)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateReported.After(recent[j].DateReported)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	return recent
}

// PendingClaims returns claims still waiting on the insurer.
func PendingClaims(s State) []*claims.Claim {
	return filterClaims(s.Claims, func(c *claims.Claim) bool {
		return c.Status.IsPending()
	})
}

// ActiveClaims returns claims that have not reached a final decision.
func ActiveClaims(s State) []*claims.Claim {
	return filterClaims(s.Claims, func(c *claims.Claim) bool {
		return !c.Status.IsTerminal()
	})
}

// EmergencyClaims returns claims flagged as emergencies.
func EmergencyClaims(s State) []*claims.Claim {
	return filterClaims(s.Claims, func(c *claims.Claim) bool {
		return c.EmergencyFlag
	})
}

// ClaimsByStatus partitions the list into a mapping keyed by status.
func ClaimsByStatus(s State) map[claims.ClaimStatus][]*claims.Claim {
	byStatus := make(map[claims.ClaimStatus][]*claims.Claim)
	for _, c := range s.Claims {
		byStatus[c.Status] = append(byStatus[c.Status], c)
	}
	return byStatus
}

// TotalEstimatedDamage sums estimated damage across all claims; claims
// without an estimate contribute zero.
func TotalEstimatedDamage(s State) float64 {
	var total float64
	for _, c := range s.Claims {
		total += c.EstimatedDamageValue()
	}
	return total
}

// TotalApprovedAmount sums approved amounts across all claims.
func TotalApprovedAmount(s State) float64 {
	var total float64
	for _, c := range s.Claims {
		total += c.ApprovedAmountValue()
	}
	return total
}

// AverageProcessingTime returns the mean whole-day span from report to last
// update over claims in a terminal status, rounded to the nearest day.
// Returns 0 when no claim has reached a terminal status.
func AverageProcessingTime(s State) int {
	var totalDays, count int
	for _, c := range s.Claims {
		if !c.Status.IsTerminal() {
			continue
		}
		days := int(math.Ceil(c.UpdatedAt.Sub(c.DateReported).Hours() / 24))
		totalDays += days
		count++
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(totalDays) / float64(count)))
}

// ClaimsSummary is the dashboard aggregate.
type ClaimsSummary struct {
	TotalClaims           int     `json:"totalClaims"`
	PendingClaims         int     `json:"pendingClaims"`
	ActiveClaims          int     `json:"activeClaims"`
	EmergencyClaims       int     `json:"emergencyClaims"`
	TotalEstimatedDamage  float64 `json:"totalEstimatedDamage"`
	TotalApprovedAmount   float64 `json:"totalApprovedAmount"`
	AverageProcessingTime int     `json:"averageProcessingTime"`
	ApprovalRate          int     `json:"approvalRate"` // percent
}

// Summary combines counts, totals and rates into one view.
func Summary(s State) ClaimsSummary {
	summary := ClaimsSummary{
		TotalClaims:           len(s.Claims),
		PendingClaims:         len(PendingClaims(s)),
		ActiveClaims:          len(ActiveClaims(s)),
		EmergencyClaims:       len(EmergencyClaims(s)),
		TotalEstimatedDamage:  TotalEstimatedDamage(s),
		TotalApprovedAmount:   TotalApprovedAmount(s),
		AverageProcessingTime: AverageProcessingTime(s),
	}
	if len(s.Claims) > 0 {
		approved := 0
		for _, c := range s.Claims {
			if c.Status == claims.StatusApproved {
				approved++
			}
		}
		summary.ApprovalRate = int(math.Round(float64(approved) / float64(len(s.Claims)) * 100))
	}
	return summary
}

// ClaimByID finds a claim in the list, or nil.
func ClaimByID(s State, claimID string) *claims.Claim {
	for _, c := range s.Claims {
		if c.ID == claimID {
			return c
		}
	}
	return nil
}

// FilteredClaims applies every active filter conjunctively, then stable-sorts
// by the requested field (ascending unless the order is desc).
func FilteredClaims(s State) []*claims.Claim {
	f := s.Filters

	filtered := make([]*claims.Claim, 0, len(s.Claims))
	for _, c := range s.Claims {
		if len(f.Status) > 0 && !containsStatus(f.Status, c.Status) {
			continue
		}
		if len(f.Type) > 0 && !containsType(f.Type, c.Type) {
			continue
		}
		if f.DateFrom != nil && c.DateReported.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && c.DateReported.After(*f.DateTo) {
			continue
		}
		if f.AmountMin != nil && c.EstimatedDamageValue() < *f.AmountMin {
			continue
		}
		if f.AmountMax != nil && c.EstimatedDamageValue() > *f.AmountMax {
			continue
		}
		if f.SearchTerm != "" && !matchesSearch(c, f.SearchTerm) {
			continue
		}
		filtered = append(filtered, c)
	}

	if f.SortBy != "" {
		desc := f.SortOrder == claims.SortDesc
		sort.SliceStable(filtered, func(i, j int) bool {
			less := claimLess(filtered[i], filtered[j], f.SortBy)
			if desc {
				return claimLess(filtered[j], filtered[i], f.SortBy)
			}
			return less
		})
	}
	return filtered
}

// CacheView reports whether the current list can be reused.
type CacheView struct {
	IsValid       bool  `json:"isValid"`
	LastFetch     int64 `json:"lastFetch"`
	ShouldRefresh bool  `json:"shouldRefresh"`
}

// CacheStatus evaluates cache validity against the freshness window. The
// caller triggers a refetch when ShouldRefresh is set.
func CacheStatus(s State, now time.Time) CacheView {
	stale := s.LastFetch != 0 &&
		now.UnixMilli()-s.LastFetch > CacheFreshness.Milliseconds()
	return CacheView{
		IsValid:       s.CacheValid,
		LastFetch:     s.LastFetch,
		ShouldRefresh: !s.CacheValid || stale,
	}
}

func filterClaims(list []*claims.Claim, keep func(*claims.Claim) bool) []*claims.Claim {
	out := make([]*claims.Claim, 0, len(list))
	for _, c := range list {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func containsStatus(set []claims.ClaimStatus, status claims.ClaimStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func containsType(set []claims.ClaimType, t claims.ClaimType) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}

func matchesSearch(c *claims.Claim, term string) bool {
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.ClaimNumber), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle) ||
		strings.Contains(strings.ToLower(c.Location.Address), needle)
}

func claimLess(a, b *claims.Claim, field claims.SortField) bool {
	switch field {
	case claims.SortByDateReported:
		return a.DateReported.Before(b.DateReported)
	case claims.SortByDateOfIncident:
		return a.DateOfIncident.Before(b.DateOfIncident)
	case claims.SortByEstimatedDamage:
		return a.EstimatedDamageValue() < b.EstimatedDamageValue()
	case claims.SortByStatus:
		return a.Status < b.Status
	}
	return false
}
