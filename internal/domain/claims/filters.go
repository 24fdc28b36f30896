package claims

import "time"

// SortField selects the column a filtered view is ordered by.
type SortField string

const (
	SortByDateReported    SortField = "dateReported"
	SortByDateOfIncident  SortField = "dateOfIncident"
	SortByEstimatedDamage SortField = "estimatedDamage"
	SortByStatus          SortField = "status"
)

// SortOrder is the direction of a sort; ascending unless "desc".
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ClaimFilters is a sparse criteria object. Every field is optional; absence
// means no constraint. All set criteria apply conjunctively.
type ClaimFilters struct {
	Status     []ClaimStatus `json:"status,omitempty"`
	Type       []ClaimType   `json:"type,omitempty"`
	DateFrom   *time.Time    `json:"dateFrom,omitempty"`
	DateTo     *time.Time    `json:"dateTo,omitempty"`
	AmountMin  *float64      `json:"amountMin,omitempty"`
	AmountMax  *float64      `json:"amountMax,omitempty"`
	SearchTerm string        `json:"searchTerm,omitempty"`
	SortBy     SortField     `json:"sortBy,omitempty"`
	SortOrder  SortOrder     `json:"sortOrder,omitempty"`
}

// Merge returns a copy of f with every set field of patch applied on top,
// mirroring how a filter panel amends the active criteria.
func (f ClaimFilters) Merge(patch ClaimFilters) ClaimFilters {
	out := f
	if patch.Status != nil {
		out.Status = patch.Status
	}
	if patch.Type != nil {
		out.Type = patch.Type
	}
	if patch.DateFrom != nil {
		out.DateFrom = patch.DateFrom
	}
	if patch.DateTo != nil {
		out.DateTo = patch.DateTo
	}
	if patch.AmountMin != nil {
		out.AmountMin = patch.AmountMin
	}
	if patch.AmountMax != nil {
		out.AmountMax = patch.AmountMax
	}
	if patch.SearchTerm != "" {
		out.SearchTerm = patch.SearchTerm
	}
	if patch.SortBy != "" {
		out.SortBy = patch.SortBy
	}
	if patch.SortOrder != "" {
		out.SortOrder = patch.SortOrder
	}
	return out
}
