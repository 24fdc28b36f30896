package claims

// ClaimStatus represents the lifecycle status of a claim. Transitions are
// backend-authoritative; the client only reflects them, with one optimistic
// exception: a freshly created claim is shown as submitted.
type ClaimStatus string

const (
	StatusDraft                 ClaimStatus = "draft"
	StatusSubmitted             ClaimStatus = "submitted"
	StatusUnderReview           ClaimStatus = "under_review"
	StatusInvestigating         ClaimStatus = "investigating"
	StatusAwaitingDocumentation ClaimStatus = "awaiting_documentation"
	StatusProcessing            ClaimStatus = "processing"
	StatusApproved              ClaimStatus = "approved"
	StatusPartiallyApproved     ClaimStatus = "partially_approved"
	StatusRejected              ClaimStatus = "rejected"
	StatusClosed                ClaimStatus = "closed"
	StatusReopened              ClaimStatus = "reopened"
)

// IsPending returns true while the claim is waiting on the insurer.
func (s ClaimStatus) IsPending() bool {
	switch s {
	case StatusSubmitted, StatusUnderReview, StatusInvestigating,
		StatusAwaitingDocumentation, StatusProcessing:
		return true
	}
	return false
}

// IsTerminal returns true once the claim has reached a final decision.
func (s ClaimStatus) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusClosed:
		return true
	}
	return false
}

// ClaimType represents the coverage category of a claim.
type ClaimType string

const (
	TypeAutoCollision     ClaimType = "auto_collision"
	TypeAutoComprehensive ClaimType = "auto_comprehensive"
	TypeAutoLiability     ClaimType = "auto_liability"
	TypePropertyDamage    ClaimType = "property_damage"
	TypeTheft             ClaimType = "theft"
	TypeVandalism         ClaimType = "vandalism"
	TypeNaturalDisaster   ClaimType = "natural_disaster"
	TypePersonalInjury    ClaimType = "personal_injury"
	TypeMedical           ClaimType = "medical"
	TypeOther             ClaimType = "other"
)
