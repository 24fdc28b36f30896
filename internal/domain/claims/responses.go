package claims

// ClaimsResponse is the paged list shape returned by the list and search
// endpoints. A malformed body on those endpoints is substituted with an
// empty response rather than surfaced as a parse error.
type ClaimsResponse struct {
	Claims  []*Claim `json:"claims"`
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	HasMore bool     `json:"hasMore"`
}

// ClaimSubmissionResponse is returned by the create endpoint.
type ClaimSubmissionResponse struct {
	Success     bool     `json:"success"`
	ClaimID     string   `json:"claimId"`
	ClaimNumber string   `json:"claimNumber"`
	Message     string   `json:"message"`
	NextSteps   []string `json:"nextSteps,omitempty"`
}

// ClaimPatch is a partial claim update sent to the update endpoint. Only set
// fields travel on the wire; the backend responds with the full record.
type ClaimPatch struct {
	Status          *ClaimStatus `json:"status,omitempty"`
	Type            *ClaimType   `json:"type,omitempty"`
	Description     *string      `json:"description,omitempty"`
	EstimatedDamage *float64     `json:"estimatedDamage,omitempty"`
	ApprovedAmount  *float64     `json:"approvedAmount,omitempty"`
	Location        *Location    `json:"location,omitempty"`
	EmergencyFlag   *bool        `json:"emergencyFlag,omitempty"`
}
