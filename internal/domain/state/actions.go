package state

import (
	"time"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

// ActionType names an action so the store can key subscriptions by type.
type ActionType string

const (
	ActionLoadClaims        ActionType = "claims:load"
	ActionLoadClaimsSuccess ActionType = "claims:load-success"
	ActionLoadClaimsFailure ActionType = "claims:load-failure"

	ActionLoadClaimDetails        ActionType = "claims:detail"
	ActionLoadClaimDetailsSuccess ActionType = "claims:detail-success"
	ActionLoadClaimDetailsFailure ActionType = "claims:detail-failure"

	ActionCreateClaim        ActionType = "claims:create"
	ActionCreateClaimSuccess ActionType = "claims:create-success"
	ActionCreateClaimFailure ActionType = "claims:create-failure"

	ActionUpdateClaim        ActionType = "claims:update"
	ActionUpdateClaimSuccess ActionType = "claims:update-success"
	ActionUpdateClaimFailure ActionType = "claims:update-failure"

	ActionUploadPhoto        ActionType = "claims:upload-photo"
	ActionUploadPhotoSuccess ActionType = "claims:upload-photo-success"
	ActionUploadPhotoFailure ActionType = "claims:upload-photo-failure"

	ActionUploadDocument        ActionType = "claims:upload-document"
	ActionUploadDocumentSuccess ActionType = "claims:upload-document-success"
	ActionUploadDocumentFailure ActionType = "claims:upload-document-failure"

	ActionSetFilters   ActionType = "claims:set-filters"
	ActionClearFilters ActionType = "claims:clear-filters"
	ActionSearchClaims ActionType = "claims:search"

	ActionSaveDraft  ActionType = "claims:save-draft"
	ActionClearDraft ActionType = "claims:clear-draft"
	ActionLoadDraft  ActionType = "claims:load-draft"

	ActionSetActiveClaim   ActionType = "claims:set-active"
	ActionClearActiveClaim ActionType = "claims:clear-active"
	ActionSetLoading       ActionType = "claims:set-loading"
	ActionClearError       ActionType = "claims:clear-error"

	ActionFlagAsEmergency        ActionType = "claims:flag-emergency"
	ActionFlagAsEmergencySuccess ActionType = "claims:flag-emergency-success"
	ActionFlagAsEmergencyFailure ActionType = "claims:flag-emergency-failure"

	ActionRequestAIAnalysis ActionType = "claims:ai-analysis"
	ActionAIAnalysisSuccess ActionType = "claims:ai-analysis-success"
	ActionAIAnalysisFailure ActionType = "claims:ai-analysis-failure"

	ActionInvalidateCache ActionType = "claims:invalidate-cache"
	ActionRefreshClaims   ActionType = "claims:refresh"
	ActionLoadMoreClaims  ActionType = "claims:load-more"
	ActionResetPagination ActionType = "claims:reset-pagination"
)

// Action is a named, immutable intent to transition the snapshot or trigger
// I/O. The set is closed: one variant per action type, and the reducer
// switches exhaustively over it.
type Action interface {
	Type() ActionType
}

// LoadClaims requests a page of claims. A zero Page keeps the current page;
// Refresh clears the list and starts over from page 1. Filters, when set,
// amend the active criteria for this request.
type LoadClaims struct {
	Filters *claims.ClaimFilters
	Page    int
	Refresh bool
}

// LoadClaimsSuccess delivers a page. Append concatenates onto the current
// list (pagination continuation) instead of replacing it. FetchedAt is the
// effect-observed completion time in epoch milliseconds; carrying it on the
// action keeps the reducer deterministic.
type LoadClaimsSuccess struct {
	Claims    []*claims.Claim
	Total     int
	Page      int
	HasMore   bool
	Append    bool
	FetchedAt int64
}

// LoadClaimsFailure reports a failed list load.
type LoadClaimsFailure struct{ Error string }

// LoadClaimDetails requests a single claim by ID.
type LoadClaimDetails struct{ ClaimID string }

// LoadClaimDetailsSuccess delivers a full claim record.
type LoadClaimDetailsSuccess struct{ Claim *claims.Claim }

// LoadClaimDetailsFailure reports a failed detail load.
type LoadClaimDetailsFailure struct{ Error string }

// CreateClaim submits a new claim.
type CreateClaim struct{ Form claims.ClaimInitiationForm }

// CreateClaimSuccess carries the backend acknowledgement. ReceivedAt stamps
// the provisional record the reducer synthesizes; Event is the pre-generated
// submission entry seeding its timeline. Both are produced by the effect so
// the reducer stays deterministic.
type CreateClaimSuccess struct {
	Response   claims.ClaimSubmissionResponse
	ReceivedAt time.Time
	Event      claims.ClaimEvent
}

// CreateClaimFailure reports a failed submission.
type CreateClaimFailure struct{ Error string }

// UpdateClaim sends a partial patch for one claim.
type UpdateClaim struct {
	ClaimID string
	Patch   claims.ClaimPatch
}

// UpdateClaimSuccess delivers the full updated claim.
type UpdateClaimSuccess struct{ Claim *claims.Claim }

// UpdateClaimFailure reports a failed update.
type UpdateClaimFailure struct{ Error string }

// UploadPhoto uploads an image for a claim.
type UploadPhoto struct {
	ClaimID    string
	FileName   string
	Data       []byte
	DamageArea claims.DamageArea
}

// UploadPhotoSuccess appends the stored photo to its claim.
type UploadPhotoSuccess struct {
	ClaimID string
	Photo   claims.Photo
}

// UploadPhotoFailure reports a failed photo upload.
type UploadPhotoFailure struct{ Error string }

// UploadDocument uploads a document for a claim.
type UploadDocument struct {
	ClaimID      string
	FileName     string
	Data         []byte
	DocumentType claims.DocumentType
}

// UploadDocumentSuccess appends the stored document to its claim.
type UploadDocumentSuccess struct {
	ClaimID  string
	Document claims.Document
}

// UploadDocumentFailure reports a failed document upload.
type UploadDocumentFailure struct{ Error string }

// SetFilters merges criteria into the active filters, resets pagination to
// page 1 and marks the cache invalid.
type SetFilters struct{ Filters claims.ClaimFilters }

// ClearFilters drops all criteria and resets pagination.
type ClearFilters struct{}

// SearchClaims updates the search term; the effect debounces the request.
type SearchClaims struct{ SearchTerm string }

// SaveDraft merges a partial form into the draft; the effect persists the
// result after a quiet interval. No network involvement.
type SaveDraft struct{ Draft *claims.ClaimDraft }

// ClearDraft discards the draft in memory and in durable storage.
type ClearDraft struct{}

// LoadDraft reads the persisted draft back, re-entering the SaveDraft path.
type LoadDraft struct{}

// SetActiveClaim selects the detail-view claim.
type SetActiveClaim struct{ Claim *claims.Claim }

// ClearActiveClaim deselects the detail-view claim.
type ClearActiveClaim struct{}

// SetLoading sets the list-flow busy flag directly.
type SetLoading struct{ Loading bool }

// ClearError clears the last error message.
type ClearError struct{}

// FlagAsEmergency marks a claim as an emergency.
type FlagAsEmergency struct{ ClaimID string }

// FlagAsEmergencySuccess confirms the emergency flag server-side.
type FlagAsEmergencySuccess struct{ ClaimID string }

// FlagAsEmergencyFailure reports a failed emergency flag.
type FlagAsEmergencyFailure struct{ Error string }

// RequestAIAnalysis asks the backend to analyze the given photos.
type RequestAIAnalysis struct {
	ClaimID  string
	PhotoIDs []string
}

// AIAnalysisSuccess attaches the returned assessment to its claim.
type AIAnalysisSuccess struct {
	ClaimID    string
	Assessment *claims.AIAssessment
}

// AIAnalysisFailure reports a failed analysis request.
type AIAnalysisFailure struct{ Error string }

// InvalidateCache marks the list stale without touching it.
type InvalidateCache struct{}

// RefreshClaims reloads from page 1; the effect re-dispatches LoadClaims.
type RefreshClaims struct{}

// LoadMoreClaims advances to the next page; the effect re-dispatches
// LoadClaims with the incremented page.
type LoadMoreClaims struct{}

// ResetPagination clears the list and returns to page 1.
type ResetPagination struct{}

func (LoadClaims) Type() ActionType        { return ActionLoadClaims }
func (LoadClaimsSuccess) Type() ActionType { return ActionLoadClaimsSuccess }
func (LoadClaimsFailure) Type() ActionType { return ActionLoadClaimsFailure }

func (LoadClaimDetails) Type() ActionType        { return ActionLoadClaimDetails }
func (LoadClaimDetailsSuccess) Type() ActionType { return ActionLoadClaimDetailsSuccess }
func (LoadClaimDetailsFailure) Type() ActionType { return ActionLoadClaimDetailsFailure }

func (CreateClaim) Type() ActionType        { return ActionCreateClaim }
func (CreateClaimSuccess) Type() ActionType { return ActionCreateClaimSuccess }
func (CreateClaimFailure) Type() ActionType { return ActionCreateClaimFailure }

func (UpdateClaim) Type() ActionType        { return ActionUpdateClaim }
func (UpdateClaimSuccess) Type() ActionType { return ActionUpdateClaimSuccess }
func (UpdateClaimFailure) Type() ActionType { return ActionUpdateClaimFailure }

func (UploadPhoto) Type() ActionType        { return ActionUploadPhoto }
func (UploadPhotoSuccess) Type() ActionType { return ActionUploadPhotoSuccess }
func (UploadPhotoFailure) Type() ActionType { return ActionUploadPhotoFailure }

func (UploadDocument) Type() ActionType        { return ActionUploadDocument }
func (UploadDocumentSuccess) Type() ActionType { return ActionUploadDocumentSuccess }
func (UploadDocumentFailure) Type() ActionType { return ActionUploadDocumentFailure }

func (SetFilters) Type() ActionType   { return ActionSetFilters }
func (ClearFilters) Type() ActionType { return ActionClearFilters }
func (SearchClaims) Type() ActionType { return ActionSearchClaims }

func (SaveDraft) Type() ActionType  { return ActionSaveDraft }
func (ClearDraft) Type() ActionType { return ActionClearDraft }
func (LoadDraft) Type() ActionType  { return ActionLoadDraft }

func (SetActiveClaim) Type() ActionType   { return ActionSetActiveClaim }
func (ClearActiveClaim) Type() ActionType { return ActionClearActiveClaim }
func (SetLoading) Type() ActionType       { return ActionSetLoading }
func (ClearError) Type() ActionType       { return ActionClearError }

func (FlagAsEmergency) Type() ActionType        { return ActionFlagAsEmergency }
func (FlagAsEmergencySuccess) Type() ActionType { return ActionFlagAsEmergencySuccess }
func (FlagAsEmergencyFailure) Type() ActionType { return ActionFlagAsEmergencyFailure }

func (RequestAIAnalysis) Type() ActionType { return ActionRequestAIAnalysis }
func (AIAnalysisSuccess) Type() ActionType { return ActionAIAnalysisSuccess }
func (AIAnalysisFailure) Type() ActionType { return ActionAIAnalysisFailure }

func (InvalidateCache) Type() ActionType { return ActionInvalidateCache }
func (RefreshClaims) Type() ActionType   { return ActionRefreshClaims }
func (LoadMoreClaims) Type() ActionType  { return ActionLoadMoreClaims }
func (ResetPagination) Type() ActionType { return ActionResetPagination }
