// Package drafts provides durable persistence for the claim-creation draft.
// One record lives under a fixed key, holding the partial initiation form as
// JSON. This path never touches the network.
package drafts

import (
	"errors"

	"github.com/Joud-BaniIssa/claims-go/internal/domain/claims"
)

// DraftKey is the fixed key the single draft record lives under.
const DraftKey = "claimDraft"

// ErrNotFound is returned when no draft has been saved.
var ErrNotFound = errors.New("drafts: no draft saved")

// ErrStoreClosed is returned after Close.
var ErrStoreClosed = errors.New("drafts: store closed")

// Store persists the draft. Save overwrites, Load returns ErrNotFound when
// nothing is stored, Clear is a no-op when nothing is stored.
type Store interface {
	Save(draft *claims.ClaimDraft) error
	Load() (*claims.ClaimDraft, error)
	Clear() error
	Close() error
}
