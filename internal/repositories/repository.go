package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/plate-spin-backend/internal/models"
)

var (
	// ErrNotFound is returned when no document matches the lookup or the guarded update
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert collides with the unique plate index
	ErrDuplicate = errors.New("duplicate document")
)

// ParticipantRepository defines the interface for participant data operations.
// Every mutation is a single-document operation; the guarded variants only
// apply when the stored document still satisfies the precondition.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	FindByPlate(ctx context.Context, plate string) (*models.Participant, error)
	// GrantSpins adds spins only while the stored balance is zero or less
	GrantSpins(ctx context.Context, plate string, spins int) (*models.Participant, error)
	// ClaimPrize marks the first matching unclaimed prize as claimed
	ClaimPrize(ctx context.Context, plate, text string, now time.Time, enforceExpiry bool) error
	EnsureIndexes(ctx context.Context) error
}
