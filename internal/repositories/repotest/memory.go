// Package repotest provides an in-memory ParticipantRepository for tests.
package repotest

import (
	"context"
	"sync"
	"time"

	"github.com/ArowuTest/plate-spin-backend/internal/models"
	"github.com/ArowuTest/plate-spin-backend/internal/repositories"
	"github.com/ArowuTest/plate-spin-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ repositories.ParticipantRepository = (*MemoryRepository)(nil)

// MemoryRepository keeps participants in a map keyed by plate and applies
// the same guards as the MongoDB implementation.
type MemoryRepository struct {
	mu           sync.Mutex
	participants map[string]*models.Participant

	// Err, when set, is returned by every call to simulate a store fault
	Err error
	// Writes counts successful mutations
	Writes int
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{participants: make(map[string]*models.Participant)}
}

// Seed stores a participant as-is, bypassing Create
func (r *MemoryRepository) Seed(p *models.Participant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.participants[p.Plate] = clone(p)
}

// Get returns a copy of the stored participant, or nil
func (r *MemoryRepository) Get(plate string) *models.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.participants[plate]; ok {
		return clone(p)
	}
	return nil
}

func (r *MemoryRepository) Create(ctx context.Context, participant *models.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.participants[participant.Plate]; ok {
		return repositories.ErrDuplicate
	}
	participant.ID = primitive.NewObjectID()
	participant.CreatedAt = time.Now().UTC()
	participant.UpdatedAt = participant.CreatedAt
	if participant.Prizes == nil {
		participant.Prizes = []models.Prize{}
	}
	r.participants[participant.Plate] = clone(participant)
	r.Writes++
	return nil
}

func (r *MemoryRepository) FindByPlate(ctx context.Context, plate string) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.participants[plate]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(p), nil
}

func (r *MemoryRepository) GrantSpins(ctx context.Context, plate string, spins int) (*models.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.participants[plate]
	if !ok || p.SpinsAvailable > 0 {
		return nil, repositories.ErrNotFound
	}
	p.SpinsAvailable += spins
	p.UpdatedAt = time.Now().UTC()
	r.Writes++
	return clone(p), nil
}

func (r *MemoryRepository) ClaimPrize(ctx context.Context, plate, text string, now time.Time, enforceExpiry bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.participants[plate]
	if !ok {
		return repositories.ErrNotFound
	}
	i := utils.FindRedeemablePrize(p.Prizes, text, now, enforceExpiry)
	if i < 0 {
		return repositories.ErrNotFound
	}
	p.Prizes[i].Claimed = true
	p.UpdatedAt = now.UTC()
	r.Writes++
	return nil
}

func (r *MemoryRepository) EnsureIndexes(ctx context.Context) error {
	return r.Err
}

func clone(p *models.Participant) *models.Participant {
	c := *p
	if p.Prizes != nil {
		c.Prizes = make([]models.Prize, len(p.Prizes))
		copy(c.Prizes, p.Prizes)
	}
	return &c
}
