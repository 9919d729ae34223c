package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/plate-spin-backend/internal/config"
	"github.com/ArowuTest/plate-spin-backend/internal/models"
	"github.com/ArowuTest/plate-spin-backend/internal/repositories"
	"github.com/ArowuTest/plate-spin-backend/internal/utils"
	"github.com/google/logger"
)

// ParticipantService defines the interface for participant operations
type ParticipantService interface {
	// Register creates a participant with the default spin balance
	Register(ctx context.Context, plate string) (*models.Participant, error)
	// GrantShareSpin adds the share bonus when the participant has no spins left
	// and returns the new balance
	GrantShareSpin(ctx context.Context, plate string) (int, error)
	// GetParticipant returns the full participant record, prizes included
	GetParticipant(ctx context.Context, plate string) (*models.Participant, error)
	// RedeemPrize claims the first unclaimed prize with the given text
	RedeemPrize(ctx context.Context, plate, prizeText string) error
}

type participantService struct {
	repo          repositories.ParticipantRepository
	bonusSpins    int
	enforceExpiry bool
	now           func() time.Time
}

// NewParticipantService creates a new ParticipantService
func NewParticipantService(repo repositories.ParticipantRepository, campaign config.CampaignConfig) ParticipantService {
	bonus := campaign.ShareBonusSpins
	if bonus <= 0 {
		bonus = 1
	}
	return &participantService{
		repo:          repo,
		bonusSpins:    bonus,
		enforceExpiry: campaign.EnforcePrizeExpiry,
		now:           time.Now,
	}
}

func (s *participantService) Register(ctx context.Context, plate string) (*models.Participant, error) {
	plate = utils.NormalizePlate(plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}

	_, err := s.repo.FindByPlate(ctx, plate)
	if err == nil {
		return nil, ErrParticipantExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up participant: %w", err)
	}

	participant := models.NewParticipant(plate)
	if err := s.repo.Create(ctx, participant); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrParticipantExists
		}
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	logger.Infof("registered participant %s", plate)
	return participant, nil
}

func (s *participantService) GrantShareSpin(ctx context.Context, plate string) (int, error) {
	participant, err := s.find(ctx, plate)
	if err != nil {
		return 0, err
	}
	if participant.SpinsAvailable > 0 {
		return participant.SpinsAvailable, ErrSpinsAvailable
	}

	updated, err := s.repo.GrantSpins(ctx, participant.Plate, s.bonusSpins)
	if err != nil {
		// The guard failed between read and write, so another request got there first
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrSpinsAvailable
		}
		return 0, fmt.Errorf("failed to grant spin: %w", err)
	}

	logger.Infof("granted %d share spin(s) to %s", s.bonusSpins, participant.Plate)
	return updated.SpinsAvailable, nil
}

func (s *participantService) GetParticipant(ctx context.Context, plate string) (*models.Participant, error) {
	return s.find(ctx, plate)
}

func (s *participantService) RedeemPrize(ctx context.Context, plate, prizeText string) error {
	participant, err := s.find(ctx, plate)
	if err != nil {
		return err
	}

	now := s.now()
	if utils.FindRedeemablePrize(participant.Prizes, prizeText, now, s.enforceExpiry) < 0 {
		return ErrPrizeNotFound
	}

	if err := s.repo.ClaimPrize(ctx, participant.Plate, prizeText, now, s.enforceExpiry); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPrizeNotFound
		}
		return fmt.Errorf("failed to claim prize: %w", err)
	}

	logger.Infof("participant %s redeemed prize %q", participant.Plate, prizeText)
	return nil
}

func (s *participantService) find(ctx context.Context, plate string) (*models.Participant, error) {
	plate = utils.NormalizePlate(plate)
	if plate == "" {
		return nil, ErrParticipantNotFound
	}

	participant, err := s.repo.FindByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to look up participant: %w", err)
	}
	return participant, nil
}
