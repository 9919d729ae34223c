package services

import "errors"

var (
	// ErrInvalidPlate is returned when the plate is empty after normalization
	ErrInvalidPlate = errors.New("plate is required")
	// ErrParticipantExists is returned when registering a plate twice
	ErrParticipantExists = errors.New("user already registered")
	// ErrParticipantNotFound is returned for an unknown plate
	ErrParticipantNotFound = errors.New("user not found")
	// ErrSpinsAvailable is returned when a share bonus is requested while spins remain
	ErrSpinsAvailable = errors.New("you already have spins available")
	// ErrPrizeNotFound is returned when no unclaimed prize matches the requested text
	ErrPrizeNotFound = errors.New("prize not found or already claimed")
)
