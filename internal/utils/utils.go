package utils

import (
	"strings"
	"time"

	"github.com/ArowuTest/plate-spin-backend/internal/models"
)

// NormalizePlate canonicalizes a plate so lookups are insensitive to
// surrounding whitespace and letter case
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// FindRedeemablePrize returns the index of the first unclaimed prize whose
// text matches, or -1. When enforceExpiry is set, expired prizes are skipped.
func FindRedeemablePrize(prizes []models.Prize, text string, now time.Time, enforceExpiry bool) int {
	for i, prize := range prizes {
		if prize.Text != text || prize.Claimed {
			continue
		}
		if enforceExpiry && prize.Expired(now) {
			continue
		}
		return i
	}
	return -1
}
