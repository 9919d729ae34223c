package models

import "time"

// Prize is an award attached to a participant. Prizes are appended by the
// wheel process outside this service; here they are only read and claimed.
type Prize struct {
	Text    string     `bson:"text" json:"text"`
	Expiry  *time.Time `bson:"expiry,omitempty" json:"expiry,omitempty"`
	Claimed bool       `bson:"claimed" json:"claimed"`
}

// Expired reports whether the prize has an expiry that is not after now
func (p Prize) Expired(now time.Time) bool {
	return p.Expiry != nil && !p.Expiry.After(now)
}
