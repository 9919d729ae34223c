package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSpins is the number of spins a participant starts the campaign with
const DefaultSpins = 1

// Participant represents a campaign participant identified by vehicle plate
type Participant struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Plate          string             `bson:"plate" json:"plate"`
	SpinsAvailable int                `bson:"spinsAvailable" json:"spinsAvailable"`
	Prizes         []Prize            `bson:"prizes" json:"prizes"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewParticipant builds a freshly registered participant with the default spin balance
func NewParticipant(plate string) *Participant {
	return &Participant{
		Plate:          plate,
		SpinsAvailable: DefaultSpins,
		Prizes:         []Prize{},
	}
}
