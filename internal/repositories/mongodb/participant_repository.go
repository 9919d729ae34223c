package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/plate-spin-backend/internal/models"
	"github.com/ArowuTest/plate-spin-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure ParticipantRepository implements the interface
var _ repositories.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository handles MongoDB operations for Participant
type ParticipantRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewParticipantRepository creates a new ParticipantRepository. A zero timeout
// leaves deadlines to the caller's context.
func NewParticipantRepository(db *mongo.Database, collection string, timeout time.Duration) *ParticipantRepository {
	return &ParticipantRepository{
		collection: db.Collection(collection),
		timeout:    timeout,
	}
}

func (r *ParticipantRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a new participant
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	participant.ID = primitive.NewObjectID()
	participant.CreatedAt = time.Now().UTC()
	participant.UpdatedAt = participant.CreatedAt
	if participant.Prizes == nil {
		participant.Prizes = []models.Prize{}
	}

	_, err := r.collection.InsertOne(ctx, participant)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicate
	}
	return err
}

// FindByPlate finds a participant by plate
func (r *ParticipantRepository) FindByPlate(ctx context.Context, plate string) (*models.Participant, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var participant models.Participant
	err := r.collection.FindOne(ctx, bson.M{"plate": plate}).Decode(&participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	if participant.Prizes == nil {
		participant.Prizes = []models.Prize{}
	}
	return &participant, nil
}

// GrantSpins atomically adds spins to a participant whose balance is spent
func (r *ParticipantRepository) GrantSpins(ctx context.Context, plate string, spins int) (*models.Participant, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"plate":          plate,
		"spinsAvailable": bson.M{"$lte": 0},
	}
	update := bson.M{
		"$inc": bson.M{"spinsAvailable": spins},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var participant models.Participant
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	if participant.Prizes == nil {
		participant.Prizes = []models.Prize{}
	}
	return &participant, nil
}

// ClaimPrize flips the claimed flag of the first unclaimed prize with the
// given text. The positional operator resolves to the first array element
// matched by $elemMatch, which keeps insertion order as the tie-break.
func (r *ParticipantRepository) ClaimPrize(ctx context.Context, plate, text string, now time.Time, enforceExpiry bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	match := bson.M{"text": text, "claimed": false}
	if enforceExpiry {
		match["$or"] = bson.A{
			bson.M{"expiry": nil},
			bson.M{"expiry": bson.M{"$gt": now}},
		}
	}
	filter := bson.M{
		"plate":  plate,
		"prizes": bson.M{"$elemMatch": match},
	}
	update := bson.M{
		"$set": bson.M{
			"prizes.$.claimed": true,
			"updatedAt":        now.UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the unique plate index
func (r *ParticipantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "plate", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("plate_unique"),
	}
	_, err := r.collection.Indexes().CreateOne(ctx, index)
	return err
}
