package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sawa/internal/model"
)

// SessionRepo is the durable session store. Absence is a normal condition:
// GetByID returns (nil, nil) for an unknown id. Writes are last-write-wins
// per session id; serializing concurrent writers is the caller's job.
type SessionRepo interface {
	Save(ctx context.Context, state *model.SessionState) error
	GetByID(ctx context.Context, id string) (*model.SessionState, error)
	List(ctx context.Context, limit int64) ([]*model.SessionState, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a Mongo-backed session repository.
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Save(ctx context.Context, state *model.SessionState) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": state.ID}, state, opts)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.SessionState, error) {
	var state model.SessionState
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&state)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *sessionRepo) List(ctx context.Context, limit int64) ([]*model.SessionState, error) {
	opts := options.Find().SetSort(bson.M{"updatedAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var states []*model.SessionState
	if err = cursor.All(ctx, &states); err != nil {
		return nil, err
	}
	return states, nil
}
