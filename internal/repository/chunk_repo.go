package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sawa/internal/model"
)

// ChunkRepo stores the embedded reference corpus. Ingestion replaces the
// whole corpus atomically enough for this use: the collection is small and
// re-ingested rarely.
type ChunkRepo interface {
	ReplaceAll(ctx context.Context, chunks []*model.Chunk) error
	GetAll(ctx context.Context) ([]*model.Chunk, error)
	Count(ctx context.Context) (int64, error)
}

type chunkRepo struct {
	collection *mongo.Collection
}

// NewChunkRepo creates a Mongo-backed corpus chunk repository.
func NewChunkRepo(db *mongo.Database) ChunkRepo {
	return &chunkRepo{
		collection: db.Collection("chunks"),
	}
}

func (r *chunkRepo) ReplaceAll(ctx context.Context, chunks []*model.Chunk) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]interface{}, len(chunks))
	for i, c := range chunks {
		docs[i] = c
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *chunkRepo) GetAll(ctx context.Context) ([]*model.Chunk, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var chunks []*model.Chunk
	if err = cursor.All(ctx, &chunks); err != nil {
		return nil, err
	}
	return chunks, nil
}

func (r *chunkRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
