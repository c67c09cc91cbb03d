package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores the whole collection blob as a single Mongo document.
// One row per note would lose the array ordering and the atomic
// full-collection overwrite the service layer depends on, so the Mongo
// backend deliberately keeps the same single-value shape as the Redis one.
type MongoRepo struct {
	col *mongo.Collection
}

const (
	blobID          = "documents"
	quarantinePrefix = "documents-corrupt-"
)

type blobRecord struct {
	ID        string    `bson:"_id"`
	Raw       []byte    `bson:"raw"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Load(ctx context.Context) ([]byte, bool, error) {
	var rec blobRecord
	err := m.col.FindOne(ctx, bson.M{"_id": blobID}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, err
	}
	return rec.Raw, true, nil
}

func (m *MongoRepo) Store(ctx context.Context, raw []byte) error {
	rec := blobRecord{ID: blobID, Raw: raw, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": blobID}, rec, opts)
	return err
}

func (m *MongoRepo) Quarantine(ctx context.Context, raw []byte) error {
	rec := blobRecord{
		ID:        quarantinePrefix + time.Now().UTC().Format("20060102T150405.000000000"),
		Raw:       raw,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := m.col.InsertOne(ctx, rec)
	return err
}
