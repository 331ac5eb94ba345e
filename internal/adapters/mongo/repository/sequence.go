package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// Sequence hands out increasing integer ids per name from the counters
// collection. Ids start at 1.
type Sequence struct {
	collection *mongo.Collection
}

func NewSequence(db *mongo.Database) *Sequence {
	return &Sequence{collection: db.Collection(countersCollection)}
}

func (s *Sequence) Next(ctx context.Context, name string) (int, error) {
	return s.reserve(ctx, name, 1)
}

// NextN reserves n consecutive ids and returns the first one.
func (s *Sequence) NextN(ctx context.Context, name string, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	last, err := s.reserve(ctx, name, n)
	if err != nil {
		return 0, err
	}
	return last - n + 1, nil
}

// AtLeast raises the counter to value if it is lower, so ids inserted
// explicitly are never handed out again.
func (s *Sequence) AtLeast(ctx context.Context, name string, value int) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"seq": value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to raise sequence %s: %w", name, err)
	}
	return nil
}

func (s *Sequence) reserve(ctx context.Context, name string, n int) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": n}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to reserve sequence %s: %w", name, err)
	}
	return counter.Seq, nil
}
