package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// Sequences hands out monotonically increasing int64 ids, one sequence per
// name, backed by an atomic $inc on a counters document. Ids therefore grow
// in insertion order, which is what the exclusive-cursor pagination relies on.
type Sequences struct {
	coll *mongo.Collection
}

func NewSequences(db *mongo.Database) *Sequences {
	return &Sequences{coll: db.Collection(countersCollection)}
}

type counterDoc struct {
	Value int64 `bson:"value"`
}

// Next returns the next id for the named sequence, creating it at 1 on first use.
func (s *Sequences) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Value, nil
}
