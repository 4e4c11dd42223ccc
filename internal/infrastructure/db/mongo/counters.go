package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// nextSequence atomically increments and returns the named counter. The
// upsert makes the first call start the sequence at 1.
func nextSequence(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	res := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Seq, nil
}
