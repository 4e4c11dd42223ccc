package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/core/ports"
)

const collectionCards = "kanban_cards"

// CardRepository implements ports.CardRepository using MongoDB. Status
// writes use aggregation-pipeline updates so the completed_at transition is
// computed against the stored status inside one atomic document update;
// there is never a separate read round trip to race against.
type CardRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewCardRepository(db *mongo.Database) *CardRepository {
	return &CardRepository{
		col:      db.Collection(collectionCards),
		counters: db.Collection(countersCollection),
	}
}

// Insert persists a new card under the next sequence id.
func (r *CardRepository) Insert(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.counters, "cards")
	if err != nil {
		return nil, err
	}
	card.ID = id

	if _, err := r.col.InsertOne(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// List returns all cards ordered by id ascending.
func (r *CardRepository) List(ctx context.Context) ([]*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	cards := make([]*domain.Card, 0)
	for cur.Next(ctx) {
		var card domain.Card
		if err := cur.Decode(&card); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, cur.Err()
}

// Replace overwrites all mutable fields and recomputes completed_at against
// the stored status in one pipeline update.
func (r *CardRepository) Replace(ctx context.Context, id int64, upd ports.CardUpdate) (*domain.Card, error) {
	set := bson.M{
		"client":       literal(upd.Client),
		"task":         literal(upd.Task),
		"owner":        literal(upd.Owner),
		"due_date":     literal(upd.DueDate),
		"status":       literal(upd.Status),
		"blocked":      literal(upd.Blocked),
		"category":     literal(upd.Category),
		"completed_at": completedAtExpr(upd.Status),
	}
	return r.findOneAndSet(ctx, id, set)
}

// SetStatus updates only the status, recomputing completed_at the same way.
func (r *CardRepository) SetStatus(ctx context.Context, id int64, status string) (*domain.Card, error) {
	set := bson.M{
		"status":       literal(status),
		"completed_at": completedAtExpr(status),
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *CardRepository) findOneAndSet(ctx context.Context, id int64, set bson.M) (*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{{{Key: "$set", Value: set}}}
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var card domain.Card
	if err := res.Decode(&card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

// Delete removes a card; a missing row reports not-found rather than
// succeeding silently.
func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

// DeleteCompleted removes every Done card in a single set-wide delete and
// returns the count. Cards turning Done concurrently either make this batch
// or the next one; none are half-processed.
func (r *CardRepository) DeleteCompleted(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"status": domain.StatusDone})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the indexes used by board queries.
func (r *CardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})
	return err
}

// completedAtExpr builds the pipeline expression enforcing the completion
// invariant. "$status" refers to the document state before this update, so
// a card already Done keeps its original timestamp.
func completedAtExpr(newStatus string) any {
	if newStatus == domain.StatusDone {
		return bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{"$status", domain.StatusDone}},
			"$completed_at",
			"$$NOW",
		}}
	}
	return nil
}

// literal protects user-supplied values from being parsed as pipeline
// expressions (a client name starting with '$' must stay data).
func literal(v any) bson.M {
	return bson.M{"$literal": v}
}
