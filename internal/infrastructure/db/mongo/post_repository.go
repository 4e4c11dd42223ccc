package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell-studio/backoffice/internal/core/domain"
)

const collectionPosts = "posts"

// PostRepository implements ports.PostRepository using MongoDB.
type PostRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		col:      db.Collection(collectionPosts),
		counters: db.Collection(countersCollection),
	}
}

func (r *PostRepository) Insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.counters, "posts")
	if err != nil {
		return nil, err
	}
	post.ID = id

	if _, err := r.col.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := make([]*domain.Post, 0)
	for cur.Next(ctx) {
		var post domain.Post
		if err := cur.Decode(&post); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, cur.Err()
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var post domain.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Replace overwrites title, excerpt and slug; created_at is never written.
func (r *PostRepository) Replace(ctx context.Context, id int64, title, excerpt, slug string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": title, "excerpt": excerpt, "slug": slug}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var post domain.Post
	if err := res.Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing the newest-first listing.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
