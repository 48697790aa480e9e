package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/dental-clinic/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is a typed accessor over one MongoDB collection. notFound is
// returned when an id-addressed operation matches no document.
type Collection[T any] struct {
	coll     *mongo.Collection
	notFound error
}

func NewCollection[T any](db *mongo.Database, name string, notFound error) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name), notFound: notFound}
}

func (c *Collection[T]) record(op string, err error) {
	status := observability.StatusLabel(err)
	if err != nil && errors.Is(err, c.notFound) {
		status = "not_found"
	}
	observability.DatabaseOperations.WithLabelValues(c.coll.Name(), op, status).Inc()
}

// FetchAll returns every document of the collection.
func (c *Collection[T]) FetchAll(ctx context.Context) (docs []T, err error) {
	defer func() { c.record("fetch_all", err) }()

	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.coll.Name(), err)
	}
	if docs == nil {
		docs = make([]T, 0)
	}
	return docs, nil
}

// FindOne returns the first document matching filter.
func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M) (doc *T, err error) {
	defer func() { c.record("find_one", err) }()

	doc = new(T)
	if err = c.coll.FindOne(ctx, filter).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, fmt.Errorf("failed to find %s: %w", c.coll.Name(), err)
	}
	return doc, nil
}

func (c *Collection[T]) Get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

func (c *Collection[T]) Add(ctx context.Context, doc *T) (err error) {
	defer func() { c.record("add", err) }()

	if _, err = c.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", c.coll.Name(), err)
	}
	return nil
}

// Update sets the given fields on the document with id.
func (c *Collection[T]) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (err error) {
	defer func() { c.record("update", err) }()

	result, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", c.coll.Name(), err)
	}
	if result.MatchedCount == 0 {
		return c.notFound
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	defer func() { c.record("delete", err) }()

	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", c.coll.Name(), err)
	}
	if result.DeletedCount == 0 {
		return c.notFound
	}
	return nil
}

// DeleteWhere removes every document matching filter in one request.
func (c *Collection[T]) DeleteWhere(ctx context.Context, filter bson.M) (n int64, err error) {
	defer func() { c.record("delete_many", err) }()

	result, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", c.coll.Name(), err)
	}
	return result.DeletedCount, nil
}
