package store

import (
	"context"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUsers struct {
	c *Collection[models.User]
}

func (s *MongoUsers) List(ctx context.Context) ([]models.User, error) {
	return s.c.FetchAll(ctx)
}

func (s *MongoUsers) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.c.Get(ctx, id)
}

func (s *MongoUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.c.FindOne(ctx, bson.M{"username": username})
}

func (s *MongoUsers) Insert(ctx context.Context, u *models.User) error {
	err := s.c.Add(ctx, u)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return models.ErrUsernameTaken
	}
	return err
}

func (s *MongoUsers) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.c.Delete(ctx, id)
}
