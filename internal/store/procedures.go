package store

import (
	"context"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoProcedures struct {
	c *Collection[models.Procedure]
}

func (s *MongoProcedures) List(ctx context.Context) ([]models.Procedure, error) {
	return s.c.FetchAll(ctx)
}

func (s *MongoProcedures) Get(ctx context.Context, id primitive.ObjectID) (*models.Procedure, error) {
	return s.c.Get(ctx, id)
}

func (s *MongoProcedures) Insert(ctx context.Context, p *models.Procedure) error {
	return s.c.Add(ctx, p)
}

func (s *MongoProcedures) Update(ctx context.Context, p *models.Procedure) error {
	return s.c.Update(ctx, p.ID, bson.M{
		"order": p.Order,
		"name":  p.Name,
		"value": p.Value,
	})
}

func (s *MongoProcedures) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.c.Delete(ctx, id)
}
