package store

import (
	"context"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoPatients struct {
	c *Collection[models.Patient]
}

func (s *MongoPatients) List(ctx context.Context) ([]models.Patient, error) {
	return s.c.FetchAll(ctx)
}

func (s *MongoPatients) Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	return s.c.Get(ctx, id)
}

func (s *MongoPatients) Insert(ctx context.Context, p *models.Patient) error {
	if p.Odontogram == nil {
		p.Odontogram = models.Odontogram{}
	}
	return s.c.Add(ctx, p)
}

func (s *MongoPatients) UpdateDetails(ctx context.Context, p *models.Patient) error {
	return s.c.Update(ctx, p.ID, bson.M{
		"name":  p.Name,
		"age":   p.Age,
		"phone": p.Phone,
		"notes": p.Notes,
	})
}

func (s *MongoPatients) ReplaceOdontogram(ctx context.Context, id primitive.ObjectID, o models.Odontogram) error {
	if o == nil {
		o = models.Odontogram{}
	}
	return s.c.Update(ctx, id, bson.M{"odontogram": o})
}

// SetTooth writes a single chart entry so concurrent edits of different teeth
// do not overwrite each other.
func (s *MongoPatients) SetTooth(ctx context.Context, id primitive.ObjectID, tooth string, status models.ToothStatus) error {
	return s.c.Update(ctx, id, bson.M{"odontogram." + tooth: status})
}

func (s *MongoPatients) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.c.Delete(ctx, id)
}
