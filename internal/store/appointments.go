package store

import (
	"context"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoAppointments struct {
	c *Collection[models.Appointment]
}

func (s *MongoAppointments) List(ctx context.Context) ([]models.Appointment, error) {
	return s.c.FetchAll(ctx)
}

func (s *MongoAppointments) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	return s.c.Get(ctx, id)
}

func (s *MongoAppointments) Insert(ctx context.Context, a *models.Appointment) error {
	return s.c.Add(ctx, a)
}

func (s *MongoAppointments) UpdateSchedule(ctx context.Context, a *models.Appointment) error {
	return s.c.Update(ctx, a.ID, bson.M{
		"patientId":     a.PatientID,
		"procedureId":   a.ProcedureID,
		"datetime":      a.DateTime,
		"notes":         a.Notes,
		"totalValue":    a.TotalValue,
		"paymentStatus": a.PaymentStatus,
	})
}

func (s *MongoAppointments) SetAnamnesis(ctx context.Context, id primitive.ObjectID, text string) error {
	return s.c.Update(ctx, id, bson.M{"anamnesis": text})
}

func (s *MongoAppointments) SetPayment(ctx context.Context, id primitive.ObjectID, u models.PaymentUpdate) error {
	return s.c.Update(ctx, id, bson.M{
		"paidAmount":    u.PaidAmount,
		"paymentStatus": u.PaymentStatus,
		"paymentDate":   u.PaymentDate,
	})
}

func (s *MongoAppointments) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.c.Delete(ctx, id)
}

func (s *MongoAppointments) DeleteByPatient(ctx context.Context, patientID primitive.ObjectID) (int64, error) {
	return s.c.DeleteWhere(ctx, bson.M{"patientId": patientID})
}

func (s *MongoAppointments) DeleteByProcedure(ctx context.Context, procedureID primitive.ObjectID) (int64, error) {
	return s.c.DeleteWhere(ctx, bson.M{"procedureId": procedureID})
}
