package services

import (
	"context"
	"fmt"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/observability"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BillingService tracks what each appointment owes and registers payments.
type BillingService struct {
	appointments store.AppointmentStore
	patients     store.PatientStore
	procedures   store.ProcedureStore
	logger       *zap.Logger
	now          func() time.Time
}

func NewBillingService(stores store.Stores, logger *zap.Logger) *BillingService {
	return &BillingService{
		appointments: stores.Appointments,
		patients:     stores.Patients,
		procedures:   stores.Procedures,
		logger:       logger,
		now:          time.Now,
	}
}

// List returns one billing row per appointment.
func (s *BillingService) List(ctx context.Context) ([]models.BillingRow, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	views, err := resolveViews(ctx, s.patients, s.procedures, appointments)
	if err != nil {
		return nil, err
	}

	rows := make([]models.BillingRow, 0, len(views))
	for _, v := range views {
		v.PaymentStatus = v.Status()
		rows = append(rows, models.BillingRow{
			AppointmentView: v,
			Remaining:       models.RoundCents(v.TotalValue - v.PaidAmount),
		})
	}
	return rows, nil
}

// RecordPayment adds a payment to an appointment. Invalid amounts and
// appointments that are already paid leave the record untouched.
func (s *BillingService) RecordPayment(ctx context.Context, id primitive.ObjectID, req models.PaymentRequest) (*models.Appointment, error) {
	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	update, err := models.ApplyPayment(a, amount, req.Date, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.appointments.SetPayment(ctx, id, update); err != nil {
		return nil, err
	}

	observability.PaymentsRecorded.WithLabelValues(string(update.PaymentStatus)).Inc()
	s.logger.Info("payment recorded",
		zap.String("appointment_id", id.Hex()),
		zap.Float64("amount", amount),
		zap.Float64("paid_amount", update.PaidAmount),
		zap.String("status", string(update.PaymentStatus)),
	)

	a.PaidAmount = update.PaidAmount
	a.PaymentStatus = update.PaymentStatus
	a.PaymentDate = update.PaymentDate
	return a, nil
}
