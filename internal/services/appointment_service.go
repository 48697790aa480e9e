package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Notifier tells a patient that an appointment was scheduled.
type Notifier interface {
	SendAppointmentConfirmation(patient *models.Patient, procedure *models.Procedure, apt *models.Appointment)
}

// AppointmentService schedules appointments and serves the clinic views.
type AppointmentService struct {
	appointments store.AppointmentStore
	patients     store.PatientStore
	procedures   store.ProcedureStore
	notifier     Notifier
	logger       *zap.Logger
}

// NewAppointmentService builds the service. notifier may be nil.
func NewAppointmentService(stores store.Stores, notifier Notifier, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: stores.Appointments,
		patients:     stores.Patients,
		procedures:   stores.Procedures,
		notifier:     notifier,
		logger:       logger,
	}
}

// List returns every appointment with patient and procedure names.
func (s *AppointmentService) List(ctx context.Context) ([]models.AppointmentView, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return resolveViews(ctx, s.patients, s.procedures, appointments)
}

// WaitingList is List in chronological order.
func (s *AppointmentService) WaitingList(ctx context.Context) ([]models.AppointmentView, error) {
	views, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateTime(views)
	return views, nil
}

func (s *AppointmentService) Get(ctx context.Context, id primitive.ObjectID) (*models.AppointmentView, error) {
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := resolveViews(ctx, s.patients, s.procedures, []models.Appointment{*a})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

type schedule struct {
	patient   *models.Patient
	procedure *models.Procedure
	datetime  string
	notes     string
}

// resolve checks the references and the datetime of f.
func (s *AppointmentService) resolve(ctx context.Context, f models.AppointmentFields) (*schedule, error) {
	patientID, err := primitive.ObjectIDFromHex(f.PatientID)
	if err != nil {
		return nil, fmt.Errorf("%w: patientId", models.ErrInvalidID)
	}
	procedureID, err := primitive.ObjectIDFromHex(f.ProcedureID)
	if err != nil {
		return nil, fmt.Errorf("%w: procedureId", models.ErrInvalidID)
	}
	t, err := models.ParseDateTime(strings.TrimSpace(f.DateTime))
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	procedure, err := s.procedures.Get(ctx, procedureID)
	if err != nil {
		return nil, err
	}
	return &schedule{
		patient:   patient,
		procedure: procedure,
		datetime:  t.Format(models.DateTimeLayout),
		notes:     strings.TrimSpace(f.Notes),
	}, nil
}

// Create schedules an appointment. The total value is the procedure's value
// at this moment and payment starts Open.
func (s *AppointmentService) Create(ctx context.Context, f models.AppointmentFields) (*models.Appointment, error) {
	sc, err := s.resolve(ctx, f)
	if err != nil {
		return nil, err
	}

	a := &models.Appointment{
		ID:            primitive.NewObjectID(),
		PatientID:     sc.patient.ID,
		ProcedureID:   sc.procedure.ID,
		DateTime:      sc.datetime,
		Notes:         sc.notes,
		TotalValue:    sc.procedure.Value,
		PaidAmount:    0,
		PaymentStatus: models.PaymentOpen,
		PaymentDate:   "",
	}
	if err := s.appointments.Insert(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("appointment created",
		zap.String("id", a.ID.Hex()),
		zap.String("patient_id", a.PatientID.Hex()),
		zap.String("datetime", a.DateTime),
	)
	if s.notifier != nil && upcoming(a, time.Now()) {
		s.notifier.SendAppointmentConfirmation(sc.patient, sc.procedure, a)
	}
	return a, nil
}

// Update reschedules an appointment. The total value is taken again from the
// selected procedure; the amount already paid is kept and the status is
// derived from it.
func (s *AppointmentService) Update(ctx context.Context, id primitive.ObjectID, f models.AppointmentFields) (*models.Appointment, error) {
	sc, err := s.resolve(ctx, f)
	if err != nil {
		return nil, err
	}
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	a.PatientID = sc.patient.ID
	a.ProcedureID = sc.procedure.ID
	a.DateTime = sc.datetime
	a.Notes = sc.notes
	a.TotalValue = sc.procedure.Value
	a.PaymentStatus = models.PaymentOpen
	if a.PaidAmount > 0 {
		a.PaymentStatus = models.DeriveStatus(a.PaidAmount, a.TotalValue)
	}

	if err := s.appointments.UpdateSchedule(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("appointment deleted", zap.String("id", id.Hex()))
	return nil
}

// Consultation returns the appointment with its patient and odontogram.
func (s *AppointmentService) Consultation(ctx context.Context, id primitive.ObjectID) (*models.Consultation, error) {
	a, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.patients.Get(ctx, a.PatientID)
	if err != nil {
		return nil, err
	}
	p.Odontogram = normalize(p.Odontogram)
	return &models.Consultation{
		Appointment: *a,
		Patient:     *p,
		Chart:       p.Odontogram.Chart(),
	}, nil
}

// SaveAnamnesis stores the trimmed clinical notes of an appointment.
func (s *AppointmentService) SaveAnamnesis(ctx context.Context, id primitive.ObjectID, text string) (*models.Appointment, error) {
	text = strings.TrimSpace(text)
	if err := s.appointments.SetAnamnesis(ctx, id, text); err != nil {
		return nil, err
	}
	return s.appointments.Get(ctx, id)
}

// upcoming reports whether the appointment is still in the future. Past
// appointments entered after the fact get no confirmation.
func upcoming(a *models.Appointment, now time.Time) bool {
	t, err := a.Time()
	return err == nil && t.After(now)
}
