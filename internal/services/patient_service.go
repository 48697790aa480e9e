package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/observability"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"github.com/harentsoaR/dental-clinic/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PatientService manages patient records and their odontograms.
type PatientService struct {
	patients     store.PatientStore
	appointments store.AppointmentStore
	tx           store.Transactor
	phoneRegion  string
	logger       *zap.Logger
}

func NewPatientService(stores store.Stores, phoneRegion string, logger *zap.Logger) *PatientService {
	return &PatientService{
		patients:     stores.Patients,
		appointments: stores.Appointments,
		tx:           stores.Tx,
		phoneRegion:  phoneRegion,
		logger:       logger,
	}
}

// List returns every patient ordered by name.
func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	for i := range patients {
		patients[i].Odontogram = normalize(patients[i].Odontogram)
	}
	sort.SliceStable(patients, func(i, j int) bool {
		return strings.ToLower(patients[i].Name) < strings.ToLower(patients[j].Name)
	})
	return patients, nil
}

func (s *PatientService) Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	p, err := s.patients.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Odontogram = normalize(p.Odontogram)
	return p, nil
}

func (s *PatientService) validate(d models.PatientDetails) (models.PatientDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Notes = strings.TrimSpace(d.Notes)
	if d.Name == "" {
		return d, fmt.Errorf("%w: name is required", models.ErrInvalidPatient)
	}
	if d.Age == nil || *d.Age < 0 {
		return d, fmt.Errorf("%w: age must be zero or greater", models.ErrInvalidPatient)
	}
	phone, err := utils.NormalizePhone(d.Phone, s.phoneRegion)
	if err != nil {
		return d, err
	}
	d.Phone = phone
	return d, nil
}

// Create adds a patient with an empty odontogram.
func (s *PatientService) Create(ctx context.Context, d models.PatientDetails) (*models.Patient, error) {
	d, err := s.validate(d)
	if err != nil {
		return nil, err
	}
	p := &models.Patient{
		ID:         primitive.NewObjectID(),
		Name:       d.Name,
		Age:        *d.Age,
		Phone:      d.Phone,
		Notes:      d.Notes,
		Odontogram: models.Odontogram{},
	}
	if err := s.patients.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("patient created", zap.String("id", p.ID.Hex()))
	return p, nil
}

// Update overwrites the patient's details, leaving the odontogram alone.
func (s *PatientService) Update(ctx context.Context, id primitive.ObjectID, d models.PatientDetails) (*models.Patient, error) {
	d, err := s.validate(d)
	if err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name, p.Age, p.Phone, p.Notes = d.Name, *d.Age, d.Phone, d.Notes
	if err := s.patients.UpdateDetails(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the patient together with all of its appointments.
// Appointments go first, so a failure never leaves orphans behind.
func (s *PatientService) Delete(ctx context.Context, id primitive.ObjectID) error {
	var removed int64
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.appointments.DeleteByPatient(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete patient appointments: %w", err)
		}
		removed = n
		return s.patients.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	observability.CascadeDeletes.WithLabelValues("patient").Add(float64(removed))
	s.logger.Info("patient deleted", zap.String("id", id.Hex()), zap.Int64("appointments", removed))
	return nil
}

// GetOdontogram returns the full chart of a patient.
func (s *PatientService) GetOdontogram(ctx context.Context, id primitive.ObjectID) ([]models.ToothView, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Odontogram.Chart(), nil
}

// ReplaceOdontogram validates every entry and overwrites the whole map.
func (s *PatientService) ReplaceOdontogram(ctx context.Context, id primitive.ObjectID, entries map[string]models.ToothStatus) ([]models.ToothView, error) {
	o, err := models.ParseOdontogram(entries)
	if err != nil {
		return nil, err
	}
	if err := s.patients.ReplaceOdontogram(ctx, id, o); err != nil {
		return nil, err
	}
	return o.Chart(), nil
}

// SetTooth records the status of one tooth without rewriting the others.
func (s *PatientService) SetTooth(ctx context.Context, id primitive.ObjectID, tooth string, status models.ToothStatus) (*models.ToothView, error) {
	var o models.Odontogram
	if err := o.Set(tooth, status); err != nil {
		return nil, err
	}
	code := o[tooth]
	if err := s.patients.SetTooth(ctx, id, tooth, code); err != nil {
		return nil, err
	}
	for _, v := range o.Chart() {
		if v.Tooth == tooth {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrInvalidTooth, tooth)
}

// normalize maps legacy codes to current ones and drops entries that are not
// valid teeth.
func normalize(o models.Odontogram) models.Odontogram {
	out := make(models.Odontogram, len(o))
	for tooth, s := range o {
		if !models.IsTooth(tooth) {
			continue
		}
		if code := s.Normalize(); code != models.StatusNone {
			out[tooth] = code
		}
	}
	return out
}
