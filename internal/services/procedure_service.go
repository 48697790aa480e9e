package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/observability"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ProcedureService manages the procedure catalog.
type ProcedureService struct {
	procedures   store.ProcedureStore
	appointments store.AppointmentStore
	tx           store.Transactor
	logger       *zap.Logger
}

func NewProcedureService(stores store.Stores, logger *zap.Logger) *ProcedureService {
	return &ProcedureService{
		procedures:   stores.Procedures,
		appointments: stores.Appointments,
		tx:           stores.Tx,
		logger:       logger,
	}
}

// List returns the catalog ordered by display order, then name.
func (s *ProcedureService) List(ctx context.Context) ([]models.Procedure, error) {
	procedures, err := s.procedures.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list procedures: %w", err)
	}
	sort.SliceStable(procedures, func(i, j int) bool {
		if procedures[i].Order != procedures[j].Order {
			return procedures[i].Order < procedures[j].Order
		}
		return procedures[i].Name < procedures[j].Name
	})
	return procedures, nil
}

func (s *ProcedureService) Get(ctx context.Context, id primitive.ObjectID) (*models.Procedure, error) {
	return s.procedures.Get(ctx, id)
}

func validateProcedure(f models.ProcedureFields) (models.Procedure, error) {
	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		return models.Procedure{}, fmt.Errorf("%w: name is required", models.ErrInvalidProcedure)
	case f.Order == nil || *f.Order < 0:
		return models.Procedure{}, fmt.Errorf("%w: order must be zero or greater", models.ErrInvalidProcedure)
	case f.Value == nil || *f.Value < 0 || math.IsNaN(*f.Value) || math.IsInf(*f.Value, 0):
		return models.Procedure{}, fmt.Errorf("%w: value must be zero or greater", models.ErrInvalidProcedure)
	}
	return models.Procedure{Order: *f.Order, Name: name, Value: models.RoundCents(*f.Value)}, nil
}

func (s *ProcedureService) Create(ctx context.Context, f models.ProcedureFields) (*models.Procedure, error) {
	p, err := validateProcedure(f)
	if err != nil {
		return nil, err
	}
	p.ID = primitive.NewObjectID()
	if err := s.procedures.Insert(ctx, &p); err != nil {
		return nil, err
	}
	s.logger.Info("procedure created", zap.String("id", p.ID.Hex()), zap.String("name", p.Name))
	return &p, nil
}

// Update changes a catalog entry. Existing appointments keep the value they
// were scheduled with.
func (s *ProcedureService) Update(ctx context.Context, id primitive.ObjectID, f models.ProcedureFields) (*models.Procedure, error) {
	p, err := validateProcedure(f)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.procedures.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the procedure together with every appointment that uses it.
func (s *ProcedureService) Delete(ctx context.Context, id primitive.ObjectID) error {
	var removed int64
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.appointments.DeleteByProcedure(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete procedure appointments: %w", err)
		}
		removed = n
		return s.procedures.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	observability.CascadeDeletes.WithLabelValues("procedure").Add(float64(removed))
	s.logger.Info("procedure deleted", zap.String("id", id.Hex()), zap.Int64("appointments", removed))
	return nil
}
