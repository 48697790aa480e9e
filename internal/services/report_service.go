package services

import (
	"context"
	"fmt"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store"
)

type ReportService struct {
	appointments store.AppointmentStore
	procedures   store.ProcedureStore
	now          func() time.Time
}

func NewReportService(stores store.Stores) *ReportService {
	return &ReportService{appointments: stores.Appointments, procedures: stores.Procedures, now: time.Now}
}

// Build computes the clinic report from the current appointments.
func (s *ReportService) Build(ctx context.Context) (*models.Report, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	procedures, err := s.procedures.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list procedures: %w", err)
	}
	r := models.BuildReport(appointments, procedures, s.now())
	return &r, nil
}
