package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_Build(t *testing.T) {
	mem := storetest.New()
	svc := NewReportService(mem.Stores())
	svc.now = func() time.Time { return time.Date(2024, 7, 10, 12, 0, 0, 0, time.Local) }
	ctx := context.Background()

	ana := seedPatient(t, mem, "Ana")
	bia := seedPatient(t, mem, "Bia")
	proc := seedProcedure(t, mem, 1, "Limpeza", 100)
	a1 := seedAppointment(t, mem, ana.ID, proc.ID, "2024-07-01T09:00", 100)
	seedAppointment(t, mem, ana.ID, proc.ID, "2024-07-20T09:00", 100)
	b1 := seedAppointment(t, mem, bia.ID, proc.ID, "2024-07-02T09:00", 100)
	require.NoError(t, mem.Appointments.SetPayment(ctx, a1.ID, models.PaymentUpdate{PaidAmount: 100, PaymentStatus: models.PaymentPaid}))
	require.NoError(t, mem.Appointments.SetPayment(ctx, b1.ID, models.PaymentUpdate{PaidAmount: 100, PaymentStatus: models.PaymentPaid}))

	r, err := svc.Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, r.TotalAppointments)
	assert.Equal(t, 2, r.ConsultationsDone)
	assert.Equal(t, 300.0, r.TotalBilled)
	assert.Equal(t, 200.0, r.TotalPaid)
	assert.Equal(t, 100.0, r.TotalPending)
	assert.Equal(t, 1, r.PatientsWithDebt)
	require.Len(t, r.TopProcedures, 1)
	assert.Equal(t, "Limpeza", r.TopProcedures[0].Name)
	assert.Equal(t, 3, r.TopProcedures[0].Count)
}

func TestReportService_StoreFailure(t *testing.T) {
	mem := storetest.New()
	mem.Appointments.Err = errors.New("timeout")

	_, err := NewReportService(mem.Stores()).Build(context.Background())
	assert.Error(t, err)
}
