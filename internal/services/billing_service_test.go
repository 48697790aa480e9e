package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBillingFixture(t *testing.T) (*BillingService, *storetest.Memory, *models.Appointment) {
	t.Helper()
	mem := storetest.New()
	svc := NewBillingService(mem.Stores(), testLogger)
	svc.now = func() time.Time { return time.Date(2024, 7, 10, 14, 0, 0, 0, time.Local) }

	patient := seedPatient(t, mem, "Ana")
	proc := seedProcedure(t, mem, 1, "Restauração", 200)
	a := seedAppointment(t, mem, patient.ID, proc.ID, "2024-07-01T09:00", 200)
	return svc, mem, a
}

func TestBillingService_PaymentSequence(t *testing.T) {
	svc, _, a := newBillingFixture(t)
	ctx := context.Background()

	got, err := svc.RecordPayment(ctx, a.ID, models.PaymentRequest{Amount: "80.00", Date: "2024-07-01"})
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.PaidAmount)
	assert.Equal(t, models.PaymentPartial, got.PaymentStatus)
	assert.Equal(t, "2024-07-01", got.PaymentDate)

	got, err = svc.RecordPayment(ctx, a.ID, models.PaymentRequest{Amount: "120.00"})
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.PaidAmount)
	assert.Equal(t, models.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "2024-07-10", got.PaymentDate)

	_, err = svc.RecordPayment(ctx, a.ID, models.PaymentRequest{Amount: "1"})
	assert.ErrorIs(t, err, models.ErrAlreadyPaid)
}

func TestBillingService_RejectedPaymentsLeaveStateUnchanged(t *testing.T) {
	svc, mem, a := newBillingFixture(t)
	ctx := context.Background()

	for _, amount := range []json.Number{"0", "-10", "abc", "", "0.001"} {
		t.Run(string(amount), func(t *testing.T) {
			_, err := svc.RecordPayment(ctx, a.ID, models.PaymentRequest{Amount: amount})
			assert.ErrorIs(t, err, models.ErrInvalidPaymentAmount)
		})
	}

	_, err := svc.RecordPayment(ctx, a.ID, models.PaymentRequest{Amount: "10", Date: "10/07/2024"})
	assert.ErrorIs(t, err, models.ErrInvalidDate)

	got, err := mem.Appointments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.PaidAmount)
	assert.Equal(t, models.PaymentOpen, got.PaymentStatus)
	assert.Equal(t, "", got.PaymentDate)

	_, err = svc.RecordPayment(ctx, primitive.NewObjectID(), models.PaymentRequest{Amount: "10"})
	assert.ErrorIs(t, err, models.ErrAppointmentNotFound)
}

func TestBillingService_List(t *testing.T) {
	svc, mem, a := newBillingFixture(t)
	ctx := context.Background()

	legacy := seedAppointment(t, mem, a.PatientID, a.ProcedureID, "2024-07-02T09:00", 50)
	require.NoError(t, mem.Appointments.SetPayment(ctx, legacy.ID, models.PaymentUpdate{}))

	_, err := svc.RecordPayment(ctx, a.ID, models.PaymentRequest{Amount: "75.5"})
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ana", rows[0].PatientName)
	assert.Equal(t, "Restauração", rows[0].ProcedureName)
	assert.Equal(t, 124.5, rows[0].Remaining)
	assert.Equal(t, models.PaymentPartial, rows[0].PaymentStatus)

	assert.Equal(t, models.PaymentOpen, rows[1].PaymentStatus)
	assert.Equal(t, 50.0, rows[1].Remaining)
}
