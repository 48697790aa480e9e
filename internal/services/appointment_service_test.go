package services

import (
	"context"
	"testing"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func futureDateTime(d time.Duration) string {
	return time.Now().Add(d).Format(models.DateTimeLayout)
}

func TestAppointmentService_CreateSnapshotsValue(t *testing.T) {
	mem := storetest.New()
	notifier := &recordingNotifier{}
	svc := NewAppointmentService(mem.Stores(), notifier, testLogger)
	ctx := context.Background()

	patient := seedPatient(t, mem, "Ana")
	proc := seedProcedure(t, mem, 1, "Limpeza", 120)

	a, err := svc.Create(ctx, models.AppointmentFields{
		PatientID:   patient.ID.Hex(),
		ProcedureID: proc.ID.Hex(),
		DateTime:    "2024-07-01T09:00:00",
		Notes:       " primeira consulta ",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-07-01T09:00", a.DateTime)
	assert.Equal(t, "primeira consulta", a.Notes)
	assert.Equal(t, 120.0, a.TotalValue)
	assert.Equal(t, 0.0, a.PaidAmount)
	assert.Equal(t, models.PaymentOpen, a.PaymentStatus)
	assert.Equal(t, "", a.PaymentDate)
	assert.Empty(t, notifier.sent, "past appointments are not confirmed by SMS")

	future, err := svc.Create(ctx, models.AppointmentFields{
		PatientID:   patient.ID.Hex(),
		ProcedureID: proc.ID.Hex(),
		DateTime:    futureDateTime(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{future.ID}, notifier.sent)
}

func TestAppointmentService_CreateRejects(t *testing.T) {
	mem := storetest.New()
	svc := NewAppointmentService(mem.Stores(), nil, testLogger)
	ctx := context.Background()

	patient := seedPatient(t, mem, "Ana")
	proc := seedProcedure(t, mem, 1, "Limpeza", 120)

	tests := []struct {
		name   string
		fields models.AppointmentFields
		want   error
	}{
		{"bad patient id", models.AppointmentFields{PatientID: "x", ProcedureID: proc.ID.Hex(), DateTime: "2024-07-01T09:00"}, models.ErrInvalidID},
		{"unknown patient", models.AppointmentFields{PatientID: primitive.NewObjectID().Hex(), ProcedureID: proc.ID.Hex(), DateTime: "2024-07-01T09:00"}, models.ErrPatientNotFound},
		{"unknown procedure", models.AppointmentFields{PatientID: patient.ID.Hex(), ProcedureID: primitive.NewObjectID().Hex(), DateTime: "2024-07-01T09:00"}, models.ErrProcedureNotFound},
		{"bad datetime", models.AppointmentFields{PatientID: patient.ID.Hex(), ProcedureID: proc.ID.Hex(), DateTime: "01/07/2024 09:00"}, models.ErrInvalidDateTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.fields)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, mem.Appointments.Len())
}

func TestAppointmentService_UpdateResnapshotsAndKeepsPaid(t *testing.T) {
	mem := storetest.New()
	svc := NewAppointmentService(mem.Stores(), nil, testLogger)
	ctx := context.Background()

	patient := seedPatient(t, mem, "Ana")
	cleaning := seedProcedure(t, mem, 1, "Limpeza", 100)
	filling := seedProcedure(t, mem, 2, "Restauração", 250)
	a := seedAppointment(t, mem, patient.ID, cleaning.ID, "2024-07-01T09:00", 100)
	require.NoError(t, mem.Appointments.SetPayment(ctx, a.ID, models.PaymentUpdate{PaidAmount: 100, PaymentStatus: models.PaymentPaid, PaymentDate: "2024-07-01"}))
	require.NoError(t, mem.Appointments.SetAnamnesis(ctx, a.ID, "sensibilidade"))

	updated, err := svc.Update(ctx, a.ID, models.AppointmentFields{
		PatientID:   patient.ID.Hex(),
		ProcedureID: filling.ID.Hex(),
		DateTime:    "2024-07-05T10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.TotalValue)
	assert.Equal(t, 100.0, updated.PaidAmount)
	assert.Equal(t, models.PaymentPartial, updated.PaymentStatus)

	got, err := mem.Appointments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-07-05T10:30", got.DateTime)
	assert.Equal(t, "sensibilidade", got.Anamnesis)
	assert.Equal(t, "2024-07-01", got.PaymentDate)
	assert.Equal(t, models.PaymentPartial, got.PaymentStatus)

	_, err = svc.Update(ctx, primitive.NewObjectID(), models.AppointmentFields{
		PatientID: patient.ID.Hex(), ProcedureID: filling.ID.Hex(), DateTime: "2024-07-05T10:30",
	})
	assert.ErrorIs(t, err, models.ErrAppointmentNotFound)
}

func TestAppointmentService_WaitingListAndNames(t *testing.T) {
	mem := storetest.New()
	svc := NewAppointmentService(mem.Stores(), nil, testLogger)
	ctx := context.Background()

	ana := seedPatient(t, mem, "Ana")
	proc := seedProcedure(t, mem, 1, "Limpeza", 100)
	late := seedAppointment(t, mem, ana.ID, proc.ID, "2024-07-02T08:00", 100)
	early := seedAppointment(t, mem, ana.ID, proc.ID, "2024-07-01T15:00", 100)
	orphan := seedAppointment(t, mem, primitive.NewObjectID(), proc.ID, "2024-07-01T16:00", 100)

	list, err := svc.WaitingList(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, orphan.ID, list[1].ID)
	assert.Equal(t, late.ID, list[2].ID)

	assert.Equal(t, "Ana", list[0].PatientName)
	assert.Equal(t, "Limpeza", list[0].ProcedureName)
	assert.Equal(t, "", list[1].PatientName)
}

func TestAppointmentService_ConsultationAndAnamnesis(t *testing.T) {
	mem := storetest.New()
	svc := NewAppointmentService(mem.Stores(), nil, testLogger)
	ctx := context.Background()

	patient := seedPatient(t, mem, "Ana")
	require.NoError(t, mem.Patients.SetTooth(ctx, patient.ID, "36", "Rc"))
	proc := seedProcedure(t, mem, 1, "Limpeza", 100)
	a := seedAppointment(t, mem, patient.ID, proc.ID, "2024-07-01T09:00", 100)

	c, err := svc.Consultation(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, c.Appointment.ID)
	assert.Equal(t, "Ana", c.Patient.Name)
	require.Len(t, c.Chart, 32)
	for _, v := range c.Chart {
		if v.Tooth == "36" {
			assert.Equal(t, "Restaurado com cárie", v.Label)
		}
	}

	saved, err := svc.SaveAnamnesis(ctx, a.ID, "  dor ao mastigar\n")
	require.NoError(t, err)
	assert.Equal(t, "dor ao mastigar", saved.Anamnesis)

	_, err = svc.SaveAnamnesis(ctx, primitive.NewObjectID(), "x")
	assert.ErrorIs(t, err, models.ErrAppointmentNotFound)

	require.NoError(t, mem.Patients.Delete(ctx, patient.ID))
	_, err = svc.Consultation(ctx, a.ID)
	assert.ErrorIs(t, err, models.ErrPatientNotFound)
}

func TestAppointmentService_Delete(t *testing.T) {
	mem := storetest.New()
	svc := NewAppointmentService(mem.Stores(), nil, testLogger)
	ctx := context.Background()

	a := seedAppointment(t, mem, primitive.NewObjectID(), primitive.NewObjectID(), "2024-07-01T09:00", 100)
	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), models.ErrAppointmentNotFound)
}
