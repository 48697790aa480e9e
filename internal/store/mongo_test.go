package store

import (
	"context"
	"testing"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// setupMongo starts a throwaway MongoDB container. Tests are skipped when no
// container runtime is available.
func setupMongo(t *testing.T) *Mongo {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	m, err := Connect(ctx, uri, "dental_clinic_test", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	require.NoError(t, m.EnsureIndexes(ctx))
	return m
}

func TestMongoStores(t *testing.T) {
	m := setupMongo(t)
	ctx := context.Background()

	t.Run("patients", func(t *testing.T) {
		p := &models.Patient{ID: primitive.NewObjectID(), Name: "Ana", Age: 30, Phone: "+5511999990000"}
		require.NoError(t, m.Patients.Insert(ctx, p))

		got, err := m.Patients.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name)
		assert.NotNil(t, got.Odontogram)

		p.Name = "Ana Maria"
		p.Notes = "alérgica a penicilina"
		require.NoError(t, m.Patients.UpdateDetails(ctx, p))

		require.NoError(t, m.Patients.SetTooth(ctx, p.ID, "18", "C"))
		require.NoError(t, m.Patients.SetTooth(ctx, p.ID, "11", "H"))

		got, err = m.Patients.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", got.Name)
		assert.Equal(t, models.Odontogram{"18": "C", "11": "H"}, got.Odontogram)

		require.NoError(t, m.Patients.ReplaceOdontogram(ctx, p.ID, models.Odontogram{"21": "A"}))
		got, err = m.Patients.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.Odontogram{"21": "A"}, got.Odontogram)

		require.NoError(t, m.Patients.Delete(ctx, p.ID))
		_, err = m.Patients.Get(ctx, p.ID)
		assert.ErrorIs(t, err, models.ErrPatientNotFound)
		assert.ErrorIs(t, m.Patients.Delete(ctx, p.ID), models.ErrPatientNotFound)
	})

	t.Run("appointments cascade", func(t *testing.T) {
		patient := primitive.NewObjectID()
		other := primitive.NewObjectID()
		procedure := primitive.NewObjectID()
		for _, pid := range []primitive.ObjectID{patient, patient, other} {
			require.NoError(t, m.Appointments.Insert(ctx, &models.Appointment{
				ID:            primitive.NewObjectID(),
				PatientID:     pid,
				ProcedureID:   procedure,
				DateTime:      "2024-07-01T09:00",
				TotalValue:    100,
				PaymentStatus: models.PaymentOpen,
			}))
		}

		n, err := m.Appointments.DeleteByPatient(ctx, patient)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = m.Appointments.DeleteByProcedure(ctx, procedure)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		all, err := m.Appointments.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("payment and anamnesis", func(t *testing.T) {
		a := &models.Appointment{ID: primitive.NewObjectID(), DateTime: "2024-07-01T09:00", TotalValue: 100}
		require.NoError(t, m.Appointments.Insert(ctx, a))

		require.NoError(t, m.Appointments.SetPayment(ctx, a.ID, models.PaymentUpdate{
			PaidAmount: 40, PaymentStatus: models.PaymentPartial, PaymentDate: "2024-07-01",
		}))
		require.NoError(t, m.Appointments.SetAnamnesis(ctx, a.ID, "dor ao mastigar"))

		a.Notes = "retorno"
		a.TotalValue = 150
		a.PaymentStatus = models.PaymentPartial
		require.NoError(t, m.Appointments.UpdateSchedule(ctx, a))

		got, err := m.Appointments.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 40.0, got.PaidAmount)
		assert.Equal(t, 150.0, got.TotalValue)
		assert.Equal(t, "dor ao mastigar", got.Anamnesis)
		assert.Equal(t, "retorno", got.Notes)

		err = m.Appointments.SetAnamnesis(ctx, primitive.NewObjectID(), "x")
		assert.ErrorIs(t, err, models.ErrAppointmentNotFound)
	})

	t.Run("users unique username", func(t *testing.T) {
		u := &models.User{ID: primitive.NewObjectID(), Username: "admin", Password: "hash", Role: models.RoleAdmin}
		require.NoError(t, m.Users.Insert(ctx, u))

		dup := &models.User{ID: primitive.NewObjectID(), Username: "admin", Password: "hash", Role: models.RoleDentist}
		assert.ErrorIs(t, m.Users.Insert(ctx, dup), models.ErrUsernameTaken)

		got, err := m.Users.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		_, err = m.Users.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("procedures", func(t *testing.T) {
		p := &models.Procedure{ID: primitive.NewObjectID(), Order: 1, Name: "Limpeza", Value: 120}
		require.NoError(t, m.Procedures.Insert(ctx, p))
		p.Value = 150
		require.NoError(t, m.Procedures.Update(ctx, p))

		list, err := m.Procedures.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 150.0, list[0].Value)
	})

	t.Run("transaction passthrough", func(t *testing.T) {
		called := false
		err := m.RunInTransaction(ctx, func(ctx context.Context) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})
}
