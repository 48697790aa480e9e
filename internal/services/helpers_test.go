package services

import (
	"context"
	"sync"
	"testing"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store/storetest"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func seedPatient(t *testing.T, mem *storetest.Memory, name string) *models.Patient {
	t.Helper()
	p := &models.Patient{ID: primitive.NewObjectID(), Name: name, Age: 30, Phone: "+5521987654321", Odontogram: models.Odontogram{}}
	require.NoError(t, mem.Patients.Insert(context.Background(), p))
	return p
}

func seedProcedure(t *testing.T, mem *storetest.Memory, order int, name string, value float64) *models.Procedure {
	t.Helper()
	p := &models.Procedure{ID: primitive.NewObjectID(), Order: order, Name: name, Value: value}
	require.NoError(t, mem.Procedures.Insert(context.Background(), p))
	return p
}

func seedAppointment(t *testing.T, mem *storetest.Memory, patient, procedure primitive.ObjectID, datetime string, total float64) *models.Appointment {
	t.Helper()
	a := &models.Appointment{
		ID:            primitive.NewObjectID(),
		PatientID:     patient,
		ProcedureID:   procedure,
		DateTime:      datetime,
		TotalValue:    total,
		PaymentStatus: models.PaymentOpen,
	}
	require.NoError(t, mem.Appointments.Insert(context.Background(), a))
	return a
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []primitive.ObjectID
}

func (n *recordingNotifier) SendAppointmentConfirmation(_ *models.Patient, _ *models.Procedure, apt *models.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, apt.ID)
}
