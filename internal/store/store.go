// Package store persists the clinic records in four document collections:
// patients, procedures, appointments and users.
package store

import (
	"context"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	PatientsCollection     = "patients"
	ProceduresCollection   = "procedures"
	AppointmentsCollection = "appointments"
	UsersCollection        = "users"
)

// List operations return records in whatever order the store yields them.
// Callers that display sorted data sort it themselves.

type PatientStore interface {
	List(ctx context.Context) ([]models.Patient, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	Insert(ctx context.Context, p *models.Patient) error
	// UpdateDetails overwrites name, age, phone and notes.
	UpdateDetails(ctx context.Context, p *models.Patient) error
	ReplaceOdontogram(ctx context.Context, id primitive.ObjectID, o models.Odontogram) error
	SetTooth(ctx context.Context, id primitive.ObjectID, tooth string, s models.ToothStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProcedureStore interface {
	List(ctx context.Context) ([]models.Procedure, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Procedure, error)
	Insert(ctx context.Context, p *models.Procedure) error
	Update(ctx context.Context, p *models.Procedure) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AppointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Insert(ctx context.Context, a *models.Appointment) error
	// UpdateSchedule overwrites the references, datetime, notes, total value
	// and payment status. Paid amount and anamnesis are left alone.
	UpdateSchedule(ctx context.Context, a *models.Appointment) error
	SetAnamnesis(ctx context.Context, id primitive.ObjectID, text string) error
	SetPayment(ctx context.Context, id primitive.ObjectID, u models.PaymentUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPatient(ctx context.Context, patientID primitive.ObjectID) (int64, error)
	DeleteByProcedure(ctx context.Context, procedureID primitive.ObjectID) (int64, error)
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// FindByUsername returns models.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Insert returns models.ErrUsernameTaken on a duplicate username.
	Insert(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Transactor runs multi-document operations as one unit when the backend
// supports it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores bundles the collection accessors handed to the services.
type Stores struct {
	Patients     PatientStore
	Procedures   ProcedureStore
	Appointments AppointmentStore
	Users        UserStore
	Tx           Transactor
}
