package store

import (
	"context"
	"fmt"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/logging"
	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

// Mongo holds the database handle and the collection accessors built on it.
type Mongo struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool

	Patients     *MongoPatients
	Procedures   *MongoProcedures
	Appointments *MongoAppointments
	Users        *MongoUsers
}

// Connect dials uri, verifies the connection and returns the accessors for
// database. transactions enables multi-document transactions for cascades,
// which requires a replica set.
func Connect(ctx context.Context, uri, database string, transactions bool) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetMonitor(otelmongo.NewMonitor()).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("database", database),
		zap.Bool("transactions", transactions),
	)
	return New(client.Database(database), transactions), nil
}

// New wraps an already connected database.
func New(db *mongo.Database, transactions bool) *Mongo {
	return &Mongo{
		client:       db.Client(),
		db:           db,
		transactions: transactions,
		Patients:     &MongoPatients{NewCollection[models.Patient](db, PatientsCollection, models.ErrPatientNotFound)},
		Procedures:   &MongoProcedures{NewCollection[models.Procedure](db, ProceduresCollection, models.ErrProcedureNotFound)},
		Appointments: &MongoAppointments{NewCollection[models.Appointment](db, AppointmentsCollection, models.ErrAppointmentNotFound)},
		Users:        &MongoUsers{NewCollection[models.User](db, UsersCollection, models.ErrUserNotFound)},
	}
}

// Stores returns the accessors as the interfaces the services consume.
func (m *Mongo) Stores() Stores {
	return Stores{
		Patients:     m.Patients,
		Procedures:   m.Procedures,
		Appointments: m.Appointments,
		Users:        m.Users,
		Tx:           m,
	}
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the accessors rely on. Creating an
// existing index is a no-op.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = m.db.Collection(AppointmentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}}, Options: options.Index().SetName("patientId_1")},
		{Keys: bson.D{{Key: "procedureId", Value: 1}}, Options: options.Index().SetName("procedureId_1")},
		{Keys: bson.D{{Key: "datetime", Value: 1}}, Options: options.Index().SetName("datetime_1")},
	})
	if err != nil {
		return fmt.Errorf("failed to create appointments indexes: %w", err)
	}
	return nil
}

// RunInTransaction runs fn inside a session transaction when transactions
// are enabled and calls it directly otherwise.
func (m *Mongo) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !m.transactions {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start database session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		logging.Logger.Error("transaction failed", zap.Error(err))
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
