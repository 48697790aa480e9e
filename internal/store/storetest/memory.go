// Package storetest provides in-memory implementations of the store
// interfaces for service and handler tests.
package storetest

import (
	"context"
	"sync"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory holds one table per collection. Setting Err on a table makes every
// call on it fail with that error, which lets tests simulate an unreachable
// database.
type Memory struct {
	Patients     *Patients
	Procedures   *Procedures
	Appointments *Appointments
	Users        *Users
}

func New() *Memory {
	return &Memory{
		Patients:     &Patients{table: newTable(func(p *models.Patient) primitive.ObjectID { return p.ID }, clonePatient, models.ErrPatientNotFound)},
		Procedures:   &Procedures{table: newTable(func(p *models.Procedure) primitive.ObjectID { return p.ID }, nil, models.ErrProcedureNotFound)},
		Appointments: &Appointments{table: newTable(func(a *models.Appointment) primitive.ObjectID { return a.ID }, nil, models.ErrAppointmentNotFound)},
		Users:        &Users{table: newTable(func(u *models.User) primitive.ObjectID { return u.ID }, nil, models.ErrUserNotFound)},
	}
}

func (m *Memory) Stores() store.Stores {
	return store.Stores{
		Patients:     m.Patients,
		Procedures:   m.Procedures,
		Appointments: m.Appointments,
		Users:        m.Users,
		Tx:           m,
	}
}

// RunInTransaction calls fn directly; the memory tables have no rollback.
func (m *Memory) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type table[T any] struct {
	mu       sync.Mutex
	rows     []T
	id       func(*T) primitive.ObjectID
	clone    func(T) T
	notFound error

	Err error
}

func newTable[T any](id func(*T) primitive.ObjectID, clone func(T) T, notFound error) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{id: id, clone: clone, notFound: notFound}
}

func (t *table[T]) list() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}
	out := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, t.clone(r))
	}
	return out, nil
}

func (t *table[T]) find(match func(*T) bool) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return nil, t.Err
	}
	for i := range t.rows {
		if match(&t.rows[i]) {
			v := t.clone(t.rows[i])
			return &v, nil
		}
	}
	return nil, t.notFound
}

func (t *table[T]) get(id primitive.ObjectID) (*T, error) {
	return t.find(func(v *T) bool { return t.id(v) == id })
}

func (t *table[T]) insert(v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return t.Err
	}
	t.rows = append(t.rows, t.clone(*v))
	return nil
}

func (t *table[T]) update(id primitive.ObjectID, apply func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return t.Err
	}
	for i := range t.rows {
		if t.id(&t.rows[i]) == id {
			apply(&t.rows[i])
			return nil
		}
	}
	return t.notFound
}

func (t *table[T]) deleteWhere(match func(*T) bool) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.Err != nil {
		return 0, t.Err
	}
	kept := t.rows[:0]
	var n int64
	for _, r := range t.rows {
		if match(&r) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	t.rows = kept
	return n, nil
}

func (t *table[T]) delete(id primitive.ObjectID) error {
	n, err := t.deleteWhere(func(v *T) bool { return t.id(v) == id })
	if err != nil {
		return err
	}
	if n == 0 {
		return t.notFound
	}
	return nil
}

// Len reports the number of stored rows.
func (t *table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

func clonePatient(p models.Patient) models.Patient {
	if p.Odontogram != nil {
		o := make(models.Odontogram, len(p.Odontogram))
		for k, v := range p.Odontogram {
			o[k] = v
		}
		p.Odontogram = o
	}
	return p
}

type Patients struct{ *table[models.Patient] }

func (s *Patients) List(ctx context.Context) ([]models.Patient, error) { return s.list() }

func (s *Patients) Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	return s.get(id)
}

func (s *Patients) Insert(ctx context.Context, p *models.Patient) error {
	if p.Odontogram == nil {
		p.Odontogram = models.Odontogram{}
	}
	return s.insert(p)
}

func (s *Patients) UpdateDetails(ctx context.Context, p *models.Patient) error {
	return s.update(p.ID, func(row *models.Patient) {
		row.Name, row.Age, row.Phone, row.Notes = p.Name, p.Age, p.Phone, p.Notes
	})
}

func (s *Patients) ReplaceOdontogram(ctx context.Context, id primitive.ObjectID, o models.Odontogram) error {
	return s.update(id, func(row *models.Patient) {
		row.Odontogram = clonePatient(models.Patient{Odontogram: o}).Odontogram
		if row.Odontogram == nil {
			row.Odontogram = models.Odontogram{}
		}
	})
}

func (s *Patients) SetTooth(ctx context.Context, id primitive.ObjectID, tooth string, status models.ToothStatus) error {
	return s.update(id, func(row *models.Patient) {
		if row.Odontogram == nil {
			row.Odontogram = models.Odontogram{}
		}
		row.Odontogram[tooth] = status
	})
}

func (s *Patients) Delete(ctx context.Context, id primitive.ObjectID) error { return s.delete(id) }

type Procedures struct{ *table[models.Procedure] }

func (s *Procedures) List(ctx context.Context) ([]models.Procedure, error) { return s.list() }

func (s *Procedures) Get(ctx context.Context, id primitive.ObjectID) (*models.Procedure, error) {
	return s.get(id)
}

func (s *Procedures) Insert(ctx context.Context, p *models.Procedure) error { return s.insert(p) }

func (s *Procedures) Update(ctx context.Context, p *models.Procedure) error {
	return s.update(p.ID, func(row *models.Procedure) {
		row.Order, row.Name, row.Value = p.Order, p.Name, p.Value
	})
}

func (s *Procedures) Delete(ctx context.Context, id primitive.ObjectID) error { return s.delete(id) }

type Appointments struct{ *table[models.Appointment] }

func (s *Appointments) List(ctx context.Context) ([]models.Appointment, error) { return s.list() }

func (s *Appointments) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	return s.get(id)
}

func (s *Appointments) Insert(ctx context.Context, a *models.Appointment) error { return s.insert(a) }

func (s *Appointments) UpdateSchedule(ctx context.Context, a *models.Appointment) error {
	return s.update(a.ID, func(row *models.Appointment) {
		row.PatientID, row.ProcedureID = a.PatientID, a.ProcedureID
		row.DateTime, row.Notes = a.DateTime, a.Notes
		row.TotalValue, row.PaymentStatus = a.TotalValue, a.PaymentStatus
	})
}

func (s *Appointments) SetAnamnesis(ctx context.Context, id primitive.ObjectID, text string) error {
	return s.update(id, func(row *models.Appointment) { row.Anamnesis = text })
}

func (s *Appointments) SetPayment(ctx context.Context, id primitive.ObjectID, u models.PaymentUpdate) error {
	return s.update(id, func(row *models.Appointment) {
		row.PaidAmount, row.PaymentStatus, row.PaymentDate = u.PaidAmount, u.PaymentStatus, u.PaymentDate
	})
}

func (s *Appointments) Delete(ctx context.Context, id primitive.ObjectID) error { return s.delete(id) }

func (s *Appointments) DeleteByPatient(ctx context.Context, patientID primitive.ObjectID) (int64, error) {
	return s.deleteWhere(func(a *models.Appointment) bool { return a.PatientID == patientID })
}

func (s *Appointments) DeleteByProcedure(ctx context.Context, procedureID primitive.ObjectID) (int64, error) {
	return s.deleteWhere(func(a *models.Appointment) bool { return a.ProcedureID == procedureID })
}

type Users struct{ *table[models.User] }

func (s *Users) List(ctx context.Context) ([]models.User, error) { return s.list() }

func (s *Users) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.get(id)
}

func (s *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.find(func(u *models.User) bool { return u.Username == username })
}

func (s *Users) Insert(ctx context.Context, u *models.User) error {
	if _, err := s.FindByUsername(ctx, u.Username); err == nil {
		return models.ErrUsernameTaken
	}
	return s.insert(u)
}

func (s *Users) Delete(ctx context.Context, id primitive.ObjectID) error { return s.delete(id) }

var (
	_ store.PatientStore     = (*Patients)(nil)
	_ store.ProcedureStore   = (*Procedures)(nil)
	_ store.AppointmentStore = (*Appointments)(nil)
	_ store.UserStore        = (*Users)(nil)
	_ store.Transactor       = (*Memory)(nil)
)
