package models

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const topProceduresLimit = 5

type ProcedureCount struct {
	ProcedureID string `json:"procedureId"`
	Name        string `json:"name"`
	Count       int    `json:"count"`
}

type Report struct {
	TotalAppointments int              `json:"totalAppointments"`
	ConsultationsDone int              `json:"consultationsDone"`
	TotalBilled       float64          `json:"totalBilled"`
	TotalPaid         float64          `json:"totalPaid"`
	TotalPending      float64          `json:"totalPending"`
	PatientsWithDebt  int              `json:"patientsWithDebt"`
	TopProcedures     []ProcedureCount `json:"topProcedures"`
}

// BuildReport aggregates the billing dashboard. Appointments whose datetime
// does not parse are counted but never as done.
func BuildReport(appointments []Appointment, procedures []Procedure, now time.Time) Report {
	r := Report{TotalAppointments: len(appointments), TopProcedures: []ProcedureCount{}}

	debtors := make(map[primitive.ObjectID]struct{})
	counts := make(map[primitive.ObjectID]int)
	for i := range appointments {
		a := &appointments[i]
		if t, err := a.Time(); err == nil && !t.After(now) {
			r.ConsultationsDone++
		}
		r.TotalBilled += a.TotalValue
		r.TotalPaid += a.PaidAmount
		if a.Status() != PaymentPaid {
			debtors[a.PatientID] = struct{}{}
		}
		if !a.ProcedureID.IsZero() {
			counts[a.ProcedureID]++
		}
	}
	r.TotalBilled = RoundCents(r.TotalBilled)
	r.TotalPaid = RoundCents(r.TotalPaid)
	r.TotalPending = RoundCents(r.TotalBilled - r.TotalPaid)
	r.PatientsWithDebt = len(debtors)

	names := make(map[primitive.ObjectID]string, len(procedures))
	for _, p := range procedures {
		names[p.ID] = p.Name
	}
	for id, n := range counts {
		name, ok := names[id]
		if !ok {
			name = id.Hex()
		}
		r.TopProcedures = append(r.TopProcedures, ProcedureCount{ProcedureID: id.Hex(), Name: name, Count: n})
	}
	sort.Slice(r.TopProcedures, func(i, j int) bool {
		if r.TopProcedures[i].Count != r.TopProcedures[j].Count {
			return r.TopProcedures[i].Count > r.TopProcedures[j].Count
		}
		return r.TopProcedures[i].Name < r.TopProcedures[j].Name
	})
	if len(r.TopProcedures) > topProceduresLimit {
		r.TopProcedures = r.TopProcedures[:topProceduresLimit]
	}
	return r
}
