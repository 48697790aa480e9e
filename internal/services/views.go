package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resolveViews attaches patient and procedure names to each appointment.
// Dangling references resolve to empty names.
func resolveViews(ctx context.Context, patients store.PatientStore, procedures store.ProcedureStore, appointments []models.Appointment) ([]models.AppointmentView, error) {
	patientList, err := patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	procedureList, err := procedures.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list procedures: %w", err)
	}

	patientNames := make(map[primitive.ObjectID]string, len(patientList))
	for _, p := range patientList {
		patientNames[p.ID] = p.Name
	}
	procedureNames := make(map[primitive.ObjectID]string, len(procedureList))
	for _, p := range procedureList {
		procedureNames[p.ID] = p.Name
	}

	views := make([]models.AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, models.AppointmentView{
			Appointment:   a,
			PatientName:   patientNames[a.PatientID],
			ProcedureName: procedureNames[a.ProcedureID],
		})
	}
	return views, nil
}

// sortByDateTime orders appointments chronologically. The ISO layout sorts
// lexically; unparseable values go last.
func sortByDateTime(views []models.AppointmentView) {
	sort.SliceStable(views, func(i, j int) bool {
		_, errI := views[i].Time()
		_, errJ := views[j].Time()
		if (errI == nil) != (errJ == nil) {
			return errI == nil
		}
		return views[i].DateTime < views[j].DateTime
	})
}
