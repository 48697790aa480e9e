package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateTimeLayout is the ISO local layout appointments are scheduled with.
const DateTimeLayout = "2006-01-02T15:04"

// PaymentDateLayout is the layout of Appointment.PaymentDate.
const PaymentDateLayout = "2006-01-02"

type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID     primitive.ObjectID `bson:"patientId" json:"patientId"`
	ProcedureID   primitive.ObjectID `bson:"procedureId" json:"procedureId"`
	DateTime      string             `bson:"datetime" json:"datetime"`
	Notes         string             `bson:"notes" json:"notes"`
	Anamnesis     string             `bson:"anamnesis" json:"anamnesis"`
	TotalValue    float64            `bson:"totalValue" json:"totalValue"`
	PaidAmount    float64            `bson:"paidAmount" json:"paidAmount"`
	PaymentStatus PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	PaymentDate   string             `bson:"paymentDate" json:"paymentDate"`
}

// Time parses DateTime in the server's local time zone.
func (a *Appointment) Time() (time.Time, error) {
	return ParseDateTime(a.DateTime)
}

// Status returns the stored payment status, treating a missing one as Open.
func (a *Appointment) Status() PaymentStatus {
	if a.PaymentStatus == "" {
		return PaymentOpen
	}
	return a.PaymentStatus
}

// ParseDateTime accepts "2006-01-02T15:04" with optional seconds.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{DateTimeLayout, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// AppointmentFields are the schedulable fields of an appointment.
type AppointmentFields struct {
	PatientID   string `json:"patientId" binding:"required"`
	ProcedureID string `json:"procedureId" binding:"required"`
	DateTime    string `json:"datetime" binding:"required"`
	Notes       string `json:"notes"`
}

// AppointmentView is an appointment with its references resolved for display.
// Names are empty when the referenced record no longer exists.
type AppointmentView struct {
	Appointment
	PatientName   string `json:"patientName"`
	ProcedureName string `json:"procedureName"`
}

// Consultation gathers what the dentist sees while attending an appointment.
type Consultation struct {
	Appointment Appointment `json:"appointment"`
	Patient     Patient     `json:"patient"`
	Chart       []ToothView `json:"odontogram"`
}
