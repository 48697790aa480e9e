package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

type PaymentStatus string

const (
	PaymentOpen    PaymentStatus = "Open"
	PaymentPartial PaymentStatus = "Partial"
	PaymentPaid    PaymentStatus = "Paid"
)

// DeriveStatus is the payment status implied by the cumulative paid amount.
func DeriveStatus(paid, total float64) PaymentStatus {
	switch {
	case paid >= total:
		return PaymentPaid
	case paid <= 0:
		return PaymentOpen
	default:
		return PaymentPartial
	}
}

// RoundCents rounds a BRL amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseAmount validates a payment amount: numeric, finite and strictly positive.
func ParseAmount(n json.Number) (float64, error) {
	v, err := n.Float64()
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaymentAmount, n.String())
	}
	v = RoundCents(v)
	if v <= 0 {
		return 0, fmt.Errorf("%w: must be greater than zero", ErrInvalidPaymentAmount)
	}
	return v, nil
}

// PaymentRequest is the body of a payment registration.
type PaymentRequest struct {
	Amount json.Number `json:"amount"`
	Date   string      `json:"date"`
}

// PaymentUpdate is the new payment state of an appointment.
type PaymentUpdate struct {
	PaidAmount    float64       `bson:"paidAmount" json:"paidAmount"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	PaymentDate   string        `bson:"paymentDate" json:"paymentDate"`
}

// ApplyPayment computes the payment state after adding amount to a. It does
// not modify a. The date defaults to the day of now.
func ApplyPayment(a *Appointment, amount float64, date string, now time.Time) (PaymentUpdate, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return PaymentUpdate{}, ErrInvalidPaymentAmount
	}
	if a.Status() == PaymentPaid {
		return PaymentUpdate{}, ErrAlreadyPaid
	}
	if date == "" {
		date = now.Format(PaymentDateLayout)
	} else if _, err := time.Parse(PaymentDateLayout, date); err != nil {
		return PaymentUpdate{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	paid := RoundCents(a.PaidAmount + amount)
	return PaymentUpdate{
		PaidAmount:    paid,
		PaymentStatus: DeriveStatus(paid, a.TotalValue),
		PaymentDate:   date,
	}, nil
}

// BillingRow is one line of the billing table.
type BillingRow struct {
	AppointmentView
	Remaining float64 `json:"remaining"`
}
