package models

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrProcedureNotFound   = errors.New("procedure not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidDateTime  = errors.New("invalid datetime, use YYYY-MM-DDTHH:MM")
	ErrInvalidDate      = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidPatient   = errors.New("invalid patient data")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidProcedure = errors.New("invalid procedure data")

	ErrInvalidTooth      = errors.New("unknown tooth number")
	ErrInvalidToothState = errors.New("unknown tooth status code")

	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrAlreadyPaid          = errors.New("appointment is already paid")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthUnavailable    = errors.New("authentication unavailable")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidUser        = errors.New("username, password and role are required")
	ErrInvalidRole        = errors.New("unknown role")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrCannotDeleteSelf   = errors.New("cannot delete the logged in user")
	ErrForbidden          = errors.New("permission denied")
)
