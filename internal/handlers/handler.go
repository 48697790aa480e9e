package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/logging"
	"github.com/harentsoaR/dental-clinic/internal/models"
	"github.com/harentsoaR/dental-clinic/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Messages for store faults. Reads never return partial data.
const (
	msgLoadFailed = "failed to load data"
	msgSaveFailed = "failed to save data"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds the services the HTTP endpoints delegate to.
type Handler struct {
	Auth         *services.AuthService
	Users        *services.UserService
	Patients     *services.PatientService
	Procedures   *services.ProcedureService
	Appointments *services.AppointmentService
	Billing      *services.BillingService
	Reports      *services.ReportService
	Database     Pinger
}

// parseID reads an ObjectID path parameter, answering 400 when malformed.
func parseID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidID.Error()})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondError maps a service error to its HTTP status. Unknown errors are
// logged and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrInvalidDateTime),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidPatient),
		errors.Is(err, models.ErrInvalidPhone),
		errors.Is(err, models.ErrInvalidProcedure),
		errors.Is(err, models.ErrInvalidTooth),
		errors.Is(err, models.ErrInvalidToothState),
		errors.Is(err, models.ErrInvalidPaymentAmount),
		errors.Is(err, models.ErrInvalidUser),
		errors.Is(err, models.ErrInvalidRole):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrPatientNotFound),
		errors.Is(err, models.ErrProcedureNotFound),
		errors.Is(err, models.ErrAppointmentNotFound),
		errors.Is(err, models.ErrUserNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrAlreadyPaid),
		errors.Is(err, models.ErrUsernameTaken):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, models.ErrCannotDeleteSelf),
		errors.Is(err, models.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, models.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, models.ErrInvalidCredentials.Error()
	case errors.Is(err, models.ErrAuthUnavailable):
		status, message = http.StatusServiceUnavailable, models.ErrAuthUnavailable.Error()
	default:
		logging.Logger.Error("request failed",
			zap.String("route", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{"error": message})
}
