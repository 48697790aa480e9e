package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

const msgAppointmentFields = "patientId, procedureId and datetime are required"

// --- GET APPOINTMENTS ---
func (h *Handler) GetAppointments(c *gin.Context) {
	appointments, err := h.Appointments.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	appointment, err := h.Appointments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// --- CREATE APPOINTMENT (sends the SMS confirmation when enabled) ---
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req models.AppointmentFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAppointmentFields})
		return
	}

	appointment, err := h.Appointments.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// --- UPDATE APPOINTMENT ---
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.AppointmentFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAppointmentFields})
		return
	}

	appointment, err := h.Appointments.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// --- DELETE APPOINTMENT ---
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Appointments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
