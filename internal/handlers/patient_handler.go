package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.Patients.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	patient, err := h.Patients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req models.PatientDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, age and phone are required"})
		return
	}

	patient, err := h.Patients.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.PatientDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, age and phone are required"})
		return
	}

	patient, err := h.Patients.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// DeletePatient removes the patient and all of its appointments.
func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Patients.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
