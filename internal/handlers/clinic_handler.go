package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type anamnesisRequest struct {
	Anamnesis string `json:"anamnesis"`
}

// GetWaitingList returns every appointment in chronological order.
func (h *Handler) GetWaitingList(c *gin.Context) {
	list, err := h.Appointments.WaitingList(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetConsultation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	consultation, err := h.Appointments.Consultation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

func (h *Handler) SaveAnamnesis(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req anamnesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	appointment, err := h.Appointments.SaveAnamnesis(c.Request.Context(), id, req.Anamnesis)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, appointment)
}
