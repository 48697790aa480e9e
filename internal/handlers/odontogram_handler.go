package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

type odontogramRequest struct {
	Odontogram map[string]models.ToothStatus `json:"odontogram" binding:"required"`
}

type toothRequest struct {
	Status *models.ToothStatus `json:"status" binding:"required"`
}

// ListToothStatuses returns the status codes a tooth can be marked with.
func (h *Handler) ListToothStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teeth": models.ToothNumbers, "statuses": models.StatusOptions})
}

func (h *Handler) GetOdontogram(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	chart, err := h.Patients.GetOdontogram(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// ReplaceOdontogram overwrites the whole chart of a patient.
func (h *Handler) ReplaceOdontogram(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req odontogramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "odontogram is required"})
		return
	}

	chart, err := h.Patients.ReplaceOdontogram(c.Request.Context(), id, req.Odontogram)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// SetTooth changes a single tooth. An empty status clears it.
func (h *Handler) SetTooth(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req toothRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	view, err := h.Patients.SetTooth(c.Request.Context(), id, c.Param("tooth"), *req.Status)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, view)
}
