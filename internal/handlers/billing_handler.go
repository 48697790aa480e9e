package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

func (h *Handler) ListBilling(c *gin.Context) {
	rows, err := h.Billing.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// RecordPayment adds {"amount", "date"} to what the appointment has paid.
func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidPaymentAmount.Error()})
		return
	}

	appointment, err := h.Billing.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, appointment)
}
