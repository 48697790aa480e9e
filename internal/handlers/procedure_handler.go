package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

func (h *Handler) ListProcedures(c *gin.Context) {
	procedures, err := h.Procedures.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, procedures)
}

func (h *Handler) GetProcedure(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	procedure, err := h.Procedures.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, procedure)
}

func (h *Handler) CreateProcedure(c *gin.Context) {
	var req models.ProcedureFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order, name and value are required"})
		return
	}

	procedure, err := h.Procedures.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, procedure)
}

func (h *Handler) UpdateProcedure(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ProcedureFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order, name and value are required"})
		return
	}

	procedure, err := h.Procedures.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, procedure)
}

// DeleteProcedure removes the procedure and every appointment using it.
func (h *Handler) DeleteProcedure(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Procedures.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
