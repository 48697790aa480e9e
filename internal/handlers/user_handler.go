package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/middleware"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.UserFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidUser.Error()})
		return
	}

	user, err := h.Users.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	caller, _ := middleware.GetIdentity(c)

	if err := h.Users.Delete(c.Request.Context(), id, caller); err != nil {
		respondError(c, err, msgSaveFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
