package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/middleware"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	res, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, models.ErrAuthUnavailable.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// Logout revokes the token the request was made with.
func (h *Handler) Logout(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	if err := h.Auth.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err, models.ErrAuthUnavailable.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCurrentUser returns the identity carried by the session token.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, id)
}

// GetNavigation lists the pages the caller's role may open.
func (h *Handler) GetNavigation(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": id.Role, "pages": models.PagesFor(id.Role)})
}
