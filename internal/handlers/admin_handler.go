package handlers

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/bettyia/clinic-scheduler/internal/config"
	"github.com/bettyia/clinic-scheduler/internal/httperr"
)

type AdminHandler struct {
	config *config.Config
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{config: cfg}
}

// Secret gates the diagnostic endpoint behind the shared admin secret.
// Comparison is constant-time; an unconfigured secret means nobody gets in.
func (h *AdminHandler) Secret(c *gin.Context) {
	secret := h.config.AdminSecret
	supplied := c.GetHeader("admin-secret")

	if secret == "" ||
		subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
		httperr.Forbidden(c, "forbidden", "Forbidden")
		return
	}

	c.JSON(200, gin.H{"message": "Welcome, admin!"})
}
