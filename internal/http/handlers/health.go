package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Health check
// @Tags    health
// @Success 200 {object} map[string]bool
// @Failure 503 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Hello godoc
// @Summary Hello
// @Tags    health
// @Produce plain
// @Success 200 {string} string
// @Router  /hello [get]
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello world")
}
