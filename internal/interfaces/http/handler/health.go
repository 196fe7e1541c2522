package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flowershop/backend/internal/infrastructure/logger"
	"github.com/flowershop/backend/internal/infrastructure/persistence"
)

// HealthHandler reports service liveness and database connectivity
type HealthHandler struct {
	db *persistence.Database
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /health. The probe pings the database; a failed ping
// degrades the response to 503 with the underlying error included.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "error",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	body := gin.H{
		"status":   "ok",
		"database": "connected",
	}
	if stats, err := h.db.Stats(); err == nil {
		body["connections"] = gin.H{
			"open":   stats.OpenConnections,
			"in_use": stats.InUse,
			"idle":   stats.Idle,
		}
	}
	c.JSON(http.StatusOK, body)
}

// Ping handles GET /api/v1/ping, a liveness probe that does not touch
// the database
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
