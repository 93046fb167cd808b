// Package api serves a read-only view of the declared listings schema and of
// what the store actually holds.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ponloe/kinohod-store/internal/catalog"
)

type Handler struct {
	db       *gorm.DB
	registry *catalog.Registry
	log      *slog.Logger
}

func NewHandler(db *gorm.DB, registry *catalog.Registry, log *slog.Logger) *Handler {
	return &Handler{db: db, registry: registry, log: log}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.HealthHandler)

	schema := r.Group("/schema")
	schema.GET("/tables", h.ListTablesHandler)
	schema.GET("/tables/:name", h.GetTableHandler)
	schema.GET("/relations", h.ListRelationsHandler)
}
