package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ponloe/kinohod-store/internal/database"
)

// HealthHandler pings the store.
func (h *Handler) HealthHandler(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.log.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListTablesHandler returns every declared table and whether the store has it.
func (h *Handler) ListTablesHandler(c *gin.Context) {
	statuses, err := database.InspectAll(c.Request.Context(), h.db, h.registry)
	if err != nil {
		h.log.Error("inspect schema", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tables := make([]gin.H, 0, len(statuses))
	for _, st := range statuses {
		tables = append(tables, gin.H{
			"name":    st.Name,
			"present": st.Present,
			"missing": len(st.Missing),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": tables, "total": len(tables)})
}

// GetTableHandler returns the declared shape of one table next to the
// columns the store holds for it.
func (h *Handler) GetTableHandler(c *gin.Context) {
	name := c.Param("name")

	table, ok, err := h.registry.Table(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not declared"})
		return
	}

	st, err := database.Inspect(c.Request.Context(), h.db, table)
	if err != nil {
		h.log.Error("inspect table", "table", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":        table.Name,
		"columns":     table.Columns,
		"foreignKeys": table.ForeignKeys,
		"store":       st,
	})
}

// ListRelationsHandler returns enforced foreign keys and cross-references.
// ?enforced=true or ?enforced=false narrows the list.
func (h *Handler) ListRelationsHandler(c *gin.Context) {
	rels, err := h.registry.Relations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := c.Query("enforced")
	if filter != "" && filter != "true" && filter != "false" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enforced must be true or false"})
		return
	}

	out := rels[:0:0]
	for _, r := range rels {
		if filter == "" || (filter == "true") == r.Enforced {
			out = append(out, r)
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}
