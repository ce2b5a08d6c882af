package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"refeitorio/internal/parser"
)

// GetStatus liveness probe, plus the id of the most recent import when
// one exists.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	payload := gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)}
	if lastImport, err := h.store.GetConfig("last_import_id"); err == nil {
		payload["lastImportId"] = lastImport
	}
	c.JSON(http.StatusOK, payload)
}

// GetMenu returns one day with its shifts.
// GET /api/menu/:date
func (h *Handler) GetMenu(c *gin.Context) {
	date, err := parser.ResolveDateISO(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	day, err := h.store.GetMenuDay(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if day == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no menu for date"})
		return
	}

	c.JSON(http.StatusOK, day)
}

// ListMenu returns the days in a date range.
// GET /api/menu?from=YYYY-MM-DD&to=YYYY-MM-DD (default: current week on)
func (h *Handler) ListMenu(c *gin.Context) {
	from := c.DefaultQuery("from", time.Now().Format("2006-01-02"))
	to := c.DefaultQuery("to", time.Now().AddDate(0, 1, 0).Format("2006-01-02"))

	fromISO, err := parser.ResolveDateISO(from)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	toISO, err := parser.ResolveDateISO(to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	days, err := h.store.ListMenuDays(fromISO, toISO)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days, "count": len(days)})
}
