package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"refeitorio/internal/importer"
	"refeitorio/internal/model"
)

// Import ingests one uploaded spreadsheet.
// POST /api/import, multipart fields: file (workbook), shifts
// (comma-separated codes, optional), actor (optional, X-Actor header
// wins), debug (optional).
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing uploaded file"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer f.Close()

	grid, err := importer.ReadGridFromReader(f)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if len(grid) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "empty file: no rows found"})
		return
	}

	shifts := h.defaultShifts
	if raw := strings.TrimSpace(c.PostForm("shifts")); raw != "" {
		shifts = strings.Split(raw, ",")
	}

	actor := c.GetHeader("X-Actor")
	if actor == "" {
		actor = c.PostForm("actor")
	}

	logID, logErr := h.store.CreateImportLog(fileHeader.Filename, actor)

	result := h.orchestrator.Import(importer.Options{
		Grid:    grid,
		Shifts:  shifts,
		ActorID: actor,
		Debug:   c.PostForm("debug") == "true",
	})

	if logErr == nil {
		created, updated := 0, 0
		for _, entry := range result.Created {
			if entry.Action == model.ActionCreated {
				created++
			} else {
				updated++
			}
		}
		total := len(result.Created) + len(result.Errors)
		_ = h.store.FinishImportLog(logID, total, created, updated, len(result.Errors), "completed", "")
		_ = h.store.SetConfig("last_import_id", logID)
	}

	c.JSON(http.StatusOK, result)
}
