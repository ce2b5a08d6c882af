package api

import (
	"github.com/gin-gonic/gin"

	"refeitorio/internal/importer"
	"refeitorio/internal/store"
)

// Handler HTTP surface over the import pipeline and the menu store. It
// owns no import semantics: it builds the grid, picks shift codes and an
// actor id, and hands everything to the orchestrator.
type Handler struct {
	store         *store.Store
	orchestrator  *importer.Orchestrator
	defaultShifts []string
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, defaultShifts []string) *Handler {
	return &Handler{
		store:         st,
		orchestrator:  importer.NewOrchestrator(importer.NewUpsertEngine(st)),
		defaultShifts: defaultShifts,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	router.POST("/import", h.Import)

	router.GET("/menu", h.ListMenu)
	router.GET("/menu/:date", h.GetMenu)
}
