package server

import (
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"refeitorio/internal/api"
	"refeitorio/internal/config"
	"refeitorio/internal/store"
)

// Server HTTP server wiring the store and the API handler together.
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer creates the server, opening the SQLite store under the
// configured data directory.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "refeitorio.db")

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	handler := api.NewHandler(st, cfg.Imports.DefaultShifts)

	s := &Server{
		router: gin.Default(),
		store:  st,
		api:    handler,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Actor")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.api.RegisterRoutes(group)
	}
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}
