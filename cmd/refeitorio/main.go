package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"refeitorio/internal/config"
	"refeitorio/internal/importer"
	"refeitorio/internal/logging"
	"refeitorio/internal/model"
	"refeitorio/internal/server"
	"refeitorio/internal/store"
)

var (
	port       = flag.Int("port", 0, "HTTP port (overrides config.toml)")
	devMode    = flag.Bool("dev", false, "development mode")
	dataDir    = flag.String("dataDir", "", "data directory (overrides config.toml)")
	importPath = flag.String("import", "", "import a spreadsheet and exit")
	shiftCodes = flag.String("shifts", "", "comma-separated shift codes for -import")
	actorID    = flag.String("actor", "cli", "actor id recorded for -import")
	debugFlag  = flag.Bool("debug", false, "attach diagnostic payload to -import output")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if *importPath != "" {
		os.Exit(runImport(cfg))
	}

	srv := server.NewServer(cfg)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("shutting down")
	if err := srv.Close(); err != nil {
		log.Printf("close failed: %v", err)
	}
}

// runImport one-shot CLI import: read the workbook, run the pipeline,
// print the aggregated result as JSON. Non-zero exit only for
// infrastructure failures; per-record errors live inside the result.
func runImport(cfg *config.AppConfig) int {
	grid, err := importer.ReadGrid(*importPath)
	if err != nil {
		log.Printf("read failed: %v", err)
		return 1
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dir = cfg.Data.DataDir
	}
	st, err := store.New(filepath.Join(dir, "refeitorio.db"))
	if err != nil {
		log.Printf("store init failed: %v", err)
		return 1
	}
	defer st.Close()

	shifts := cfg.Imports.DefaultShifts
	if *shiftCodes != "" {
		shifts = strings.Split(*shiftCodes, ",")
	}

	logID, logErr := st.CreateImportLog(filepath.Base(*importPath), *actorID)

	orch := importer.NewOrchestrator(importer.NewUpsertEngine(st))
	result := orch.Import(importer.Options{
		Grid:    grid,
		Shifts:  shifts,
		ActorID: *actorID,
		Debug:   *debugFlag,
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
		_ = st.FinishImportLog(logID, total, created, updated, len(result.Errors), "completed", "")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("encode failed: %v", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}
