package main

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"sqlgenie/ai"
	"sqlgenie/cache"
	"sqlgenie/config"
	"sqlgenie/db"
	"sqlgenie/handlers"
	"sqlgenie/logger"
	"sqlgenie/service"
	"sqlgenie/session"
)

func newServeCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "Port to listen on")
	cmd.Flags().DurationVar(&cfg.ProcessingDelay, "delay", cfg.ProcessingDelay, "Simulated processing delay")
	cmd.Flags().BoolVar(&cfg.ArchiveHistory, "archive", cfg.ArchiveHistory, "Archive query history to disk")

	return cmd
}

func runServe(cfg config.Config) error {
	deps := session.Dependencies{
		Generator: ai.New(),
		Executor:  service.NewSynthesizer(),
	}

	// Initialize history archive (optional)
	var archive *db.DB
	if cfg.ArchiveHistory {
		var err error
		archive, err = db.New(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize history archive: %w", err)
		}
		defer archive.Close()
		deps.Archive = archive
		logger.Info("History archive enabled", logger.Ctx{"path": cfg.DBPath})
	}

	resultsStorage, err := service.NewResultsStorage(cfg.ResultsDir)
	if err != nil {
		return err
	}

	sessions := session.NewManager(cache.New(cfg.SessionTTL), deps, session.Options{
		Delay:        cfg.ProcessingDelay,
		HistoryLimit: cfg.HistoryLimit,
	})

	h := handlers.New(sessions, archive, resultsStorage, cfg)

	if strings.ToLower(cfg.Log.Level) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(h, gin.LoggerWithWriter(logger.Writer()))

	logger.Info("Server starting", logger.Ctx{"port": cfg.Port, "delay": cfg.ProcessingDelay.String()})
	if err := r.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
