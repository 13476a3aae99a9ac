package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/p5hema2/Indexcards-OCR/docs/swagger"
	"github.com/p5hema2/Indexcards-OCR/internal/config"
	"github.com/p5hema2/Indexcards-OCR/internal/home"
	"github.com/p5hema2/Indexcards-OCR/internal/server"
	"github.com/p5hema2/Indexcards-OCR/internal/server/endpoints"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Indexcards server",
	Long: `Start the Indexcards HTTP server.

The server stores imported batches in a local sqlite database under
the home directory and serves scanned card images for export links.

The server provides:
  - /health  - Basic server health check
  - /ready   - Readiness check (includes the batch store)
  - /swagger - API documentation

Examples:
  indexcards serve                    # Start on default port 3000
  indexcards serve --port 8080        # Start on custom port
  indexcards serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Load config with hot-reload support
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()
		cfg := cfgMgr.Get()

		logger := newLogger(cfg.Log)

		// Get home directory
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:            host,
			Port:            port,
			Home:            h,
			ConfigManager:   cfgMgr,
			SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
			Logger:          logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

// newLogger builds the structured logger from config.
func newLogger(cfg config.LogCfg) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
