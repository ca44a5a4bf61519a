package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/analyzeme/analyzeme/internal/api"
	"github.com/analyzeme/analyzeme/internal/app/progression"
	_ "github.com/analyzeme/analyzeme/internal/infra/metrics" // Register Prometheus metrics
	"github.com/analyzeme/analyzeme/internal/infra/sqlite"
)

// Daemon is the AnalyzeMe runtime. It wires config, the database, the
// progression engine, and the HTTP API together.
type Daemon struct {
	Config      Config
	DB          *sqlite.DB
	Progression *progression.Facade
	Server      *api.Server
	InstallID   string
	cancel      context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dir := cfg.Storage.Dir
	if dir == "" {
		dir = analyzemeHome()
	}

	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	installID, err := ensureInstallID(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("install id: %w", err)
	}

	facade := progression.New(db)

	srv := api.NewServer(facade)
	srv.SetCORSOrigins(cfg.API.CORSOrigins)
	srv.SetInstallID(installID)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:      cfg,
		DB:          db,
		Progression: facade,
		Server:      srv,
		InstallID:   installID,
	}, nil
}

// ensureInstallID returns the stable installation id from app_info,
// generating and persisting one on first start.
func ensureInstallID(db *sqlite.DB) (string, error) {
	id, err := db.GetAppInfo("install_id")
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := db.SetAppInfo("install_id", id); err != nil {
		return "", err
	}
	return id, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("AnalyzeMe serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close shuts down the daemon's resources.
func (d *Daemon) Close() error {
	if d.cancel != nil {
		d.cancel()
	}
	return d.DB.Close()
}
