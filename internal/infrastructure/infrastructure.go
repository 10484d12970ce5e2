// Package infrastructure assembles the shared systems (logging, database,
// inference client, image archive, metrics) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/litterlens/internal/config"
	"github.com/JaimeStill/litterlens/internal/observability"
	"github.com/JaimeStill/litterlens/migrations"
	"github.com/JaimeStill/litterlens/pkg/database"
	"github.com/JaimeStill/litterlens/pkg/inference"
	"github.com/JaimeStill/litterlens/pkg/lifecycle"
	"github.com/JaimeStill/litterlens/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil when no archive connection string is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Inference *inference.Client
	Storage   storage.System
	Metrics   *observability.Metrics
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	var store storage.System
	if cfg.Storage.Enabled() {
		store, err = storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
	}

	client := inference.New(&cfg.Agent, &cfg.Inference, logger)
	if !client.Configured() {
		logger.Warn("inference token not set; report submissions will fail until it is configured")
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Inference: client,
		Storage:   store,
		Metrics:   observability.NewMetrics(),
	}, nil
}

// Start registers the database and, when enabled, the archive with the
// lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}
