// Package daemon bootstraps the database, object storage, session store and
// web service.
package daemon

import (
	"context"
	"fmt"

	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/cache"
	"github.com/tablecraft/tablecraft/internal/config"
	"github.com/tablecraft/tablecraft/internal/db/dsn"
	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/storage"
	"github.com/tablecraft/tablecraft/internal/web"
	"github.com/tablecraft/tablecraft/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormpostgres.Open(dsn.Create(cfg))

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Tenant{},
		&models.TenantDomain{},
		&models.User{},
		&models.Media{},
		&models.SiteContent{},
		&models.Article{},
		&models.Review{},
		&models.KeywordRank{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize fiber session store
	sessionStorage := sessionpostgres.New(sessionpostgres.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})

	session.Init(sessionStorage)

	// Object storage for media uploads (nil when disabled)
	store, err := storage.New(cfg.Storage)
	if err != nil {
		panic("failed to connect object storage")
	}

	if store != nil {
		if err = store.EnsureBucket(context.Background()); err != nil {
			panic("failed to ensure media bucket")
		}
	}

	contentCache := cache.New(cfg.Redis)

	return &Daemon{
		webService: web.New(cfg, db, store, contentCache),
		cfg:        cfg,
	}
}
