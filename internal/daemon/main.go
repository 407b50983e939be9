// Package daemon wires configuration, database, sessions and the web service
// into a runnable unit.
package daemon

import (
	"fmt"
	"os"

	"github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql"
	sessionpostgres "github.com/gofiber/storage/postgres"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/config"
	"github.com/garantico/feedsite/internal/db/controller/user"
	"github.com/garantico/feedsite/internal/db/dsn"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/logger"
	"github.com/garantico/feedsite/internal/web"
	"github.com/garantico/feedsite/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// openDB opens the configured database and migrates the schema.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	dbDriver := gormpostgres.Open(dsn.Create(cfg))
	if cfg.DB.GormEngine == dsn.EngineMySQL {
		dbDriver = gormmysql.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Category{},
		&models.Product{},
		&models.NavigationItem{},
		&models.PageContent{},
		&models.ProductInquiry{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// newSessionStorage creates the session storage matching the db engine, so
// sessions live next to the application data.
func newSessionStorage(cfg *config.Config) storage.Storage {
	if cfg.DB.GormEngine == dsn.EngineMySQL {
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}

	return sessionpostgres.New(sessionpostgres.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
		return nil
	}

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
		return nil
	}

	seed(cfg, db)

	if err = os.MkdirAll(cfg.Site.UploadDir, 0o750); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Site.UploadDir).Msg("failed to create upload directory")
		return nil
	}

	session.Init(newSessionStorage(cfg))

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}

// CreateAdmin creates an admin account or resets its password when the
// username already exists.
func CreateAdmin(cfg *config.Config, username, password string) error {
	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	if err = user.Upsert(db, username, models.HashPassword(password)); err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("admin account ready")

	return nil
}
