// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/garantico/feedsite/internal/config"
)

// EngineMySQL selects the mysql gorm driver.
const EngineMySQL = "mysql"

// EnginePostgres selects the postgres gorm driver. This is the default.
const EnginePostgres = "postgres"

// Create builds the Data Source Name from the configuration, matching the
// configured gorm engine.
func Create(cfg *config.Config) string {
	if cfg.DB.GormEngine == EngineMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}

	out := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d %s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.Extras,
	)

	return out
}
