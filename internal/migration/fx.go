package migration

import (
	"github.com/orthoflow/orthoflow/internal/config"
	"github.com/orthoflow/orthoflow/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// Only postgres runs versioned migrations; sqlite is for dev/test and
		// gets its schema from the seed helper.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			if err := seed.EnsureSchema(conn); err != nil {
				return err
			}
		}

		if cfg.SeedCatalog {
			return seed.EnsureCatalog(conn)
		}
		return nil
	}),
)
