package database

import (
	"fmt"
	"log/slog"

	"github.com/adeyemik/union-register/go-api-server/internal/config"
	"github.com/adeyemik/union-register/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration.
// With DB_AUTO_MIGRATE=true all register tables are dropped and recreated,
// so it is blocked outright in production.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("database migration starting - all register tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production")
	}

	slog.Info("dropping existing tables")

	// Ledger tables first, member table last (ledgers reference members)
	tables := []interface{}{
		&model.Fine{},
		&model.LevyPayment{},
		&model.MonthlyDue{},
		&model.Member{},
	}

	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			continue
		}
		if err := db.Migrator().DropTable(table); err != nil {
			slog.Debug("drop table failed", "table", fmt.Sprintf("%T", table), "error", err)
		} else {
			slog.Debug("table dropped", "table", fmt.Sprintf("%T", table))
		}
	}

	slog.Info("creating tables")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("migration complete")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// Creation order follows references: member first, ledgers after
	models := []interface{}{
		&model.Member{},
		&model.MonthlyDue{},
		&model.LevyPayment{},
		&model.Fine{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table created", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
