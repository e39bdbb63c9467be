package migration

import (
	"fmt"

	"gorm.io/gorm"

	"chefviral/internal/shared/logger"
)

// Manager coordinates database migrations with a pluggable strategy.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager for the given environment.
// Development uses gorm AutoMigrate; everything else applies versioned
// SQL scripts.
func NewManager(env, scriptsPath string) *Manager {
	var strategy Strategy
	if env == "development" {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		strategy = NewGolangMigrateStrategy(scriptsPath)
	}
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

// NewManagerWithStrategy creates a manager with an explicit strategy.
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().Named("migration.manager"),
	}
}

// Run executes the configured migration strategy against the database.
func (m *Manager) Run(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())
	if err := m.strategy.Migrate(db, AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed (%s): %w", m.strategy.GetName(), err)
	}
	m.logger.Infow("migrations completed", "strategy", m.strategy.GetName())
	return nil
}
