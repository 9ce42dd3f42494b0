package schema

import (
	"gorm.io/gorm"

	"github.com/naseer617/ta-member-service/internal/models"
)

// registerModels returns all models that need migration.
func registerModels() []interface{} {
	return []interface{}{
		&models.Member{},
	}
}

// Migrate creates or updates the backing schema. It is idempotent and is
// run both by the startup readiness gate and by cmd/migrate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle.
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addActiveUniqueIndexes,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// addActiveUniqueIndexes scopes login/email uniqueness to active rows.
// AutoMigrate creates these from the model tags on fresh databases; the
// explicit statements cover schemas created before the where clause was
// added to the tags.
func addActiveUniqueIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_members_login_active ON members (login) WHERE deleted = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_members_email_active ON members (email) WHERE deleted = false`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
