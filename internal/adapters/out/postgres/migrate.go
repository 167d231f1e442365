package postgres

import (
	"tracking/internal/adapters/out/postgres/entityrepo"
	"tracking/internal/adapters/out/postgres/packagerepo"

	"gorm.io/gorm"
)

// Models lists every table the tracking store owns, parents first.
func Models() []any {
	return []any{
		&entityrepo.SenderDTO{},
		&entityrepo.RecipientDTO{},
		&packagerepo.PackageDTO{},
		&packagerepo.StatusHistoryDTO{},
	}
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
