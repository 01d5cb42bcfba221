package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"Chirp/api/models"
)

var tables = []interface{}{
	&models.User{},
	&models.Tweet{},
	&models.Follow{},
}

// Migrate creates or updates the schema, including the follows unique index,
// the no-self-follow CHECK and the (created_at, id) timeline index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(tables...); err != nil {
		return errors.Wrap(err, "store.Migrate")
	}
	return nil
}

// Reset drops every table and migrates again. Used by the seeder.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(tables...); err != nil {
		return errors.Wrap(err, "store.Reset.DropTable")
	}
	return Migrate(db)
}
