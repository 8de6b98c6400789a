package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/models"
)

// Connect opens the postgres connection. TranslateError is enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey, which the candidacy
// store relies on.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}

func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Project{},
		&models.Application{},
		&models.CompletedProject{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
