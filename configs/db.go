package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GodfreySilungwe/Quantic/entity"
)

// Open connects with the driver named in the config. TranslateError is on so
// unique-index violations come back as gorm.ErrDuplicatedKey regardless of
// driver; the reservation allocator relies on that.
func Open(cfg *Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBSource), gcfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBSource), gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate the schema
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Customer{}, &entity.Reservation{},
		&entity.Subscriber{},
		&entity.Promotion{},
	)
}
