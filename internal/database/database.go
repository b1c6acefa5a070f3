package database

import (
	"fmt"
	"time"

	"lpg-backoffice/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options tunes the connection pool; zero values take the defaults below
type Options struct {
	LogLevel        gormlogger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SkipMigrate     bool
}

func (o *Options) withDefaults() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.LogLevel == 0 {
		out.LogLevel = gormlogger.Error
	}
	if out.MaxOpenConns <= 0 {
		out.MaxOpenConns = 25
	}
	if out.MaxIdleConns <= 0 {
		out.MaxIdleConns = out.MaxOpenConns / 2
	}
	if out.ConnMaxLifetime <= 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	return out
}

// Models lists every table of the back office in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.UserPermission{},
		&models.RolePermission{},
		&models.OTPCode{},
		&models.Customer{},
		&models.CylinderEntry{},
		&models.Bill{},
		&models.Payment{},
		&models.Setting{},
		&models.Backup{},
	}
}

// Initialize connects to postgres and migrates the schema unless SkipMigrate is set.
// Duplicate-key errors are translated to gorm.ErrDuplicatedKey.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := opts.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(o.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)

	if o.SkipMigrate {
		return db, nil
	}
	// gen_random_uuid() before postgres 13; managed databases may refuse the extension
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error
	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
