package database

import (
	"fmt"
	"time"

	"github.com/teamEPYC/leave-management-app-sub000/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipAutoMigrate leaves the schema alone, for deployments that manage
	// migrations out of band.
	SkipAutoMigrate bool
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey; the repositories rely on that as the authoritative
// race-breaker behind their check-then-insert fast paths.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Required for BaseModel's gen_random_uuid() default
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipAutoMigrate {
		all := []interface{}{
			&models.User{},
			&models.Organization{},
			&models.Role{},
			&models.Membership{},
			&models.Group{},
			&models.GroupMembership{},
			&models.Invitation{},
			&models.LeaveType{},
			&models.LeaveTypeGroup{},
			&models.LeaveBalance{},
			&models.LeaveBalanceAdjustment{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
