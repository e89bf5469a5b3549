package db

import (
	"log"
	"time"

	"tokenvest-backend/internal/domain/liquidity"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm connects to mysql, applies pool settings, and migrates the
// liquidity schema.
func OpenGorm(dsn string) (*gorm.DB, error) {
	gdb, err := OpenGormWithDialector(mysql.Open(dsn))
	if err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&liquidity.Request{}, &liquidity.Sequence{}); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return gdb, nil
}

// OpenGormWithDialector is the migration-free core of OpenGorm, split out so
// tests can inject a mocked connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	gdb, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gdb, nil
}
