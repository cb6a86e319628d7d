package database

import (
	"fmt"

	"costr/internal/config"
	"costr/internal/logger"
	"costr/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens a GORM connection for the SQL key-value store and
// migrates its single table. driver is config.DriverPostgres or config.DriverSQLite.
func NewConnection(driver, dsn string, log *logrus.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the key-value table
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		logger.LogWarn(log, "database", "NewConnection", driver, "failed to auto-migrate kv_entries: "+err.Error())
	}

	return db, nil
}
