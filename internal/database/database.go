package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ponloe/kinohod-store/internal/config"
)

// Open connects to the store described by cfg and verifies the connection.
// Every failure to reach the store is reported as ErrStorageUnavailable.
func Open(cfg config.Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		log.Info("connecting to database", "driver", cfg.DB.Driver)
		dialector = postgres.Open(cfg.DB.DSN)
	case config.DriverSQLite, "":
		if err := checkParent(cfg.DB.Path); err != nil {
			return nil, err
		}
		log.Info("opening database file", "driver", config.DriverSQLite, "path", cfg.DB.Path)
		dialector = sqlite.Open(sqliteDSN(cfg.DB.Path))
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrStorageUnavailable, cfg.DB.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log, cfg.DB.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gorm open: %v", ErrStorageUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: db.DB(): %v", ErrStorageUnavailable, err)
	}
	if cfg.DB.Driver == config.DriverPostgres {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	} else {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrStorageUnavailable, err)
	}

	log.Info("database connection established")
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func checkParent(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty database path", ErrStorageUnavailable)
	}
	if isMemory(path) {
		return nil
	}
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: parent directory %s does not exist", ErrStorageUnavailable, dir)
	case err != nil:
		return fmt.Errorf("%w: stat %s: %v", ErrStorageUnavailable, dir, err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s is not a directory", ErrStorageUnavailable, dir)
	}
	return nil
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
