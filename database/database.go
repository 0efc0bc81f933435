package database

import (
	"coinwidget/config"
	"coinwidget/models"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the SQLite database named by config.Settings and assigns it to DB.
func InitDB() error {
	db, err := Open(config.Settings.DatabaseURL, config.Settings)
	if err != nil {
		return err
	}
	DB = db

	log.Println("Database initialized successfully")
	return nil
}

// Open opens a SQLite database at path with the PRAGMA and pool settings
// from settings, and migrates the widget record table.
func Open(path string, settings *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if settings.LogLevel == "DEBUG" {
		logLevel = logger.Info
	}

	opts := sqliteOptionsFrom(settings)
	db, err := gorm.Open(sqlite.Open(opts.dsn(path)), &gorm.Config{
		Logger: countingLogger{
			inner: logger.New(
				log.New(log.Writer(), "\r\n", log.LstdFlags),
				logger.Config{LogLevel: logLevel, IgnoreRecordNotFoundError: true},
			),
			stats: Stats,
		},
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	opts.applyPool(sqlDB)

	// Re-apply PRAGMAs on the open connection for database files created
	// before the DSN carried them.
	for _, p := range opts.pragmaList() {
		db.Exec("PRAGMA " + p.name + " = " + p.value)
	}

	if err := db.AutoMigrate(&models.WidgetRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}

// CloseDB closes the database connection and releases resources
func CloseDB() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	log.Println("Closing database connection...")
	return sqlDB.Close()
}
