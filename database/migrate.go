package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/buildledger/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a standalone database connection, used by the
// migration tool to move data between environments.
type DBConnection struct {
	DB    *gorm.DB
	Name  string
	DbURL string
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	if err := c.DB.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases copies all tenant data from source to target,
// parents before children so foreign keys resolve.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	if err := copyTable[models.Company](source, target, "companies"); err != nil {
		return err
	}
	if err := copyTable[models.User](source, target, "users"); err != nil {
		return err
	}
	if err := copyTable[models.Project](source, target, "projects"); err != nil {
		return err
	}
	if err := copyTable[models.Phase](source, target, "phases"); err != nil {
		return err
	}
	if err := copyTable[models.Category](source, target, "categories"); err != nil {
		return err
	}
	if err := copyTable[models.Vendor](source, target, "vendors"); err != nil {
		return err
	}
	if err := copyTable[models.Item](source, target, "items"); err != nil {
		return err
	}
	if err := copyTable[models.Purchase](source, target, "purchases"); err != nil {
		return err
	}

	log.Println("✅ Data migration completed successfully!")
	return nil
}

func copyTable[T any](source, target *DBConnection, name string) error {
	var rows []T
	if err := source.DB.Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to fetch %s: %v", name, err)
	}
	log.Printf("Found %d %s to migrate", len(rows), name)
	if len(rows) == 0 {
		return nil
	}
	if err := target.DB.CreateInBatches(&rows, 200).Error; err != nil {
		return fmt.Errorf("failed to migrate %s: %v", name, err)
	}
	return nil
}
