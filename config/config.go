package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodapi/logger"
	"foodapi/models"
)

// LoadEnv reads .env from the working directory when present. Missing
// files are fine; real environments set variables directly.
func LoadEnv() {
	_ = godotenv.Load()
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDB opens the database handle. With DB_HOST set it connects to
// postgres; otherwise it falls back to a local sqlite file so the service
// runs standalone in development. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func ConnectDB(log *logger.Logger) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			Getenv("DB_PORT", "5432"),
		)
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Info("connected to postgres", "host", host)
		return db, nil
	}

	path := Getenv("SQLITE_PATH", "food_api.db")
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	log.Info("using sqlite database", "path", path)
	return db, nil
}

// Migrate creates or updates the foods table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Food{})
}
