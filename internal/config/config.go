package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yuviart/storefront/internal/session"
)

type Config struct {
	PORT                string
	BACKEND_URL         string
	MOCK_MODE           bool
	DB_HOST             string
	DB_PORT             string
	DB_USER             string
	DB_PASSWORD         string
	DB_NAME             string
	ES_URL              string
	ES_USER             string
	ES_PASSWORD         string
	KAFKA_ADDRESS       string
	JWT_SECRET          string
	ADMIN_EMAIL         string
	ADMIN_PASSWORD_HASH string
	LOG_LEVEL           string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		PORT:                os.Getenv("PORT"),
		BACKEND_URL:         os.Getenv("BACKEND_URL"),
		MOCK_MODE:           os.Getenv("MOCK_MODE") == "true",
		DB_HOST:             os.Getenv("DB_HOST"),
		DB_PORT:             os.Getenv("DB_PORT"),
		DB_USER:             os.Getenv("DB_USER"),
		DB_PASSWORD:         os.Getenv("DB_PASSWORD"),
		DB_NAME:             os.Getenv("DB_NAME"),
		ES_URL:              os.Getenv("ES_URL"),
		ES_USER:             os.Getenv("ES_USER"),
		ES_PASSWORD:         os.Getenv("ES_PASSWORD"),
		KAFKA_ADDRESS:       os.Getenv("KAFKA_ADDRESS"),
		JWT_SECRET:          os.Getenv("JWT_SECRET"),
		ADMIN_EMAIL:         os.Getenv("ADMIN_EMAIL"),
		ADMIN_PASSWORD_HASH: os.Getenv("ADMIN_PASSWORD_HASH"),
		LOG_LEVEL:           os.Getenv("LOG_LEVEL"),
	}

	if config.PORT == "" {
		config.PORT = "8081"
	}
	if config.BACKEND_URL == "" {
		config.BACKEND_URL = "http://localhost:8080/api"
	}

	return config, nil
}

// InitDB opens the session-state database: postgres when DB_HOST is set,
// otherwise an in-process sqlite file, so the service runs without any
// infrastructure in demo mode.
func InitDB(configuration *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if configuration.DB_HOST != "" {
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			configuration.DB_USER, configuration.DB_PASSWORD,
			configuration.DB_HOST, configuration.DB_PORT, configuration.DB_NAME,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open("storefront.db"), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("cannot connect to session db: %w", err)
	}

	if err := db.AutoMigrate(&session.Entry{}); err != nil {
		return nil, fmt.Errorf("cannot migrate session db: %w", err)
	}
	return db, nil
}
