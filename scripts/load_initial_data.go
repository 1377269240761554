package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"link-manager-backend/internal/config"
	"link-manager-backend/internal/database"
	"link-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LinkData directly matches the DB schema for a seeded link
type LinkData struct {
	Owner   string   `yaml:"owner"`
	Name    string   `yaml:"name"`
	To      string   `yaml:"to,omitempty"`
	Enabled bool     `yaml:"enabled"`
	Paid    bool     `yaml:"paid"`
	Hooks   []string `yaml:"webhooks,omitempty"`
}

type LinksFile struct {
	Links []LinkData `yaml:"links"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadLinksFromYAML(db, "scripts/data/links.yaml"); err != nil {
		log.Fatalf("Failed to load links from YAML: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadLinksFromYAML(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No seed file at %s, nothing to load", path)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file LinksFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	created := 0
	for _, data := range file.Links {
		ok, err := createLink(db, data)
		if err != nil {
			return fmt.Errorf("failed to create link %s: %w", data.Name, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Links: %d created, %d total", created, len(file.Links))

	return nil
}

// createLink inserts a seeded link unless one with the same owner and name
// already exists. Returns whether a new record was created.
func createLink(db *gorm.DB, data LinkData) (bool, error) {
	owner, err := uuid.Parse(data.Owner)
	if err != nil {
		return false, fmt.Errorf("invalid owner %q: %w", data.Owner, err)
	}

	var existing models.Link
	err = db.Where("owner = ? AND name = ?", owner, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	link := models.Link{
		Owner:   owner,
		Name:    data.Name,
		Enabled: data.Enabled,
		Paid:    data.Paid,
	}
	if data.To != "" {
		link.To = &data.To
	}
	if len(data.Hooks) > 0 {
		link.Webhooks = models.StringSlice(data.Hooks)
	}

	if err := db.Create(&link).Error; err != nil {
		return false, err
	}
	return true, nil
}
