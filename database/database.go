package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"deals-backend/config"
	"deals-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.Deal{},
		&models.DealEvent{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database initialized successfully")
	return nil
}

// LoadDealData loads deal records from a JSON file into the database.
// Records failing validation are skipped, not fatal; deals without an ID
// get one assigned.
func LoadDealData(filePath string) error {
	var count int64
	DB.Model(&models.Deal{}).Count(&count)
	if count > 0 {
		log.Printf("Database already contains %d deals, skipping data load", count)
		return nil
	}

	log.Println("Loading deal data from file:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var deals []models.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	log.Printf("Parsed %d deals from file", len(deals))

	validate := validator.New()
	valid := make([]models.Deal, 0, len(deals))
	skipped := 0
	for _, deal := range deals {
		if deal.ID == "" {
			deal.ID = uuid.NewString()
		}
		if err := validate.Struct(deal); err != nil {
			log.Printf("Skipping invalid deal %q: %v", deal.Title, err)
			skipped++
			continue
		}
		valid = append(valid, deal)
	}

	// Insert in batches
	batchSize := 100
	inserted := 0
	for i := 0; i < len(valid); i += batchSize {
		end := i + batchSize
		if end > len(valid) {
			end = len(valid)
		}

		batch := valid[i:end]
		if err := DB.Create(&batch).Error; err != nil {
			log.Printf("Failed to insert batch: %v", err)
		} else {
			inserted += len(batch)
		}
	}

	log.Printf("Data load complete: %d inserted, %d skipped", inserted, skipped)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
