package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/internal/pkg/env"
	"github.com/matsci-ai/matsci/pkg/logger"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// SetupDatabase connects to MySQL when DB_NAME is configured and runs
// the migrations. Without DB_NAME it returns nil and the platform runs
// on the in-memory backend.
func SetupDatabase() (*gorm.DB, error) {
	dbName := env.GetEnv("DB_NAME", "")
	if dbName == "" {
		logger.Get().Infow("no database configured, using in-memory storage")
		return nil, nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		dbName,
	)

	var err error
	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
		}), &gorm.Config{})
		if err == nil {
			if merr := DB.AutoMigrate(
				&models.User{},
				&models.SubscriptionPlan{},
				&models.PaymentTransaction{},
				&models.MaterialPrediction{},
				&models.EthiopianMaterial{},
			); merr != nil {
				return nil, fmt.Errorf("failed to run migrations: %w", merr)
			}
			return DB, nil
		}

		logger.Get().Warnw("failed to connect to database", "try", i+1, "maxRetries", maxRetries, "error", err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d tries: %w", maxRetries, err)
}
