package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clubtrack/club-api/internal/config"
	"github.com/clubtrack/club-api/internal/repository/dao"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=disable",
		conf.Host, conf.User, conf.Password, conf.DBName, conf.Port,
	)

	return open(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(url)
}

func open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(db); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return db, nil
}

// SeedDiscountPolicy creates the policy singleton on first boot.
// An existing row is left untouched; the endpoint owns runtime changes.
func SeedDiscountPolicy(db *gorm.DB, conf *config.BillingConfig) error {
	var policy dao.DiscountPolicy

	err := db.First(&policy).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("db.First -> %w", err)
	}

	policy = dao.DiscountPolicy{
		MinimumPrice:   conf.MinimumPrice,
		MaximumPrice:   conf.MaximumPrice,
		DiscountRate:   conf.DiscountRate,
		GuestThreshold: conf.GuestThreshold,
	}
	if err = db.Create(&policy).Error; err != nil {
		return fmt.Errorf("db.Create -> %w", err)
	}

	return nil
}
