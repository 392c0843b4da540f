package database

import (
	"fmt"
	"testing"

	"olibranch/internal/config"
	"olibranch/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestProfile(t *testing.T, db *DB, email string) *models.BusinessProfile {
	t.Helper()

	profile := &models.BusinessProfile{
		Email:          email,
		BusinessName:   "Test Ventures LLC",
		EntityType:     "LLC",
		MonthlyRevenue: decimal.NewFromInt(8000),
		MonthlyFees:    decimal.NewFromInt(45),
		AccountType:    models.AccountTypePersonal,
		WantsGrants:    true,
		ZipCode:        "11215",
		Consent:        true,
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}

func CreateTestLinkedBank(t *testing.T, db *DB, bankName string) *models.LinkedBank {
	t.Helper()

	bank := &models.LinkedBank{
		BankName:    bankName,
		AccountMask: "****4821",
	}

	if err := db.Create(bank).Error; err != nil {
		t.Fatalf("failed to create test linked bank: %v", err)
	}

	return bank
}

func CreateTestSubscription(t *testing.T, db *DB, plan string) *models.Subscription {
	t.Helper()

	sub := &models.Subscription{
		Plan: plan,
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}

	return sub
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"fee_analyses",
		"bank_transactions",
		"linked_banks",
		"health_snapshots",
		"health_inputs",
		"subscriptions",
		"settings",
		"business_profiles",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
