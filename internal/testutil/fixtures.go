package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pennywise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with the given limit and frequency.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, baseLimit float64, frequency models.BaseFrequency) *models.Category {
	t.Helper()
	name := fmt.Sprintf("Test Category %d", nextID())
	return CreateTestCategoryWithName(t, db, userID, name, baseLimit, frequency)
}

// CreateTestCategoryWithName creates a category with the given name, limit,
// and frequency.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID, name string, baseLimit float64, frequency models.BaseFrequency) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID:        userID,
		Name:          name,
		BaseLimit:     baseLimit,
		BaseFrequency: frequency,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates an expense ledger entry against a category at
// the given timestamp.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID string, amount float64, timestamp time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: categoryID,
		Type:       models.TransactionTypeExpense,
		Amount:     amount,
		Source:     fmt.Sprintf("Test Merchant %d", nextID()),
		Timestamp:  timestamp,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestIncome creates an income ledger entry from the given source at
// the given timestamp.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, amount float64, source string, timestamp time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:     userID,
		CategoryID: models.IncomeCategoryID,
		Type:       models.TransactionTypeBudget,
		Amount:     amount,
		Source:     source,
		Timestamp:  timestamp,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return tx
}

// CreateTestSettings creates a settings row with the given cycle length.
func CreateTestSettings(t *testing.T, db *gorm.DB, userID string, cycleMonths int) *models.Settings {
	t.Helper()

	settings := &models.Settings{
		UserID:       userID,
		CurrencyCode: models.DefaultCurrencyCode,
		CycleMonths:  cycleMonths,
	}
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}
