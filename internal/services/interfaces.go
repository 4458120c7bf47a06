package services

import (
	"time"

	"pennywise/internal/budget"
	"pennywise/internal/models"
	"pennywise/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, displayName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
// The aggregation core only ever reads categories; all writes go through here.
type CategoryServicer interface {
	CreateCategory(userID, name string, baseLimit float64, baseFrequency models.BaseFrequency, color, icon string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name string, baseLimit *float64, baseFrequency *models.BaseFrequency, color, icon string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionServicer defines the contract for ledger entries. The ledger
// is append-only: entries are created and deleted, never updated.
type TransactionServicer interface {
	CreateTransaction(userID string, txType models.TransactionType, amount float64, categoryID, source string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// SettingsServicer defines the contract for the per-user settings singleton.
// Updates are merge-style: nil fields keep their stored values.
type SettingsServicer interface {
	GetSettings(userID string) (*models.Settings, error)
	UpdateSettings(userID string, currencyCode *string, cycleMonths *int) (*models.Settings, error)
}

// SummaryServicer is the snapshot adapter in front of the pure aggregation
// core: each call loads the user's complete categories, transactions, and
// settings and recomputes from scratch. It holds no live state.
type SummaryServicer interface {
	GetSummary(userID string) (*budget.Summary, error)
	GetTrend(userID string, cycles int) ([]budget.TrendPoint, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
