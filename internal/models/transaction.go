package models

import "time"

// TransactionType represents the type of ledger entry.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	// TransactionTypeBudget is an income/funding entry. The name is
	// historical: it predates per-category limits and is baked into
	// stored records, so it stays.
	TransactionTypeBudget TransactionType = "budget"
)

// IncomeCategoryID is the sentinel category reference carried by
// budget-type (income) transactions, which have no real category.
const IncomeCategoryID = "income"

// Placeholders applied when the user leaves the source field blank.
const (
	UnknownSource             = "Unknown"
	UncategorizedIncomeSource = "Uncategorized Income"
)

// Transaction is one entry in the append-only ledger. Entries are created
// and deleted, never updated; Timestamp is assigned at creation.
type Transaction struct {
	Base
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID string          `gorm:"not null;index" json:"category_id"`
	Type       TransactionType `gorm:"not null" json:"type"`
	Amount     float64         `gorm:"not null" json:"amount"`
	Source     string          `json:"source"`
	Timestamp  time.Time       `gorm:"not null;index" json:"timestamp"`
}
