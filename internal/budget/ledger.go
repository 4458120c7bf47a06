package budget

import (
	"time"

	"pennywise/internal/models"
)

// FilterByType returns the transactions whose type matches exactly.
// The input slice is never mutated and its order is preserved.
func FilterByType(transactions []models.Transaction, txType models.TransactionType) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type == txType {
			out = append(out, tx)
		}
	}
	return out
}

// FilterByWindow keeps transactions with Timestamp >= start and, when end
// is non-nil, Timestamp <= end. The current cycle is open-ended, so its
// callers pass a nil end; historical windows are closed on both sides.
func FilterByWindow(transactions []models.Transaction, start time.Time, end *time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Timestamp.Before(start) {
			continue
		}
		if end != nil && tx.Timestamp.After(*end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
