package models

// CurrencySymbols maps the supported display currencies to their symbols.
// Unrecognized codes fall back to the default.
var CurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

// DefaultCurrencyCode is used when no currency has been chosen or the
// stored code is not supported.
const DefaultCurrencyCode = "USD"

// AllowedCycleMonths are the valid budget cycle lengths in whole months.
var AllowedCycleMonths = []int{1, 2, 3, 6, 12}

// DefaultCycleMonths is the cycle length a user starts with.
const DefaultCycleMonths = 1

// Settings is the per-user singleton holding display and cycle preferences.
// It is created lazily with defaults and updated with merge semantics:
// fields absent from an update keep their prior values.
type Settings struct {
	Base
	UserID       string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CurrencyCode string `gorm:"not null" json:"currency_code"`
	CycleMonths  int    `gorm:"not null" json:"cycle_months"`
}

// DefaultSettings returns the settings a user starts with.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:       userID,
		CurrencyCode: DefaultCurrencyCode,
		CycleMonths:  DefaultCycleMonths,
	}
}

// CurrencySymbol returns the display symbol for code, falling back to the
// default currency for unrecognized codes.
func CurrencySymbol(code string) string {
	if symbol, ok := CurrencySymbols[code]; ok {
		return symbol
	}
	return CurrencySymbols[DefaultCurrencyCode]
}

// ValidCycleMonths reports whether n is an allowed cycle length.
func ValidCycleMonths(n int) bool {
	for _, allowed := range AllowedCycleMonths {
		if n == allowed {
			return true
		}
	}
	return false
}
