package models

import "gorm.io/gorm"

// BaseFrequency is the frequency at which a category's raw limit is
// expressed before normalization to the budget cycle.
type BaseFrequency string

const (
	FrequencyDaily     BaseFrequency = "daily"
	FrequencyMonthly   BaseFrequency = "monthly"
	FrequencyBimonthly BaseFrequency = "bimonthly"
)

// Category represents a user-defined spending category with a limit
// expressed at one of the base frequencies.
type Category struct {
	Base
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string        `gorm:"not null" json:"name"`
	BaseLimit     float64       `gorm:"not null;default:0" json:"base_limit"`
	BaseFrequency BaseFrequency `json:"base_frequency"`
	Color         string        `json:"color"`
	Icon          string        `json:"icon"`

	// LegacyBudgetLimit is the pre-rename limit column still present on old
	// rows. It is folded into BaseLimit by AfterFind and never written.
	LegacyBudgetLimit *float64 `gorm:"column:budget_limit" json:"-"`
}

// AfterFind normalizes legacy rows into the canonical shape in one place:
// rows written before the base_limit rename carry their limit in
// budget_limit, and rows created before frequencies existed have no
// base_frequency at all.
func (c *Category) AfterFind(tx *gorm.DB) error {
	if c.BaseLimit == 0 && c.LegacyBudgetLimit != nil {
		c.BaseLimit = *c.LegacyBudgetLimit
	}
	if c.BaseFrequency == "" {
		c.BaseFrequency = FrequencyMonthly
	}
	return nil
}
