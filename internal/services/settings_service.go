package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/logger"
	"pennywise/internal/models"
)

// settingsService handles the per-user settings singleton.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's settings, creating the record with
// defaults on first access.
func (s *settingsService) GetSettings(userID string) (*models.Settings, error) {
	var settings models.Settings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSettings(userID)
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings applies a merge-style partial update: only non-nil fields
// are overwritten. An unsupported currency code falls back to the default
// rather than failing; an invalid cycle length is a configuration error
// and is rejected.
func (s *settingsService) UpdateSettings(userID string, currencyCode *string, cycleMonths *int) (*models.Settings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if currencyCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*currencyCode))
		if _, ok := models.CurrencySymbols[code]; !ok {
			logger.Get().Warnw("unsupported currency code, falling back to default",
				"code", code,
				"user_id", userID,
			)
			code = models.DefaultCurrencyCode
		}
		updates["currency_code"] = code
	}
	if cycleMonths != nil {
		if !models.ValidCycleMonths(*cycleMonths) {
			return nil, apperrors.ErrInvalidCycleMonths
		}
		updates["cycle_months"] = *cycleMonths
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return settings, nil
}
