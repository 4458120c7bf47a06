package services

import (
	"time"

	"gorm.io/gorm"

	"pennywise/internal/budget"
	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// summaryService feeds full per-user snapshots into the pure aggregation
// core. It deliberately holds no subscription or cache: whenever any input
// changed, the next call simply recomputes everything from the store.
type summaryService struct {
	db              *gorm.DB
	settingsService SettingsServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB, settingsService SettingsServicer) SummaryServicer {
	return &summaryService{
		db:              db,
		settingsService: settingsService,
	}
}

// snapshot loads the user's complete categories, transactions, and settings.
func (s *summaryService) snapshot(userID string) ([]models.Category, []models.Transaction, *models.Settings, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&transactions).Error; err != nil {
		return nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings, err := s.settingsService.GetSettings(userID)
	if err != nil {
		return nil, nil, nil, err
	}

	return categories, transactions, settings, nil
}

// GetSummary recomputes the current-cycle summary from a fresh snapshot.
func (s *summaryService) GetSummary(userID string) (*budget.Summary, error) {
	categories, transactions, settings, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}

	summary := budget.Summarize(categories, transactions, *settings, time.Now())
	return &summary, nil
}

// GetTrend builds the historical expense series for the given number of
// cycles (current plus priors). Non-positive counts use the default.
func (s *summaryService) GetTrend(userID string, cycles int) ([]budget.TrendPoint, error) {
	if cycles < 1 {
		cycles = budget.DefaultTrendCycles
	}

	_, transactions, settings, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}

	return budget.BuildTrend(transactions, settings.CycleMonths, time.Now(), cycles), nil
}
