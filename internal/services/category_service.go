package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new spending category. Names are display
// strings and intentionally not enforced unique. An omitted frequency
// defaults to monthly.
func (s *categoryService) CreateCategory(
	userID string,
	name string,
	baseLimit float64,
	baseFrequency models.BaseFrequency,
	color string,
	icon string,
) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if baseLimit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "base limit cannot be negative")
	}
	if baseFrequency == "" {
		baseFrequency = models.FrequencyMonthly
	}

	category := &models.Category{
		UserID:        userID,
		Name:          name,
		BaseLimit:     baseLimit,
		BaseFrequency: baseFrequency,
		Color:         color,
		Icon:          icon,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetUserCategories retrieves a paginated list of categories for a user.
func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	base := s.db.Model(&models.Category{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID retrieves a category by ID for a specific user.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category in place. Empty strings and
// nil pointers leave the stored values untouched.
func (s *categoryService) UpdateCategory(
	userID string,
	categoryID string,
	name string,
	baseLimit *float64,
	baseFrequency *models.BaseFrequency,
	color string,
	icon string,
) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if baseLimit != nil {
		if *baseLimit < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "base limit cannot be negative")
		}
		updates["base_limit"] = *baseLimit
		// A rewritten limit supersedes any legacy budget_limit value.
		updates["budget_limit"] = nil
	}
	if baseFrequency != nil && *baseFrequency != "" {
		updates["base_frequency"] = *baseFrequency
	}
	if color != "" {
		updates["color"] = color
	}
	if icon != "" {
		updates["icon"] = icon
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// DeleteCategory soft-deletes a category. Existing transactions keep their
// category_id reference for historical records.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
