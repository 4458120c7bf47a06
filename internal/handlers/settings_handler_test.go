package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"
)

// --- mock settings service ---

type mockSettingsService struct {
	getSettingsFn    func(userID string) (*models.Settings, error)
	updateSettingsFn func(userID string, currencyCode *string, cycleMonths *int) (*models.Settings, error)
}

func (m *mockSettingsService) GetSettings(userID string) (*models.Settings, error) {
	if m.getSettingsFn != nil {
		return m.getSettingsFn(userID)
	}
	settings := models.DefaultSettings(userID)
	return &settings, nil
}

func (m *mockSettingsService) UpdateSettings(userID string, currencyCode *string, cycleMonths *int) (*models.Settings, error) {
	if m.updateSettingsFn != nil {
		return m.updateSettingsFn(userID, currencyCode, cycleMonths)
	}
	settings := models.DefaultSettings(userID)
	return &settings, nil
}

var _ services.SettingsServicer = (*mockSettingsService)(nil)

func setupSettingsRouter(handler *SettingsHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/settings", handler.GetSettings)
	auth.PUT("/settings", handler.UpdateSettings)
	return r
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	t.Run("returns settings with currency symbol", func(t *testing.T) {
		settingsSvc := &mockSettingsService{
			getSettingsFn: func(userID string) (*models.Settings, error) {
				return &models.Settings{UserID: userID, CurrencyCode: "EUR", CycleMonths: 3}, nil
			},
		}
		handler := NewSettingsHandler(settingsSvc, &mockAuditService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "GET", "/settings", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		settings := result["settings"].(map[string]interface{})
		if settings["currency_code"] != "EUR" {
			t.Errorf("expected EUR, got %v", settings["currency_code"])
		}
		if result["currency_symbol"] != "€" {
			t.Errorf("expected € symbol, got %v", result["currency_symbol"])
		}
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		settingsSvc := &mockSettingsService{
			updateSettingsFn: func(userID string, currencyCode *string, cycleMonths *int) (*models.Settings, error) {
				settings := models.DefaultSettings(userID)
				if cycleMonths != nil {
					settings.CycleMonths = *cycleMonths
				}
				return &settings, nil
			},
		}
		handler := NewSettingsHandler(settingsSvc, &mockAuditService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"cycle_months":3}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		settings := result["settings"].(map[string]interface{})
		if settings["cycle_months"].(float64) != 3 {
			t.Errorf("expected cycle_months 3, got %v", settings["cycle_months"])
		}
	})

	t.Run("returns 400 on disallowed cycle length", func(t *testing.T) {
		handler := NewSettingsHandler(&mockSettingsService{}, &mockAuditService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"cycle_months":5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when service rejects cycle length", func(t *testing.T) {
		settingsSvc := &mockSettingsService{
			updateSettingsFn: func(string, *string, *int) (*models.Settings, error) {
				return nil, apperrors.ErrInvalidCycleMonths
			},
		}
		handler := NewSettingsHandler(settingsSvc, &mockAuditService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"cycle_months":12}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CYCLE_MONTHS")
	})

	t.Run("returns 400 on malformed currency code", func(t *testing.T) {
		handler := NewSettingsHandler(&mockSettingsService{}, &mockAuditService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"currency_code":"12"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
