package models

import "testing"

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"INR", "₹"},
		{"XYZ", "$"},
		{"", "$"},
	}
	for _, tt := range tests {
		if got := CurrencySymbol(tt.code); got != tt.want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestValidCycleMonths(t *testing.T) {
	for _, n := range AllowedCycleMonths {
		if !ValidCycleMonths(n) {
			t.Errorf("ValidCycleMonths(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, -1, 4, 5, 7, 13, 24} {
		if ValidCycleMonths(n) {
			t.Errorf("ValidCycleMonths(%d) = true, want false", n)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings("user-1")
	if settings.UserID != "user-1" {
		t.Errorf("UserID = %q", settings.UserID)
	}
	if settings.CurrencyCode != DefaultCurrencyCode {
		t.Errorf("CurrencyCode = %q", settings.CurrencyCode)
	}
	if settings.CycleMonths != DefaultCycleMonths {
		t.Errorf("CycleMonths = %d", settings.CycleMonths)
	}
}
