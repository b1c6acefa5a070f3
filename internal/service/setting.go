package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lpg-backoffice/internal/database/models"
	apperrors "lpg-backoffice/internal/errors"
	"lpg-backoffice/internal/logger"
	"lpg-backoffice/internal/repository"
	"lpg-backoffice/internal/tenant"
)

// Known setting keys
const (
	SettingBusinessName      = "business_name"
	SettingGSTNumber         = "gst_number"
	SettingTaxPercent        = "tax_percent"
	SettingCurrency          = "currency"
	SettingLowStockThreshold = "low_stock_threshold"
	SettingAutoBackup        = "auto_backup"
)

// DefaultSettings returns the value of every known key before a tenant changes it
func DefaultSettings() map[string]string {
	return map[string]string{
		SettingBusinessName:      "",
		SettingGSTNumber:         "",
		SettingTaxPercent:        "5",
		SettingCurrency:          "INR",
		SettingLowStockThreshold: "10",
		SettingAutoBackup:        "true",
	}
}

// SettingService handles per-tenant settings
type SettingService struct {
	repo repository.SettingRepositoryInterface
}

// NewSettingService creates a new setting service
func NewSettingService(repo repository.SettingRepositoryInterface) *SettingService {
	return &SettingService{repo: repo}
}

// GetSettings returns stored values merged over the defaults. A failed lookup falls back to defaults.
func (s *SettingService) GetSettings(ctx context.Context, scope tenant.Scope) map[string]string {
	settings := DefaultSettings()
	stored, err := s.repo.List(ctx, scope)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("failed to load settings, using defaults")
		return settings
	}
	for _, st := range stored {
		if _, known := settings[st.Key]; known {
			settings[st.Key] = st.Value
		}
	}
	return settings
}

// UpdateSettings upserts the given keys and returns the merged result
func (s *SettingService) UpdateSettings(ctx context.Context, scope tenant.Scope, values map[string]string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, apperrors.NewValidationError("settings", "no settings given")
	}
	defaults := DefaultSettings()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	records := make([]models.Setting, 0, len(values))
	for _, key := range keys {
		if _, known := defaults[key]; !known {
			return nil, apperrors.NewValidationError(key, "unknown setting")
		}
		value := strings.TrimSpace(values[key])
		if err := validateSetting(key, value); err != nil {
			return nil, err
		}
		record := models.Setting{Key: key, Value: value}
		if err := scope.Stamp(&record.AdminID); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := s.repo.Upsert(ctx, records); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	logger.WithContext(ctx).WithField("keys", keys).Info("settings updated")
	return s.GetSettings(ctx, scope), nil
}

func validateSetting(key, value string) error {
	switch key {
	case SettingTaxPercent:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < 0 || v > 100 {
			return apperrors.NewValidationError(key, "must be a number between 0 and 100")
		}
	case SettingLowStockThreshold:
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			return apperrors.NewValidationError(key, "must be a non-negative integer")
		}
	case SettingAutoBackup:
		if _, err := strconv.ParseBool(value); err != nil {
			return apperrors.NewValidationError(key, "must be true or false")
		}
	case SettingCurrency:
		if len(value) != 3 {
			return apperrors.NewValidationError(key, "must be a 3 letter currency code")
		}
	}
	if len(value) > 500 {
		return apperrors.NewValidationError(key, "value too long")
	}
	return nil
}

// Int returns an integer setting, falling back to its default when unparsable
func (s *SettingService) Int(ctx context.Context, scope tenant.Scope, key string) int {
	if v, err := strconv.Atoi(s.GetSettings(ctx, scope)[key]); err == nil {
		return v
	}
	v, _ := strconv.Atoi(DefaultSettings()[key])
	return v
}

// Float returns a numeric setting, falling back to its default when unparsable
func (s *SettingService) Float(ctx context.Context, scope tenant.Scope, key string) float64 {
	if v, err := strconv.ParseFloat(s.GetSettings(ctx, scope)[key], 64); err == nil {
		return v
	}
	v, _ := strconv.ParseFloat(DefaultSettings()[key], 64)
	return v
}

// Bool returns a boolean setting, falling back to its default when unparsable
func (s *SettingService) Bool(ctx context.Context, scope tenant.Scope, key string) bool {
	if v, err := strconv.ParseBool(s.GetSettings(ctx, scope)[key]); err == nil {
		return v
	}
	v, _ := strconv.ParseBool(DefaultSettings()[key])
	return v
}
