package services

import (
	"errors"

	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/models"
	"gorm.io/gorm"
)

// SettingsService manages per-user screening preferences.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the caller's settings, materializing the default row on
// first access instead of failing.
func (s *SettingsService) Get(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultSettings(userID)
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update applies only the supplied fields; nil fields keep their
// stored value. An empty request is a no-op.
func (s *SettingsService) Update(userID uint, req *dto.UpdateSettingsRequest) error {
	updates := map[string]interface{}{}
	if req.ScreeningEnabled != nil {
		updates["screening_enabled"] = *req.ScreeningEnabled
	}
	if req.ProtectionLevel != nil {
		updates["protection_level"] = *req.ProtectionLevel
	}
	if req.QuietHoursStart != nil {
		updates["quiet_hours_start"] = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		updates["quiet_hours_end"] = *req.QuietHoursEnd
	}
	if req.AutoBlockThreshold != nil {
		updates["auto_block_threshold"] = *req.AutoBlockThreshold
	}
	if len(updates) == 0 {
		return nil
	}

	return s.db.Model(&models.UserSettings{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
