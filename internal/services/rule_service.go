package services

import (
	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/models"
	"gorm.io/gorm"
)

// RuleService manages explicit block-list rules.
type RuleService struct {
	db *gorm.DB
}

func NewRuleService(db *gorm.DB) *RuleService {
	return &RuleService{db: db}
}

// List returns the caller's rules, newest first.
func (s *RuleService) List(userID uint) ([]models.BlockedRule, error) {
	rules := make([]models.BlockedRule, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *RuleService) Create(userID uint, req *dto.CreateRuleRequest) (*models.BlockedRule, error) {
	rule := models.BlockedRule{
		UserID:      userID,
		PhoneNumber: req.PhoneNumber,
		RuleName:    req.RuleName,
		IsWildcard:  req.IsWildcard,
	}
	if err := s.db.Create(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// Delete removes the rule if the caller owns it. Deleting someone
// else's rule (or a missing id) matches zero rows and is not an
// error, so callers cannot probe which rule ids exist.
func (s *RuleService) Delete(userID uint, ruleID uint) error {
	return s.db.Where("id = ? AND user_id = ?", ruleID, userID).
		Delete(&models.BlockedRule{}).Error
}
