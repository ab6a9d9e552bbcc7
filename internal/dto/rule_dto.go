package dto

import "github.com/callshield/callshield-backend/internal/models"

type CreateRuleRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	RuleName    string `json:"ruleName"`
	IsWildcard  bool   `json:"isWildcard"`
}

type RuleResponse struct {
	Success bool               `json:"success"`
	Rule    models.BlockedRule `json:"rule"`
}
