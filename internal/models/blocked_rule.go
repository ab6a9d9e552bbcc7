package models

import "time"

// BlockedRule is an explicit block-list entry. IsWildcard marks
// pattern rules; matching itself happens client-side in this demo.
type BlockedRule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	PhoneNumber string    `gorm:"size:32;not null" json:"phoneNumber"`
	RuleName    string    `gorm:"size:255;not null" json:"ruleName"`
	IsWildcard  bool      `gorm:"not null;default:false" json:"isWildcard"`
	CreatedAt   time.Time `json:"createdAt"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}
