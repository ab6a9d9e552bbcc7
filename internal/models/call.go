package models

import "time"

// Call categories assigned by the screening workflow.
const (
	CategorySpam         = "spam"
	CategoryScam         = "scam"
	CategoryTelemarketer = "telemarketer"
	CategoryLegitimate   = "legitimate"
	CategoryUnknown      = "unknown"
)

// Call is a screened inbound call. Rows are immutable after insert.
type Call struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	PhoneNumber   string    `gorm:"size:32;not null" json:"phoneNumber"`
	CallerName    *string   `gorm:"size:255" json:"callerName"`
	Timestamp     time.Time `gorm:"not null;index" json:"timestamp"`
	RiskScore     int       `gorm:"not null;default:0" json:"riskScore"`
	Category      string    `gorm:"size:20;not null;default:'unknown'" json:"category"`
	Transcription *string   `gorm:"type:text" json:"transcription"`
	AIResponse    *string   `gorm:"type:text" json:"aiResponse"`
	Duration      *int      `json:"duration"`
	Blocked       bool      `gorm:"not null;default:false" json:"blocked"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
}
