package models

// Protection levels; stored but not consumed by any decision logic.
const (
	ProtectionLow    = "low"
	ProtectionMedium = "medium"
	ProtectionHigh   = "high"
)

// DefaultAutoBlockThreshold marks calls as blocked when their risk
// score reaches it, until the user picks a different value.
const DefaultAutoBlockThreshold = 70

// UserSettings holds per-user screening preferences, one row per user.
// The row is materialized with defaults on first login or first read.
type UserSettings struct {
	ID                 uint    `gorm:"primaryKey" json:"-"`
	UserID             uint    `gorm:"not null;uniqueIndex" json:"-"`
	ScreeningEnabled   bool    `gorm:"not null;default:true" json:"screeningEnabled"`
	ProtectionLevel    string  `gorm:"size:20;not null;default:'medium'" json:"protectionLevel"`
	QuietHoursStart    *string `gorm:"size:16" json:"quietHoursStart"`
	QuietHoursEnd      *string `gorm:"size:16" json:"quietHoursEnd"`
	AutoBlockThreshold int     `gorm:"not null;default:70" json:"autoBlockThreshold"`
	User               User    `gorm:"foreignKey:UserID" json:"-"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultSettings returns the row inserted for a brand-new user.
func DefaultSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:             userID,
		ScreeningEnabled:   true,
		ProtectionLevel:    ProtectionMedium,
		AutoBlockThreshold: DefaultAutoBlockThreshold,
	}
}
