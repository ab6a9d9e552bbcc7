package models

import "time"

// User is created on first login; demo mode has no credentials.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	DisplayName string    `gorm:"size:255" json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
