package dto

// UpdateSettingsRequest is a partial update: nil fields are left
// unchanged.
type UpdateSettingsRequest struct {
	ScreeningEnabled   *bool   `json:"screeningEnabled"`
	ProtectionLevel    *string `json:"protectionLevel"`
	QuietHoursStart    *string `json:"quietHoursStart"`
	QuietHoursEnd      *string `json:"quietHoursEnd"`
	AutoBlockThreshold *int    `json:"autoBlockThreshold"`
}

type SettingsResponse struct {
	ScreeningEnabled   bool    `json:"screeningEnabled"`
	ProtectionLevel    string  `json:"protectionLevel"`
	QuietHoursStart    *string `json:"quietHoursStart"`
	QuietHoursEnd      *string `json:"quietHoursEnd"`
	AutoBlockThreshold int     `json:"autoBlockThreshold"`
}
