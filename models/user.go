package models

import "time"

// UserProfile is the account profile as exposed by the user endpoint.
type UserProfile struct {
	UID         string     `json:"uid"`
	DisplayName string     `json:"display_name,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UserProfilePatch is a partial profile update.
type UserProfilePatch struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// UserSettings holds per-user presentation preferences.
type UserSettings struct {
	UID            string    `json:"uid"`
	FlipAnimation  bool      `json:"flip_animation"`
	SimpleCardMode bool      `json:"simple_card_mode"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserSettingsPatch is a partial settings update.
type UserSettingsPatch struct {
	FlipAnimation  *bool `json:"flip_animation,omitempty"`
	SimpleCardMode *bool `json:"simple_card_mode,omitempty"`
}
