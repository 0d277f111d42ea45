package models

import "time"

// AdminProfile is the back-office operator profile.
type AdminProfile struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminProfileInput is the validated payload for updating the profile.
type AdminProfileInput struct {
	Username  string `json:"username" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Bio       string `json:"bio" validate:"max=500"`
	Avatar    string `json:"avatar" validate:"max=500"`
}

// NotificationSettings controls which channels receive admin notifications.
type NotificationSettings struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
	SMS   bool `json:"sms"`
}

// SecuritySettings holds back-office security preferences.
// SessionTimeout is in minutes.
type SecuritySettings struct {
	TwoFactor      bool `json:"twoFactor"`
	SessionTimeout int  `json:"sessionTimeout" validate:"min=5,max=1440"`
}

// PreferenceSettings holds display preferences for the back office.
type PreferenceSettings struct {
	Language string `json:"language" validate:"oneof=en es fr de"`
	Timezone string `json:"timezone" validate:"oneof=UTC America/New_York America/Chicago America/Denver America/Los_Angeles"`
}

// AdminSettings groups all back-office settings.
type AdminSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Preferences   PreferenceSettings   `json:"preferences"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// AdminSettingsUpdate carries partial settings updates; nil sections are
// left untouched.
type AdminSettingsUpdate struct {
	Notifications *NotificationSettings `json:"notifications"`
	Security      *SecuritySettings     `json:"security" validate:"omitempty"`
	Preferences   *PreferenceSettings   `json:"preferences" validate:"omitempty"`
}
