package model

import "time"

// User is a bot user keyed by their Telegram ID.
type User struct {
	ID        int64     `json:"id"`
	Username  *string   `json:"username,omitempty"`
	FullName  *string   `json:"full_name,omitempty"`
	Subgroup  Subgroup  `json:"subgroup,omitempty"`
	Group     *string   `json:"group,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the identity data a messenger reports for a user.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// DisplayName prefers the full name, then the username.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return "студент"
}
