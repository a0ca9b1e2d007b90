package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID             uint      `gorm:"primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	PasswordRecord string    `gorm:"not null"`
	Role           string    `gorm:"not null;default:member"`
	DisplayName    string    `gorm:"not null;default:''"`
	CreatedAt      time.Time `gorm:"not null"`
}

// Label is the name shown in reports and CLI output. Falls back to the
// username when no display name was set.
func (user User) Label() string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Username
}

func (user User) IsAdmin() bool {
	return user.Role == RoleAdmin
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
