package models

import (
	"time"
)

// Member represents a member profile row.
//
// Login and email are unique only among active rows: the unique indexes
// are partial (WHERE deleted = false), so a soft-deleted member's login
// and email can be reused by a new member. Rows are never hard-deleted.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Login     string    `gorm:"not null;index:uq_members_login_active,unique,where:deleted = false" json:"login"`
	AvatarURL *string   `json:"avatar_url"`
	Followers int       `gorm:"not null;default:0" json:"followers"`
	Following int       `gorm:"not null;default:0" json:"following"`
	Title     *string   `json:"title"`
	Email     string    `gorm:"not null;index:uq_members_email_active,unique,where:deleted = false" json:"email"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
