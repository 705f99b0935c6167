package dbmysql

import (
	"time"
)

// Profile is the persisted identity row: credentials plus the editable
// profile fields the client renders.
type Profile struct {
	UserID       int64     `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	FirstName    string    `gorm:"column:first_name;size:100" json:"first_name"`
	LastName     string    `gorm:"column:last_name;size:100" json:"last_name"`
	AvatarURL    string    `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
