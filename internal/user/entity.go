package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	Phone        string    `gorm:"type:text" json:"phone"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null" json:"role"`

	// Student profile fields, empty for admins.
	RollNumber *string `gorm:"type:text" json:"roll_number,omitempty"`
	Branch     *string `gorm:"type:text" json:"branch,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
