package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterStudentDTO struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	RollNumber string `json:"roll_number"`
	Branch     string `json:"branch"`
}

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       Role      `json:"role"`
	RollNumber *string   `json:"roll_number,omitempty"`
	Branch     *string   `json:"branch,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
