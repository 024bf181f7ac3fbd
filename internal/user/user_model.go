package user

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Age      int    `json:"age"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:'user'"`
	Team     string `json:"team"` // name of the team the user joined, empty until join-team
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Rohan Sharma"`
	Email    string `json:"email" binding:"required,email" example:"rohan@example.com"`
	Age      int    `json:"age" binding:"omitempty,min=10,max=100" example:"24"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	// Role must not be supplied by the caller; registration creates regular
	// users only and the handler rejects any attempt to set it.
	Role string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"rohan@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type JoinTeamRequest struct {
	TeamName string `json:"team_name" binding:"required,min=3,max=50" example:"Street Strikers"`
}

type AuthResponse struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type ProfileResponse struct {
	UserID     uint      `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Age        int       `json:"age"`
	Role       string    `json:"role"`
	Team       string    `json:"team"`
	TotalScore int       `json:"total_score"`
	CreatedAt  time.Time `json:"created_at"`
}
