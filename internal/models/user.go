package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// User roles. Role is immutable after creation.
const (
	RoleOrdinary = "ordinary"
	RoleShelter  = "shelter"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Username   string `json:"username" gorm:"uniqueIndex;size:150"`
	Password   string `json:"-"` // Store hashed password, ignore for JSON serialization
	Role       string `json:"role" gorm:"size:10;default:ordinary"`
}

// IsShelter reports whether the account has shelter-level privileges.
func (u *User) IsShelter() bool {
	return u.Role == RoleShelter
}

type RegisterRequest struct {
	Username         string `json:"username" validate:"required,min=3,max=150"`
	Password         string `json:"password" validate:"required,min=6"`
	Role             string `json:"role" validate:"required,oneof=ordinary shelter"`
	RegistrationCode string `json:"registration_code,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
