// Package models - AuthUser thuộc domain auth.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các vai trò người dùng
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// AuthUser là người dùng đăng nhập hệ thống qua Google
type AuthUser struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	GoogleID  string             `json:"googleId" bson:"googleId"`
	AvatarURL string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Role      string             `json:"role" bson:"role"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	LastLogin int64              `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
