package dto

import "wifi_billing/internal/api/auth/models"

// GoogleLoginInput là dữ liệu đầu vào khi đăng nhập bằng Google ID token
type GoogleLoginInput struct {
	Credential string `json:"credential" validate:"required"`
}

// LoginResult là kết quả đăng nhập thành công
type LoginResult struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}
