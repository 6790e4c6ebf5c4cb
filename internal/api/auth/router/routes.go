// Package router đăng ký các route thuộc domain auth.
// Các route này luôn public, kể cả khi bật xác thực cho các domain khác.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "wifi_billing/internal/api/auth/handler"
	apirouter "wifi_billing/internal/api/router"
)

// NewRegister trả về hàm đăng ký route auth (không gắn middleware xác thực)
func NewRegister(h *authhdl.AuthHandler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// POST /auth/google/login
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/google/login", nil, h.HandleGoogleLogin)
		// GET /auth/verify
		apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/verify", nil, h.HandleVerify)

		return nil
	}
}
