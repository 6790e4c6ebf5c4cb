// Package authhdl - Handler đăng nhập và xác thực phiên.
package authhdl

import (
	"strings"

	authdto "wifi_billing/internal/api/auth/dto"
	authsvc "wifi_billing/internal/api/auth/service"
	basehdl "wifi_billing/internal/api/base/handler"
	"wifi_billing/internal/common"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler xử lý các endpoint xác thực
type AuthHandler struct {
	AuthService *authsvc.AuthService
}

// NewAuthHandler tạo AuthHandler mới
func NewAuthHandler(svc *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: svc}
}

// HandleGoogleLogin xử lý POST /auth/google/login
func (h *AuthHandler) HandleGoogleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(authdto.GoogleLoginInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		result, err := h.AuthService.GoogleLogin(c.Context(), input)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleVerify xử lý GET /auth/verify - kiểm tra token hiện tại còn hợp lệ không
func (h *AuthHandler) HandleVerify(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		authHeader := c.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" {
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		userID, err := h.AuthService.VerifyToken(parts[1])
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		user, err := h.AuthService.GetByIdHex(c.Context(), userID)
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
		}
		return basehdl.HandleResponse(c, user, nil)
	})
}
