// Package middleware chứa các middleware dùng chung cho API.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authsvc "wifi_billing/internal/api/auth/service"
	basehdl "wifi_billing/internal/api/base/handler"
	"wifi_billing/internal/common"
	"wifi_billing/internal/logger"
)

// Các key lưu thông tin người dùng vào context của request
const (
	LocalUserID   = "userId"
	LocalUserRole = "userRole"
)

// RequireAuth kiểm tra Bearer token trên header Authorization.
// Token hợp lệ thì gắn userId và userRole vào Locals cho handler phía sau.
func RequireAuth(authService *authsvc.AuthService) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("RequireAuth: Thiếu header Authorization")
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
		}

		userID, err := authService.VerifyToken(parts[1])
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		user, err := authService.GetByIdHex(c.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			}
			return basehdl.HandleResponse(c, nil, err)
		}
		if !user.IsActive {
			return basehdl.HandleResponse(c, nil,
				common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa", common.StatusForbidden, nil))
		}

		c.Locals(LocalUserID, user.ID.Hex())
		c.Locals(LocalUserRole, user.Role)
		return c.Next()
	}
}
