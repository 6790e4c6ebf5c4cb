// Package router đăng ký các route thuộc domain scheduler.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "wifi_billing/internal/api/router"
	schedulerhdl "wifi_billing/internal/api/scheduler/handler"
)

// NewRegister trả về hàm đăng ký route scheduler với middleware dùng chung
func NewRegister(h *schedulerhdl.SchedulerHandler, middlewares []fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// GET /scheduler/settings
		apirouter.RegisterRouteWithMiddleware(v1, "/scheduler", "GET", "/settings", middlewares, h.HandleGetSettings)
		// POST /scheduler/settings
		apirouter.RegisterRouteWithMiddleware(v1, "/scheduler", "POST", "/settings", middlewares, h.HandleSetSettings)

		return nil
	}
}
