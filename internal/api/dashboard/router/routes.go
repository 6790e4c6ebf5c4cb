// Package router đăng ký các route thuộc domain dashboard.
package router

import (
	"github.com/gofiber/fiber/v3"

	dashboardhdl "wifi_billing/internal/api/dashboard/handler"
	apirouter "wifi_billing/internal/api/router"
)

// NewRegister trả về hàm đăng ký route dashboard với middleware dùng chung
func NewRegister(h *dashboardhdl.DashboardHandler, middlewares []fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// GET /dashboard/stats
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", middlewares, h.HandleStats)
		// GET /dashboard/overdue
		apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/overdue", middlewares, h.HandleOverdue)

		return nil
	}
}
