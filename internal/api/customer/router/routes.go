// Package router đăng ký các route thuộc domain customer.
package router

import (
	"github.com/gofiber/fiber/v3"

	customerhdl "wifi_billing/internal/api/customer/handler"
	apirouter "wifi_billing/internal/api/router"
)

// NewRegister trả về hàm đăng ký route customer với middleware dùng chung
func NewRegister(h *customerhdl.CustomerHandler, middlewares []fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// POST /customers — tạo thuê bao
		// Path rỗng để match đúng /customers khi StrictRouting bật
		apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "", middlewares, h.HandleCreate)
		// GET /customers?q=&status= — tìm kiếm
		apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "", middlewares, h.HandleList)
		// POST /customers/import — import CSV/Excel
		apirouter.RegisterRouteWithMiddleware(v1, "/customers", "POST", "/import", middlewares, h.HandleImport)
		// GET /customers/:id
		apirouter.RegisterRouteWithMiddleware(v1, "/customers", "GET", "/:id", middlewares, h.HandleGetById)
		// PUT /customers/:id — partial update
		apirouter.RegisterRouteWithMiddleware(v1, "/customers", "PUT", "/:id", middlewares, h.HandleUpdate)
		// DELETE /customers/:id
		apirouter.RegisterRouteWithMiddleware(v1, "/customers", "DELETE", "/:id", middlewares, h.HandleDelete)

		return nil
	}
}
