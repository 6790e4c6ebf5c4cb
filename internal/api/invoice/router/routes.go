// Package router đăng ký các route thuộc domain invoice: templates + invoices.
package router

import (
	"github.com/gofiber/fiber/v3"

	invoicehdl "wifi_billing/internal/api/invoice/handler"
	apirouter "wifi_billing/internal/api/router"
)

// NewRegister trả về hàm đăng ký route invoice/template với middleware dùng chung
func NewRegister(invoiceHandler *invoicehdl.InvoiceHandler, templateHandler *invoicehdl.TemplateHandler, middlewares []fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// POST /templates — tạo template (isDefault=true sẽ bỏ cờ trên các template khác)
		// Path rỗng để match đúng /templates khi StrictRouting bật
		apirouter.RegisterRouteWithMiddleware(v1, "/templates", "POST", "", middlewares, templateHandler.HandleCreate)
		// GET /templates
		apirouter.RegisterRouteWithMiddleware(v1, "/templates", "GET", "", middlewares, templateHandler.HandleList)
		// GET /templates/:id
		apirouter.RegisterRouteWithMiddleware(v1, "/templates", "GET", "/:id", middlewares, templateHandler.HandleGetById)
		// DELETE /templates/:id
		apirouter.RegisterRouteWithMiddleware(v1, "/templates", "DELETE", "/:id", middlewares, templateHandler.HandleDelete)

		// POST /invoices/generate — sinh hóa đơn + render PDF
		apirouter.RegisterRouteWithMiddleware(v1, "/invoices", "POST", "/generate", middlewares, invoiceHandler.HandleGenerate)
		// GET /invoices?customer_id=&status=
		apirouter.RegisterRouteWithMiddleware(v1, "/invoices", "GET", "", middlewares, invoiceHandler.HandleList)
		// GET /invoices/download/:invoiceNumber — trả file PDF
		apirouter.RegisterRouteWithMiddleware(v1, "/invoices", "GET", "/download/:invoiceNumber", middlewares, invoiceHandler.HandleDownload)

		return nil
	}
}
