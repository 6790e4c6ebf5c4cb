// Package router đăng ký các route thuộc domain whatsapp.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "wifi_billing/internal/api/router"
	whatsapphdl "wifi_billing/internal/api/whatsapp/handler"
)

// NewRegister trả về hàm đăng ký route whatsapp với middleware dùng chung
func NewRegister(h *whatsapphdl.WhatsAppHandler, middlewares []fiber.Handler) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		// GET /whatsapp/status — trạng thái kết nối gateway
		apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "GET", "/status", middlewares, h.HandleStatus)
		// GET /whatsapp/qr — mã QR ghép nối
		apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "GET", "/qr", middlewares, h.HandleQR)
		// POST /whatsapp/reconnect — khởi tạo lại phiên
		apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "POST", "/reconnect", middlewares, h.HandleReconnect)
		// POST /whatsapp/send-invoice?invoice_id= — gửi một hóa đơn
		apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "POST", "/send-invoice", middlewares, h.HandleSendInvoice)
		// POST /whatsapp/bulk-send — sinh + gửi hàng loạt, tuần tự
		apirouter.RegisterRouteWithMiddleware(v1, "/whatsapp", "POST", "/bulk-send", middlewares, h.HandleBulkSend)

		return nil
	}
}
