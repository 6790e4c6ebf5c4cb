// Package whatsapphdl - Handler gateway WhatsApp và gửi hóa đơn.
package whatsapphdl

import (
	basehdl "wifi_billing/internal/api/base/handler"
	whatsappdto "wifi_billing/internal/api/whatsapp/dto"
	whatsappsvc "wifi_billing/internal/api/whatsapp/service"
	"wifi_billing/internal/common"
	"wifi_billing/internal/gateway"

	"github.com/gofiber/fiber/v3"
)

// WhatsAppHandler xử lý trạng thái gateway và dispatch hóa đơn
type WhatsAppHandler struct {
	Gateway  *gateway.WhatsAppClient
	Dispatch *whatsappsvc.DispatchService
}

// NewWhatsAppHandler tạo WhatsAppHandler mới
func NewWhatsAppHandler(gw *gateway.WhatsAppClient, dispatch *whatsappsvc.DispatchService) *WhatsAppHandler {
	return &WhatsAppHandler{Gateway: gw, Dispatch: dispatch}
}

// HandleStatus xử lý GET /whatsapp/status — không bao giờ lỗi,
// gateway chết trả về connected=false
func (h *WhatsAppHandler) HandleStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		status := h.Gateway.Status(c.Context())
		return basehdl.HandleResponse(c, status, nil)
	})
}

// HandleQR xử lý GET /whatsapp/qr — lấy mã QR ghép nối phiên
func (h *WhatsAppHandler) HandleQR(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		body, err := h.Gateway.QR(c.Context())
		return basehdl.HandleResponse(c, body, err)
	})
}

// HandleReconnect xử lý POST /whatsapp/reconnect
func (h *WhatsAppHandler) HandleReconnect(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		body, err := h.Gateway.Reconnect(c.Context())
		return basehdl.HandleResponse(c, body, err)
	})
}

// HandleSendInvoice xử lý POST /whatsapp/send-invoice?invoice_id=
func (h *WhatsAppHandler) HandleSendInvoice(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		invoiceID := c.Query("invoice_id")
		if invoiceID == "" {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
				"Thiếu tham số invoice_id", common.StatusBadRequest, nil))
		}

		invoice, err := h.Dispatch.SendOne(c.Context(), invoiceID)
		return basehdl.HandleResponse(c, invoice, err)
	})
}

// HandleBulkSend xử lý POST /whatsapp/bulk-send
func (h *WhatsAppHandler) HandleBulkSend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input whatsappdto.BulkSendInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		results := h.Dispatch.BulkSend(c.Context(), &input)
		return basehdl.HandleResponse(c, results, nil)
	})
}
