// Package invoicehdl - Handler hóa đơn: sinh, liệt kê, tải PDF.
package invoicehdl

import (
	"os"

	basehdl "wifi_billing/internal/api/base/handler"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicesvc "wifi_billing/internal/api/invoice/service"
	"wifi_billing/internal/common"

	"github.com/gofiber/fiber/v3"
)

// InvoiceHandler xử lý các thao tác hóa đơn
type InvoiceHandler struct {
	InvoiceService *invoicesvc.InvoiceService
}

// NewInvoiceHandler tạo InvoiceHandler mới
func NewInvoiceHandler(svc *invoicesvc.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{InvoiceService: svc}
}

// HandleGenerate xử lý POST /invoices/generate
func (h *InvoiceHandler) HandleGenerate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input invoicedto.GenerateInvoiceInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		result, err := h.InvoiceService.Generate(c.Context(), &input)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleList xử lý GET /invoices?customer_id=&status=
func (h *InvoiceHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		customerID := c.Query("customer_id")
		status := c.Query("status")

		invoices, err := h.InvoiceService.List(c.Context(), customerID, status)
		return basehdl.HandleResponse(c, invoices, err)
	})
}

// HandleDownload xử lý GET /invoices/download/:invoiceNumber — trả về file PDF
func (h *InvoiceHandler) HandleDownload(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		invoiceNumber := c.Params("invoiceNumber")

		invoice, err := h.InvoiceService.GetByNumber(c.Context(), invoiceNumber)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		// Bản ghi tồn tại nhưng file đã mất trên đĩa vẫn là 404
		if _, err := os.Stat(invoice.PdfPath); err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeDatabaseQuery,
				"File PDF không còn tồn tại", common.StatusNotFound, nil))
		}

		return c.Download(invoice.PdfPath, invoice.InvoiceNumber+".pdf")
	})
}
