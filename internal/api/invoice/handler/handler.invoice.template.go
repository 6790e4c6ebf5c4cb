// Package invoicehdl - Handler template hóa đơn.
package invoicehdl

import (
	basehdl "wifi_billing/internal/api/base/handler"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicesvc "wifi_billing/internal/api/invoice/service"

	"github.com/gofiber/fiber/v3"
)

// TemplateHandler xử lý CRUD template hóa đơn
type TemplateHandler struct {
	TemplateService *invoicesvc.TemplateService
}

// NewTemplateHandler tạo TemplateHandler mới
func NewTemplateHandler(svc *invoicesvc.TemplateService) *TemplateHandler {
	return &TemplateHandler{TemplateService: svc}
}

// HandleCreate xử lý POST /templates
func (h *TemplateHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input invoicedto.TemplateCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		tpl, err := h.TemplateService.Create(c.Context(), &input)
		return basehdl.HandleResponse(c, tpl, err)
	})
}

// HandleList xử lý GET /templates
func (h *TemplateHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		templates, err := h.TemplateService.List(c.Context())
		return basehdl.HandleResponse(c, templates, err)
	})
}

// HandleGetById xử lý GET /templates/:id
func (h *TemplateHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		tpl, err := h.TemplateService.GetById(c.Context(), c.Params("id"))
		return basehdl.HandleResponse(c, tpl, err)
	})
}

// HandleDelete xử lý DELETE /templates/:id
func (h *TemplateHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if err := h.TemplateService.Delete(c.Context(), c.Params("id")); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}
