// Package customerhdl - Handler thuê bao WiFi.
package customerhdl

import (
	basehdl "wifi_billing/internal/api/base/handler"
	customerdto "wifi_billing/internal/api/customer/dto"
	customersvc "wifi_billing/internal/api/customer/service"
	"wifi_billing/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CustomerHandler xử lý CRUD và import thuê bao
type CustomerHandler struct {
	CustomerService *customersvc.CustomerService
}

// NewCustomerHandler tạo CustomerHandler mới
func NewCustomerHandler(svc *customersvc.CustomerService) *CustomerHandler {
	return &CustomerHandler{CustomerService: svc}
}

// HandleCreate xử lý POST /customers
func (h *CustomerHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.CustomerCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		customer, err := h.CustomerService.Create(c.Context(), &input)
		return basehdl.HandleResponse(c, customer, err)
	})
}

// HandleList xử lý GET /customers?q=&status=
func (h *CustomerHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		q := c.Query("q")
		status := c.Query("status")

		customers, err := h.CustomerService.List(c.Context(), q, status)
		return basehdl.HandleResponse(c, customers, err)
	})
}

// HandleGetById xử lý GET /customers/:id
func (h *CustomerHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		customer, err := h.CustomerService.GetById(c.Context(), c.Params("id"))
		return basehdl.HandleResponse(c, customer, err)
	})
}

// HandleUpdate xử lý PUT /customers/:id (partial update)
func (h *CustomerHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input customerdto.CustomerUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		customer, err := h.CustomerService.Update(c.Context(), c.Params("id"), &input)
		return basehdl.HandleResponse(c, customer, err)
	})
}

// HandleDelete xử lý DELETE /customers/:id
func (h *CustomerHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		if err := h.CustomerService.Delete(c.Context(), c.Params("id")); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}

// HandleImport xử lý POST /customers/import (multipart file CSV/Excel)
func (h *CustomerHandler) HandleImport(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
				"Thiếu file import trong form field 'file'", common.StatusBadRequest, nil))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput,
				"Không mở được file upload", common.StatusBadRequest, nil))
		}
		defer file.Close()

		result, err := h.CustomerService.Import(c.Context(), fileHeader.Filename, file)
		return basehdl.HandleResponse(c, result, err)
	})
}
