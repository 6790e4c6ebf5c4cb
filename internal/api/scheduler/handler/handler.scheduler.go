// Package schedulerhdl - Handler cấu hình lịch nhắc thanh toán.
package schedulerhdl

import (
	basehdl "wifi_billing/internal/api/base/handler"
	"wifi_billing/internal/api/scheduler/dto"
	schedulersvc "wifi_billing/internal/api/scheduler/service"

	"github.com/gofiber/fiber/v3"
)

// SchedulerHandler xử lý các endpoint cấu hình scheduler
type SchedulerHandler struct {
	SchedulerService *schedulersvc.SchedulerService
}

// NewSchedulerHandler tạo SchedulerHandler mới
func NewSchedulerHandler(svc *schedulersvc.SchedulerService) *SchedulerHandler {
	return &SchedulerHandler{SchedulerService: svc}
}

// HandleGetSettings xử lý GET /scheduler/settings
func (h *SchedulerHandler) HandleGetSettings(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		settings, err := h.SchedulerService.Get(c.Context())
		return basehdl.HandleResponse(c, settings, err)
	})
}

// HandleSetSettings xử lý POST /scheduler/settings
func (h *SchedulerHandler) HandleSetSettings(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.SchedulerSettingsInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		settings, err := h.SchedulerService.Set(c.Context(), input)
		return basehdl.HandleResponse(c, settings, err)
	})
}
