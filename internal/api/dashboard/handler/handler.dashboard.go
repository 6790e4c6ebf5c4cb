// Package dashboardhdl - Handler số liệu dashboard.
package dashboardhdl

import (
	basehdl "wifi_billing/internal/api/base/handler"
	dashboardsvc "wifi_billing/internal/api/dashboard/service"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler xử lý các endpoint tổng hợp số liệu
type DashboardHandler struct {
	DashboardService *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo DashboardHandler mới
func NewDashboardHandler(svc *dashboardsvc.DashboardService) *DashboardHandler {
	return &DashboardHandler{DashboardService: svc}
}

// HandleStats xử lý GET /dashboard/stats
func (h *DashboardHandler) HandleStats(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.DashboardService.Stats(c.Context())
		return basehdl.HandleResponse(c, stats, err)
	})
}

// HandleOverdue xử lý GET /dashboard/overdue
func (h *DashboardHandler) HandleOverdue(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		overdue, err := h.DashboardService.OverdueList(c.Context())
		return basehdl.HandleResponse(c, overdue, err)
	})
}
