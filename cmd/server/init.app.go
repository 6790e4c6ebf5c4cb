package main

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authhdl "wifi_billing/internal/api/auth/handler"
	authrouter "wifi_billing/internal/api/auth/router"
	authsvc "wifi_billing/internal/api/auth/service"
	customerhdl "wifi_billing/internal/api/customer/handler"
	customerrouter "wifi_billing/internal/api/customer/router"
	customersvc "wifi_billing/internal/api/customer/service"
	dashboardhdl "wifi_billing/internal/api/dashboard/handler"
	dashboardrouter "wifi_billing/internal/api/dashboard/router"
	dashboardsvc "wifi_billing/internal/api/dashboard/service"
	invoicehdl "wifi_billing/internal/api/invoice/handler"
	invoicerouter "wifi_billing/internal/api/invoice/router"
	invoicesvc "wifi_billing/internal/api/invoice/service"
	"wifi_billing/internal/api/middleware"
	apirouter "wifi_billing/internal/api/router"
	schedulerhdl "wifi_billing/internal/api/scheduler/handler"
	schedulerrouter "wifi_billing/internal/api/scheduler/router"
	schedulersvc "wifi_billing/internal/api/scheduler/service"
	whatsapphdl "wifi_billing/internal/api/whatsapp/handler"
	whatsapprouter "wifi_billing/internal/api/whatsapp/router"
	whatsappsvc "wifi_billing/internal/api/whatsapp/service"
	"wifi_billing/internal/gateway"
	"wifi_billing/internal/global"
	"wifi_billing/internal/pdf"
)

// services gom các service đã wiring để dùng lại khi seed dữ liệu
type services struct {
	customers  *customersvc.CustomerService
	templates  *invoicesvc.TemplateService
	invoices   *invoicesvc.InvoiceService
	dispatch   *whatsappsvc.DispatchService
	dashboard  *dashboardsvc.DashboardService
	schedulers *schedulersvc.SchedulerService
	auth       *authsvc.AuthService
	whatsapp   *gateway.WhatsAppClient
}

// buildServices khởi tạo toàn bộ service với collection và cấu hình được inject
func (a *application) buildServices() *services {
	cols := global.MongoDB_ColNames

	customers := customersvc.NewCustomerService(a.db.Collection(cols.Customers))
	templates := invoicesvc.NewTemplateService(a.db.Collection(cols.InvoiceTemplates))

	generator := pdf.NewGenerator(
		pdf.NewWkhtmltopdfRenderer(a.cfg.WkhtmltopdfBin),
		pdf.NewChromiumRenderer(a.cfg.ChromiumEnabled),
	)
	invoices := invoicesvc.NewInvoiceService(a.db.Collection(cols.Invoices), templates, customers, generator, a.cfg.InvoicesDir)

	whatsapp := gateway.NewWhatsAppClient(a.cfg.WhatsApp_BaseURL)
	dispatch := whatsappsvc.NewDispatchService(invoices, customers, whatsapp)

	return &services{
		customers:  customers,
		templates:  templates,
		invoices:   invoices,
		dispatch:   dispatch,
		dashboard:  dashboardsvc.NewDashboardService(customers, invoices),
		schedulers: schedulersvc.NewSchedulerService(a.db.Collection(cols.Settings)),
		auth:       authsvc.NewAuthService(a.db.Collection(cols.AuthUsers), a.cfg.JwtSecret, a.cfg.GoogleClientID),
		whatsapp:   whatsapp,
	}
}

// buildRegisters tạo danh sách hàm đăng ký route cho tất cả các domain.
// Khi AUTH_ENABLED=true, các domain nghiệp vụ yêu cầu Bearer token; route auth luôn public.
func (a *application) buildRegisters(svcs *services) []apirouter.RegisterFunc {
	var protected []fiber.Handler
	if a.cfg.AuthEnabled {
		if a.cfg.JwtSecret == "" {
			logrus.Fatal("AUTH_ENABLED=true nhưng thiếu JWT_SECRET")
		}
		protected = []fiber.Handler{middleware.RequireAuth(svcs.auth)}
		logrus.Info("Auth middleware enabled")
	}

	return []apirouter.RegisterFunc{
		authrouter.NewRegister(authhdl.NewAuthHandler(svcs.auth)),
		customerrouter.NewRegister(customerhdl.NewCustomerHandler(svcs.customers), protected),
		invoicerouter.NewRegister(invoicehdl.NewInvoiceHandler(svcs.invoices), invoicehdl.NewTemplateHandler(svcs.templates), protected),
		whatsapprouter.NewRegister(whatsapphdl.NewWhatsAppHandler(svcs.whatsapp, svcs.dispatch), protected),
		dashboardrouter.NewRegister(dashboardhdl.NewDashboardHandler(svcs.dashboard), protected),
		schedulerrouter.NewRegister(schedulerhdl.NewSchedulerHandler(svcs.schedulers), protected),
	}
}
