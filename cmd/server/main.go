package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"wifi_billing/internal/database"
	"wifi_billing/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình (LOG_LEVEL, LOG_FORMAT, ...)
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo cấu hình, kết nối database và index
	app := newApplication()
	defer database.CloseInstance(app.client)

	// Khởi tạo các service với collection được inject
	svcs := app.buildServices()

	// Seed dữ liệu mặc định (template hóa đơn)
	initDefaultData(svcs.templates)

	// Khởi tạo Fiber app và chạy server trên main thread
	fiberApp := app.initFiberApp(svcs)

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  app.cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := fiberApp.Listen(app.cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}
