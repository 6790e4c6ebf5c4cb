package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"wifi_billing/config"
	"wifi_billing/internal/database"
	"wifi_billing/internal/global"
)

// application giữ cấu hình và kết nối database cho toàn bộ vòng đời server.
// Các service/handler được khởi tạo từ đây qua constructor, không dùng biến toàn cục.
type application struct {
	cfg    *config.Configuration
	client *mongo.Client
	db     *mongo.Database
}

// newApplication khởi tạo validator, cấu hình và kết nối MongoDB
func newApplication() *application {
	initValidator()

	cfg := initConfig()
	client := initDatabaseMongoDB(cfg)

	return &application{
		cfg:    cfg,
		client: client,
		db:     client.Database(cfg.MongoDB_DBName),
	}
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, iso_date, cron_time)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() *config.Configuration {
	cfg := config.NewConfig()
	if cfg == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
	return cfg
}

// Hàm khởi tạo kết nối database
func initDatabaseMongoDB(cfg *config.Configuration) *mongo.Client {
	client, err := database.GetInstance(cfg)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index cho các collection
	if err := database.CreateBillingIndexes(context.TODO(), client.Database(cfg.MongoDB_DBName)); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")

	return client
}
