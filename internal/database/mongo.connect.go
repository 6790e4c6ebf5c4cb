package database

import (
	"context"
	"fmt"
	"time"

	"wifi_billing/config"
	"wifi_billing/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetInstance kết nối tới MongoDB theo cấu hình và ping kiểm tra trước khi trả về client.
// Pool size và timeout lấy từ config (MONGODB_MAX_POOL_SIZE, MONGODB_TIMEOUT_SEC).
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("database connection URL is empty")
	}

	timeout := time.Duration(c.MongoDB_TimeoutSec) * time.Second
	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetMaxPoolSize(c.MongoDB_MaxPoolSize).
		SetConnectTimeout(timeout).
		SetSocketTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping để phát hiện URI sai ngay lúc khởi động thay vì ở request đầu tiên
	ctxPing, cancelPing := context.WithTimeout(context.Background(), timeout)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.GetAppLogger().WithField("database", c.MongoDB_DBName).
		Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB khi server dừng.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
