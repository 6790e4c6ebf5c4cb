package logger

import (
	"os"

	"github.com/caarlos0/env"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`    // debug, info, warn, error
	Format     string `env:"LOG_FORMAT" envDefault:"text"`   // text hoặc json
	Output     string `env:"LOG_OUTPUT" envDefault:"stdout"` // stdout, file, both
	LogDir     string `env:"LOG_DIR" envDefault:"./logs"`    // Thư mục chứa file log
	AppFile    string `env:"LOG_APP_FILE" envDefault:"app.log"`
	MaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`   // MB
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`  // Số file cũ giữ lại
	MaxAge     int    `env:"LOG_MAX_AGE" envDefault:"30"`     // Số ngày
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`  // Nén file cũ
}

// DefaultConfig trả về cấu hình logging đọc từ env, điều chỉnh theo GO_ENV
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		// Giữ mặc định khi parse lỗi, logger vẫn phải hoạt động được
		cfg = &LogConfig{Level: "info", Format: "text", Output: "stdout", LogDir: "./logs",
			AppFile: "app.log", MaxSize: 100, MaxBackups: 5, MaxAge: 30, Compress: true}
	}

	switch os.Getenv("GO_ENV") {
	case "production":
		if cfg.Format == "" {
			cfg.Format = "json"
		}
	case "test":
		cfg.Output = "stdout"
		cfg.Level = "error"
	}

	return cfg
}
