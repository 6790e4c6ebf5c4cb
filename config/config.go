package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu, gateway WhatsApp và renderer PDF
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                 // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`            // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"wifi_billing"`   // Tên cơ sở dữ liệu
	MongoDB_MaxPoolSize   uint64 `env:"MONGODB_MAX_POOL_SIZE" envDefault:"20"`      // Số connection tối đa trong pool
	MongoDB_TimeoutSec    int    `env:"MONGODB_TIMEOUT_SEC" envDefault:"10"`        // Timeout kết nối/ping (giây)
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`                // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`  // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`            // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`          // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`       // Bật/tắt rate limiting
	// WhatsApp gateway (microservice bên ngoài)
	WhatsApp_BaseURL string `env:"WA_SERVICE_URL" envDefault:"http://localhost:3001"` // Base URL của gateway WhatsApp
	// Invoice rendering
	InvoicesDir     string `env:"INVOICES_DIR" envDefault:"./invoices"`          // Thư mục lưu file HTML/PDF hóa đơn
	WkhtmltopdfBin  string `env:"WKHTMLTOPDF_BIN" envDefault:"wkhtmltopdf"`      // Đường dẫn binary wkhtmltopdf
	ChromiumEnabled bool   `env:"CHROMIUM_FALLBACK_ENABLED" envDefault:"true"`   // Bật fallback render bằng headless Chromium
	// Auth (Google sign-in + JWT)
	AuthEnabled    bool   `env:"AUTH_ENABLED" envDefault:"false"` // Bật middleware xác thực cho API
	JwtSecret      string `env:"JWT_SECRET" envDefault:""`        // Bí mật JWT (bắt buộc khi AUTH_ENABLED=true)
	GoogleClientID string `env:"GOOGLE_CLIENT_ID" envDefault:""`  // Client ID dùng để verify Google ID token
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
