package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	cronTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("iso_date", validateISODate)
	_ = Validate.RegisterValidation("cron_time", validateCronTime)
}

// validateNoXSS kiểm tra XSS trên các field text tự do
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateISODate kiểm tra chuỗi ngày dạng YYYY-MM-DD.
// Ngày hạn thanh toán được lưu và so sánh dưới dạng chuỗi ISO nên format phải chuẩn.
func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // rỗng = optional, đã có required riêng khi bắt buộc
	}
	return isoDateRegex.MatchString(value)
}

// validateCronTime kiểm tra chuỗi giờ dạng HH:MM (24h)
func validateCronTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return cronTimeRegex.MatchString(value)
}
