// Package invoicesvc - Render nội dung hóa đơn: thay placeholder và sinh số hóa đơn.
package invoicesvc

import (
	"strings"
	"time"

	customermodels "wifi_billing/internal/api/customer/models"
	"wifi_billing/internal/utility"

	"github.com/google/uuid"
)

// GenerateInvoiceNumber sinh số hóa đơn dạng INV-YYYYMMDD-XXXXXXXX.
// Phần ngẫu nhiên lấy 8 ký tự hex đầu của UUID, xác suất trùng coi như
// không đáng kể nên không retry; index unique trên invoiceNumber chặn nốt
// trường hợp hiếm.
func GenerateInvoiceNumber(now time.Time) string {
	random := strings.ToUpper(uuid.NewString()[:8])
	return "INV-" + now.Format("20060102") + "-" + random
}

// BuildPlaceholders xây map giá trị thay thế cho template hóa đơn
func BuildPlaceholders(customer *customermodels.Customer, amount float64, dueDate string, invoiceNumber string, now time.Time) map[string]string {
	return map[string]string{
		"name":           customer.Name,
		"customer_id":    customer.CustomerID,
		"address":        customer.Address,
		"package":        customer.Package,
		"wifi_id":        customer.WifiID,
		"amount":         utility.FormatRupiah(amount),
		"due_date":       dueDate,
		"invoice_number": invoiceNumber,
		"date":           utility.FormatDateDMY(now),
	}
}

// RenderTemplate thay các placeholder dạng {{key}} trong template bằng giá trị.
// Placeholder không có trong map được giữ nguyên.
func RenderTemplate(htmlContent string, placeholders map[string]string) string {
	result := htmlContent
	for key, value := range placeholders {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
