// Package invoicesvc - Test sinh số hóa đơn và thay placeholder.
package invoicesvc

import (
	"regexp"
	"strings"
	"testing"
	"time"

	customermodels "wifi_billing/internal/api/customer/models"
)

func TestGenerateInvoiceNumber_Format(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	number := GenerateInvoiceNumber(now)

	pattern := regexp.MustCompile(`^INV-20240315-[0-9A-F]{8}$`)
	if !pattern.MatchString(number) {
		t.Errorf("số hóa đơn %q không đúng định dạng INV-YYYYMMDD-XXXXXXXX", number)
	}
}

func TestGenerateInvoiceNumber_Unique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := GenerateInvoiceNumber(now)
		if seen[n] {
			t.Fatalf("số hóa đơn trùng: %s", n)
		}
		seen[n] = true
	}
}

func TestBuildPlaceholders(t *testing.T) {
	customer := &customermodels.Customer{
		Name:       "Budi Santoso",
		CustomerID: "CUST001",
		Address:    "Jl. Merdeka 1",
		Package:    "Paket 20Mbps",
		WifiID:     "WIFI001",
	}
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	values := BuildPlaceholders(customer, 150000, "2024-04-01", "INV-20240315-ABCDEF01", now)

	want := map[string]string{
		"name":           "Budi Santoso",
		"customer_id":    "CUST001",
		"address":        "Jl. Merdeka 1",
		"package":        "Paket 20Mbps",
		"wifi_id":        "WIFI001",
		"amount":         "Rp 150,000",
		"due_date":       "2024-04-01",
		"invoice_number": "INV-20240315-ABCDEF01",
		"date":           "15/03/2024",
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("placeholder %s = %q, muốn %q", k, values[k], v)
		}
	}
	if len(values) != len(want) {
		t.Errorf("số placeholder = %d, muốn %d", len(values), len(want))
	}
}

func TestRenderTemplate(t *testing.T) {
	html := "<p>Halo {{name}}, tagihan {{amount}} đến hạn {{due_date}}. Mã {{name}}.</p>"
	values := map[string]string{
		"name":     "Budi",
		"amount":   "Rp 150,000",
		"due_date": "2024-04-01",
	}

	got := RenderTemplate(html, values)
	if strings.Contains(got, "{{") {
		t.Errorf("vẫn còn placeholder chưa thay: %q", got)
	}
	if !strings.Contains(got, "Halo Budi") || !strings.Contains(got, "Mã Budi") {
		t.Errorf("placeholder lặp lại phải được thay tất cả: %q", got)
	}
}

func TestRenderTemplate_UnknownPlaceholderKept(t *testing.T) {
	// Placeholder không có giá trị thì giữ nguyên trong HTML
	got := RenderTemplate("Xin chào {{unknown}}", map[string]string{"name": "Budi"})
	if got != "Xin chào {{unknown}}" {
		t.Errorf("placeholder lạ phải giữ nguyên, nhận %q", got)
	}
}
