// Package customersvc - Test parse file import (header bắt buộc, số dòng lỗi).
package customersvc

import (
	"errors"
	"strings"
	"testing"

	"wifi_billing/internal/common"
)

const importHeader = "customer_id,name,address,package,start_date,next_due_date,phone_whatsapp,wifi_id"

func TestParseImportFile_CSV(t *testing.T) {
	data := importHeader + "\n" +
		"CUST001,Budi,Jl. Merdeka 1,Paket 20Mbps,2024-01-01,2024-02-01,6281234567890,WIFI001\n" +
		"CUST002,Siti,Jl. Sudirman 2,Paket 50Mbps,2024-01-15,2024-02-15,6289876543210,WIFI002\n"

	rows, err := ParseImportFile("customers.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseImportFile lỗi: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("số dòng = %d, muốn 2", len(rows))
	}

	// Dòng dữ liệu đầu tiên là dòng 2 trong file (dòng 1 là header)
	if rows[0].Line != 2 || rows[1].Line != 3 {
		t.Errorf("Line = %d, %d; muốn 2, 3", rows[0].Line, rows[1].Line)
	}
	if rows[0].Values["customer_id"] != "CUST001" {
		t.Errorf("customer_id = %q, muốn CUST001", rows[0].Values["customer_id"])
	}
	if rows[1].Values["wifi_id"] != "WIFI002" {
		t.Errorf("wifi_id = %q, muốn WIFI002", rows[1].Values["wifi_id"])
	}
}

func TestParseImportFile_HeaderTrimAndLowercase(t *testing.T) {
	data := "Customer_ID, Name ,ADDRESS,package,start_date,next_due_date,phone_whatsapp,wifi_id\n" +
		"CUST001, Budi ,Jl. Merdeka 1,Paket,2024-01-01,2024-02-01,628123,WIFI001\n"

	rows, err := ParseImportFile("customers.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("header viết hoa phải được chấp nhận, lỗi: %v", err)
	}
	if rows[0].Values["name"] != "Budi" {
		t.Errorf("giá trị phải được trim, name = %q", rows[0].Values["name"])
	}
}

func TestParseImportFile_MissingColumns(t *testing.T) {
	data := "customer_id,name,address\nCUST001,Budi,Jl. Merdeka 1\n"

	_, err := ParseImportFile("customers.csv", strings.NewReader(data))
	if err == nil {
		t.Fatal("thiếu cột bắt buộc phải trả về lỗi")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi phải là *common.Error, nhận %T", err)
	}
	if appErr.Code.Code != common.ErrCodeValidationImport.Code {
		t.Errorf("code = %q, muốn %q", appErr.Code.Code, common.ErrCodeValidationImport.Code)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("statusCode = %d, muốn 400", appErr.StatusCode)
	}
	if !strings.Contains(appErr.Message, "package") {
		t.Errorf("message phải liệt kê cột thiếu, nhận %q", appErr.Message)
	}
}

func TestParseImportFile_ShortRowPaddedEmpty(t *testing.T) {
	// Dòng thiếu cột cuối: giá trị cột thiếu phải là chuỗi rỗng, không panic
	data := importHeader + "\nCUST001,Budi\n"

	rows, err := ParseImportFile("customers.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseImportFile lỗi: %v", err)
	}
	if rows[0].Values["wifi_id"] != "" {
		t.Errorf("cột thiếu phải rỗng, wifi_id = %q", rows[0].Values["wifi_id"])
	}
}

func TestParseImportFile_UnsupportedExtension(t *testing.T) {
	_, err := ParseImportFile("customers.pdf", strings.NewReader("x"))
	if err == nil {
		t.Fatal("file .pdf phải bị từ chối")
	}
}

func TestParseImportFile_EmptyFile(t *testing.T) {
	_, err := ParseImportFile("customers.csv", strings.NewReader(""))
	if err == nil {
		t.Fatal("file rỗng phải trả về lỗi")
	}
}
