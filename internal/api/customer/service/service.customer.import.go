// Package customersvc - Import thuê bao hàng loạt từ file CSV/Excel.
// File thiếu cột bắt buộc thì toàn bộ import thất bại; lỗi ở một dòng
// chỉ ảnh hưởng dòng đó (partial success là hành vi thiết kế).
package customersvc

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	customerdto "wifi_billing/internal/api/customer/dto"
	customermodels "wifi_billing/internal/api/customer/models"
	"wifi_billing/internal/common"

	"github.com/xuri/excelize/v2"
)

// RequiredImportColumns là các cột bắt buộc phải có trong file import
var RequiredImportColumns = []string{
	"customer_id",
	"name",
	"address",
	"package",
	"start_date",
	"next_due_date",
	"phone_whatsapp",
	"wifi_id",
}

// ImportRow là một dòng dữ liệu đã parse, Line tính từ 2 (dòng 1 là header)
type ImportRow struct {
	Line   int
	Values map[string]string
}

// ParseImportFile parse file CSV hoặc Excel thành danh sách dòng.
// Header thiếu cột bắt buộc → lỗi toàn bộ import.
func ParseImportFile(filename string, r io.Reader) ([]ImportRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseExcel(r)
	default:
		return nil, common.NewError(common.ErrCodeValidationImport,
			"Chỉ hỗ trợ file CSV hoặc Excel (.csv, .xlsx)", common.StatusBadRequest, nil)
	}
}

// parseCSV đọc file CSV, dòng đầu là header
func parseCSV(r io.Reader) ([]ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // số cột mỗi dòng có thể lệch, xử lý ở tầng dòng
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationImport,
			"Không đọc được file CSV: "+err.Error(), common.StatusBadRequest, nil)
	}

	return buildRows(records)
}

// parseExcel đọc sheet đầu tiên của file Excel
func parseExcel(r io.Reader) ([]ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationImport,
			"Không đọc được file Excel: "+err.Error(), common.StatusBadRequest, nil)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewError(common.ErrCodeValidationImport,
			"File Excel không có sheet nào", common.StatusBadRequest, nil)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationImport,
			"Không đọc được dữ liệu sheet: "+err.Error(), common.StatusBadRequest, nil)
	}

	return buildRows(records)
}

// buildRows validate header và map từng dòng theo tên cột
func buildRows(records [][]string) ([]ImportRow, error) {
	if len(records) == 0 {
		return nil, common.NewError(common.ErrCodeValidationImport,
			"File không có dữ liệu", common.StatusBadRequest, nil)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.ToLower(h))
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, common.NewError(common.ErrCodeValidationImport,
			"File thiếu cột bắt buộc: "+strings.Join(missing, ", "),
			common.StatusBadRequest, missing)
	}

	rows := make([]ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		values := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(record) {
				values[col] = strings.TrimSpace(record[j])
			} else {
				values[col] = ""
			}
		}
		// Dòng dữ liệu đầu tiên là dòng 2 trong file (sau header)
		rows = append(rows, ImportRow{Line: i + 2, Values: values})
	}

	return rows, nil
}

// missingColumns trả về các cột bắt buộc không có trong header
func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range RequiredImportColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// Import parse file và insert từng dòng độc lập, gom lỗi theo số dòng
func (s *CustomerService) Import(ctx context.Context, filename string, r io.Reader) (*customerdto.ImportResult, error) {
	rows, err := ParseImportFile(filename, r)
	if err != nil {
		return nil, err
	}

	result := &customerdto.ImportResult{Errors: []string{}}
	for _, row := range rows {
		doc := customermodels.Customer{
			CustomerID:    row.Values["customer_id"],
			Name:          row.Values["name"],
			Address:       row.Values["address"],
			Package:       row.Values["package"],
			StartDate:     row.Values["start_date"],
			BillingCycle:  customermodels.BillingCycleMonthly,
			NextDueDate:   row.Values["next_due_date"],
			PhoneWhatsapp: row.Values["phone_whatsapp"],
			WifiID:        row.Values["wifi_id"],
			Status:        customermodels.StatusActive,
			Notes:         row.Values["notes"],
		}

		if doc.CustomerID == "" || doc.Name == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: thiếu giá trị customer_id hoặc name", row.Line))
			continue
		}

		if _, err := s.InsertOne(ctx, doc); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}
