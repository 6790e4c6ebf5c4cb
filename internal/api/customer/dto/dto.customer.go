// Package dto - Input/output cho domain customer.
package dto

// CustomerCreateInput là body tạo thuê bao mới
type CustomerCreateInput struct {
	CustomerID    string `json:"customerId" validate:"required"`
	Name          string `json:"name" validate:"required,no_xss"`
	Address       string `json:"address" validate:"required,no_xss"`
	Package       string `json:"package" validate:"required"`
	StartDate     string `json:"startDate" validate:"required,iso_date"`
	BillingCycle  string `json:"billingCycle" validate:"omitempty,oneof=monthly quarterly yearly"`
	NextDueDate   string `json:"nextDueDate" validate:"required,iso_date"`
	PhoneWhatsapp string `json:"phoneWhatsapp" validate:"required"`
	WifiID        string `json:"wifiId" validate:"required"`
	Status        string `json:"status" validate:"omitempty,oneof=active suspended cancelled"`
	Notes         string `json:"notes" validate:"omitempty,no_xss"`
}

// CustomerUpdateInput là body cập nhật một phần, chỉ field khác nil mới được ghi
type CustomerUpdateInput struct {
	CustomerID    *string `json:"customerId,omitempty"`
	Name          *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Address       *string `json:"address,omitempty" validate:"omitempty,no_xss"`
	Package       *string `json:"package,omitempty"`
	StartDate     *string `json:"startDate,omitempty" validate:"omitempty,iso_date"`
	BillingCycle  *string `json:"billingCycle,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
	NextDueDate   *string `json:"nextDueDate,omitempty" validate:"omitempty,iso_date"`
	PhoneWhatsapp *string `json:"phoneWhatsapp,omitempty"`
	WifiID        *string `json:"wifiId,omitempty"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=active suspended cancelled"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// ImportResult là kết quả import file: số dòng thành công + lỗi từng dòng
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
