package global

import (
	"github.com/go-playground/validator/v10"
)

// Validate là instance validator dùng chung cho toàn bộ DTO
var Validate *validator.Validate

// ColNames chứa tên các collection trong database
type ColNames struct {
	Customers        string
	InvoiceTemplates string
	Invoices         string
	Settings         string
	AuthUsers        string
}

// MongoDB_ColNames là danh sách tên collection cố định của hệ thống
var MongoDB_ColNames = ColNames{
	Customers:        "customers",
	InvoiceTemplates: "invoice_templates",
	Invoices:         "invoices",
	Settings:         "settings",
	AuthUsers:        "auth_users",
}
