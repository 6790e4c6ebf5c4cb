// Package dto - Input/output cho domain invoice.
package dto

// TemplateCreateInput là body tạo template hóa đơn
type TemplateCreateInput struct {
	Name        string `json:"name" validate:"required"`
	HTMLContent string `json:"htmlContent" validate:"required"`
	IsDefault   bool   `json:"isDefault"`
}

// GenerateInvoiceInput là body sinh hóa đơn cho một thuê bao
type GenerateInvoiceInput struct {
	CustomerID string  `json:"customerId" validate:"required"`
	TemplateID string  `json:"templateId" validate:"omitempty"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	DueDate    string  `json:"dueDate" validate:"required,iso_date"`
}

// GenerateInvoiceResult là kết quả sinh hóa đơn
type GenerateInvoiceResult struct {
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
	PdfPath       string `json:"pdfPath"`
}
