// Package dto - Input/output cho domain whatsapp (dispatch hóa đơn).
package dto

// BulkSendInput là body gửi hóa đơn hàng loạt
type BulkSendInput struct {
	CustomerIDs []string `json:"customerIds" validate:"required,min=1"`
	Amount      float64  `json:"amount" validate:"required,gt=0"`
	DueDate     string   `json:"dueDate" validate:"required,iso_date"`
	TemplateID  string   `json:"templateId" validate:"omitempty"`
}

// BulkSendResultItem là kết quả gửi cho một thuê bao, giữ nguyên thứ tự input
type BulkSendResultItem struct {
	CustomerID    string `json:"customerId"`
	Success       bool   `json:"success"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
	Error         string `json:"error,omitempty"`
}
