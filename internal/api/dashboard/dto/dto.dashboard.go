// Package dto - Output cho domain dashboard.
package dto

// Stats là số liệu tổng hợp hiển thị trên dashboard
type Stats struct {
	TotalCustomers  int64   `json:"totalCustomers"`
	ActiveCustomers int64   `json:"activeCustomers"`
	TotalInvoices   int64   `json:"totalInvoices"`
	PendingInvoices int64   `json:"pendingInvoices"`
	SentInvoices    int64   `json:"sentInvoices"`
	PaidInvoices    int64   `json:"paidInvoices"`
	OverdueInvoices int64   `json:"overdueInvoices"`
	Revenue         float64 `json:"revenue"` // Tổng amount của hóa đơn đã thanh toán
}

// OverdueInvoice là hóa đơn quá hạn kèm thông tin thuê bao sở hữu
type OverdueInvoice struct {
	InvoiceID     string  `json:"invoiceId"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
}
