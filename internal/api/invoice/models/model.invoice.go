// Package models - Invoice thuộc domain invoice (invoices).
// Bản ghi hóa đơn trỏ tới file PDF đã render; không bao giờ bị xóa.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái hóa đơn
const (
	StatusPending   = "pending"
	StatusGenerated = "generated"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
)

// Invoice là bản ghi hóa đơn của một thuê bao
type Invoice struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID    string             `json:"customerId" bson:"customerId"`         // Hex id của Customer
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber"`   // INV-YYYYMMDD-XXXXXXXX
	Amount        float64            `json:"amount" bson:"amount"`
	DueDate       string             `json:"dueDate" bson:"dueDate"`               // YYYY-MM-DD, so sánh theo chuỗi
	Status        string             `json:"status" bson:"status"`
	PdfPath       string             `json:"pdfPath" bson:"pdfPath"`
	SentAt        int64              `json:"sentAt,omitempty" bson:"sentAt,omitempty"`
	PaidAt        int64              `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
