// Package models - Customer thuộc domain customer (customers).
// Lưu thuê bao WiFi: gói cước, chu kỳ thanh toán, số WhatsApp nhận hóa đơn.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái thuê bao
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusCancelled = "cancelled"
)

// BillingCycleMonthly là chu kỳ thanh toán mặc định
const BillingCycleMonthly = "monthly"

// Customer là bản ghi thuê bao WiFi
type Customer struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID    string             `json:"customerId" bson:"customerId"`       // Mã khách hàng (mã ngoài)
	Name          string             `json:"name" bson:"name"`
	Address       string             `json:"address" bson:"address"`
	Package       string             `json:"package" bson:"package"`             // Tên gói cước
	StartDate     string             `json:"startDate" bson:"startDate"`         // YYYY-MM-DD
	BillingCycle  string             `json:"billingCycle" bson:"billingCycle"`
	NextDueDate   string             `json:"nextDueDate" bson:"nextDueDate"`     // YYYY-MM-DD
	PhoneWhatsapp string             `json:"phoneWhatsapp" bson:"phoneWhatsapp"` // Số nhận hóa đơn
	WifiID        string             `json:"wifiId" bson:"wifiId"`               // Định danh thiết bị/đường truyền
	Status        string             `json:"status" bson:"status"`
	Notes         string             `json:"notes" bson:"notes,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
