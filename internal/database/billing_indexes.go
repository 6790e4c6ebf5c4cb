// Package database - Index cho các collection billing (search, unique và predicate quá hạn).
package database

import (
	"context"
	"strings"

	"wifi_billing/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBillingIndexes tạo các index cho customers, invoices và settings.
// Gọi một lần lúc khởi động, lỗi "already exists" được bỏ qua.
func CreateBillingIndexes(ctx context.Context, db *mongo.Database) error {
	// customers: customerId — tra cứu theo mã khách hàng và import
	customers := db.Collection(global.MongoDB_ColNames.Customers)
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetName("customer_code"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// customers: status — filter danh sách theo trạng thái
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("customer_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: invoiceNumber unique — số hóa đơn là định danh toàn cục
	invoices := db.Collection(global.MongoDB_ColNames.Invoices)
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "invoiceNumber", Value: 1}},
		Options: options.Index().SetName("invoice_number_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: (status, dueDate) — predicate quá hạn của dashboard
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "dueDate", Value: 1},
		},
		Options: options.Index().SetName("invoice_status_due"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: customerId — filter danh sách hóa đơn theo khách hàng
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetName("invoice_customer").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// settings: type unique — document settings là singleton theo type
	settings := db.Collection(global.MongoDB_ColNames.Settings)
	if _, err := settings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "type", Value: 1}},
		Options: options.Index().SetName("settings_type_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_users: email unique — định danh đăng nhập Google
	users := db.Collection(global.MongoDB_ColNames.AuthUsers)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("auth_user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
