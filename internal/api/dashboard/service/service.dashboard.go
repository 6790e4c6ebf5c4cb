// Package dashboardsvc - Tổng hợp số liệu từ customers và invoices.
package dashboardsvc

import (
	"context"
	"errors"
	"time"

	customermodels "wifi_billing/internal/api/customer/models"
	customersvc "wifi_billing/internal/api/customer/service"
	dashboarddto "wifi_billing/internal/api/dashboard/dto"
	invoicemodels "wifi_billing/internal/api/invoice/models"
	invoicesvc "wifi_billing/internal/api/invoice/service"
	"wifi_billing/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// overdueListLimit giới hạn danh sách hóa đơn quá hạn
const overdueListLimit = 1000

// DashboardService tính số liệu tổng hợp cho dashboard
type DashboardService struct {
	customers *customersvc.CustomerService
	invoices  *invoicesvc.InvoiceService
}

// NewDashboardService tạo DashboardService với các store được inject
func NewDashboardService(customers *customersvc.CustomerService, invoices *invoicesvc.InvoiceService) *DashboardService {
	return &DashboardService{
		customers: customers,
		invoices:  invoices,
	}
}

// IsOverdue xác định hóa đơn quá hạn: chưa thanh toán (pending/sent)
// và hạn thanh toán trước ngày hiện tại, so sánh theo chuỗi ISO YYYY-MM-DD
func IsOverdue(status string, dueDate string, today string) bool {
	if status != invoicemodels.StatusPending && status != invoicemodels.StatusSent {
		return false
	}
	return dueDate < today
}

// OverdueFilter là filter MongoDB tương đương với IsOverdue
func OverdueFilter(today string) bson.M {
	return bson.M{
		"status":  bson.M{"$in": bson.A{invoicemodels.StatusPending, invoicemodels.StatusSent}},
		"dueDate": bson.M{"$lt": today},
	}
}

// Stats trả về số liệu tổng hợp: đếm thuê bao/hóa đơn theo trạng thái,
// số hóa đơn quá hạn và tổng doanh thu từ hóa đơn đã thanh toán
func (s *DashboardService) Stats(ctx context.Context) (*dashboarddto.Stats, error) {
	today := time.Now().Format("2006-01-02")
	stats := &dashboarddto.Stats{}

	var err error
	if stats.TotalCustomers, err = s.customers.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.ActiveCustomers, err = s.customers.CountDocuments(ctx, bson.M{"status": customermodels.StatusActive}); err != nil {
		return nil, err
	}
	if stats.TotalInvoices, err = s.invoices.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.PendingInvoices, err = s.invoices.CountDocuments(ctx, bson.M{"status": invoicemodels.StatusPending}); err != nil {
		return nil, err
	}
	if stats.SentInvoices, err = s.invoices.CountDocuments(ctx, bson.M{"status": invoicemodels.StatusSent}); err != nil {
		return nil, err
	}
	if stats.PaidInvoices, err = s.invoices.CountDocuments(ctx, bson.M{"status": invoicemodels.StatusPaid}); err != nil {
		return nil, err
	}
	if stats.OverdueInvoices, err = s.invoices.CountDocuments(ctx, OverdueFilter(today)); err != nil {
		return nil, err
	}

	if stats.Revenue, err = s.paidRevenue(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// paidRevenue tính tổng amount của hóa đơn đã thanh toán qua aggregation,
// không có hóa đơn nào thì trả về 0
func (s *DashboardService) paidRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"status": invoicemodels.StatusPaid}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}

	cursor, err := s.invoices.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

// OverdueList trả về hóa đơn quá hạn kèm tên và số điện thoại thuê bao.
// Hóa đơn có thuê bao đã bị xóa được bỏ qua.
func (s *DashboardService) OverdueList(ctx context.Context) ([]dashboarddto.OverdueInvoice, error) {
	today := time.Now().Format("2006-01-02")

	opts := mongoopts.Find().SetLimit(overdueListLimit)
	invoices, err := s.invoices.Find(ctx, OverdueFilter(today), opts)
	if err != nil {
		return nil, err
	}

	result := make([]dashboarddto.OverdueInvoice, 0, len(invoices))
	for _, inv := range invoices {
		customer, err := s.customers.GetById(ctx, inv.CustomerID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// Thuê bao đã bị xóa, bỏ qua hóa đơn này
				continue
			}
			return nil, err
		}

		result = append(result, dashboarddto.OverdueInvoice{
			InvoiceID:     inv.ID.Hex(),
			InvoiceNumber: inv.InvoiceNumber,
			Amount:        inv.Amount,
			DueDate:       inv.DueDate,
			Status:        inv.Status,
			CustomerName:  customer.Name,
			CustomerPhone: customer.PhoneWhatsapp,
		})
	}

	return result, nil
}
