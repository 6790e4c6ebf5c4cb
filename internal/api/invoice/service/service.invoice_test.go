// Package invoicesvc - Test resolve lỗi khi sinh hóa đơn và options khi list.
package invoicesvc

import (
	"context"
	"errors"
	"testing"

	customermodels "wifi_billing/internal/api/customer/models"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicemodels "wifi_billing/internal/api/invoice/models"
	"wifi_billing/internal/common"
	"wifi_billing/internal/pdf"

	"go.mongodb.org/mongo-driver/bson"
)

type stubCustomerResolver struct {
	customer *customermodels.Customer
	err      error
}

func (s *stubCustomerResolver) GetById(ctx context.Context, id string) (*customermodels.Customer, error) {
	return s.customer, s.err
}

type stubTemplateResolver struct {
	tpl *invoicemodels.InvoiceTemplate
	err error
}

func (s *stubTemplateResolver) GetById(ctx context.Context, id string) (*invoicemodels.InvoiceTemplate, error) {
	return s.tpl, s.err
}

func (s *stubTemplateResolver) GetDefault(ctx context.Context) (*invoicemodels.InvoiceTemplate, error) {
	return s.tpl, s.err
}

func newGenerateInput() *invoicedto.GenerateInvoiceInput {
	return &invoicedto.GenerateInvoiceInput{
		CustomerID: "65f1a2b3c4d5e6f7a8b9c0d1",
		Amount:     150000,
		DueDate:    "2024-06-01",
	}
}

func TestGenerate_CustomerNotFound(t *testing.T) {
	svc := NewInvoiceService(nil,
		&stubTemplateResolver{},
		&stubCustomerResolver{err: common.ErrNotFound},
		pdf.NewGenerator(), t.TempDir())

	_, err := svc.Generate(context.Background(), newGenerateInput())

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("mong đợi *common.Error, nhận %v", err)
	}
	if appErr.StatusCode != common.StatusNotFound {
		t.Errorf("thuê bao không tồn tại phải trả 404, nhận %d", appErr.StatusCode)
	}
}

func TestGenerate_CustomerStoreErrorPropagated(t *testing.T) {
	dbErr := common.NewError(common.ErrCodeDatabaseQuery,
		"connection reset by peer", common.StatusInternalServerError, nil)
	svc := NewInvoiceService(nil,
		&stubTemplateResolver{},
		&stubCustomerResolver{err: dbErr},
		pdf.NewGenerator(), t.TempDir())

	_, err := svc.Generate(context.Background(), newGenerateInput())

	// Lỗi hạ tầng không được ngụy trang thành 404 "không tìm thấy"
	if !errors.Is(err, dbErr) {
		t.Fatalf("lỗi store phải được truyền nguyên vẹn, nhận %v", err)
	}
	var appErr *common.Error
	if errors.As(err, &appErr) && appErr.StatusCode == common.StatusNotFound {
		t.Errorf("lỗi hạ tầng bị map nhầm sang 404")
	}
}

func TestGenerate_TemplateNotFound(t *testing.T) {
	svc := NewInvoiceService(nil,
		&stubTemplateResolver{err: common.ErrNotFound},
		&stubCustomerResolver{customer: &customermodels.Customer{Name: "Budi"}},
		pdf.NewGenerator(), t.TempDir())

	_, err := svc.Generate(context.Background(), newGenerateInput())

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("mong đợi *common.Error, nhận %v", err)
	}
	if appErr.StatusCode != common.StatusNotFound {
		t.Errorf("thiếu template phải trả 404, nhận %d", appErr.StatusCode)
	}
}

func TestGenerate_TemplateStoreErrorPropagated(t *testing.T) {
	dbErr := common.NewError(common.ErrCodeDatabaseQuery,
		"server selection timeout", common.StatusInternalServerError, nil)
	svc := NewInvoiceService(nil,
		&stubTemplateResolver{err: dbErr},
		&stubCustomerResolver{customer: &customermodels.Customer{Name: "Budi"}},
		pdf.NewGenerator(), t.TempDir())

	_, err := svc.Generate(context.Background(), newGenerateInput())

	if !errors.Is(err, dbErr) {
		t.Fatalf("lỗi store phải được truyền nguyên vẹn, nhận %v", err)
	}
}

func TestListFindOptions_NewestFirst(t *testing.T) {
	opts := listFindOptions()

	if opts.Limit == nil || *opts.Limit != invoiceListLimit {
		t.Errorf("limit phải là %d, nhận %v", invoiceListLimit, opts.Limit)
	}

	sortDoc, ok := opts.Sort.(bson.D)
	if !ok || len(sortDoc) != 1 {
		t.Fatalf("sort phải là bson.D một phần tử, nhận %v", opts.Sort)
	}
	if sortDoc[0].Key != "createdAt" || sortDoc[0].Value != -1 {
		t.Errorf("hóa đơn phải sắp theo createdAt giảm dần, nhận %v", sortDoc)
	}
}
