// Package invoicesvc - Service hóa đơn (invoices): sinh, render, lưu và tra cứu.
package invoicesvc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	basesvc "wifi_billing/internal/api/base/service"
	customermodels "wifi_billing/internal/api/customer/models"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicemodels "wifi_billing/internal/api/invoice/models"
	"wifi_billing/internal/common"
	"wifi_billing/internal/logger"
	"wifi_billing/internal/pdf"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// invoiceListLimit giới hạn số hóa đơn trả về khi list
const invoiceListLimit = 1000

// CustomerResolver cung cấp thuê bao cho bước sinh hóa đơn
type CustomerResolver interface {
	GetById(ctx context.Context, id string) (*customermodels.Customer, error)
}

// TemplateResolver cung cấp template cho bước sinh hóa đơn
type TemplateResolver interface {
	GetById(ctx context.Context, id string) (*invoicemodels.InvoiceTemplate, error)
	GetDefault(ctx context.Context) (*invoicemodels.InvoiceTemplate, error)
}

// InvoiceService sinh và quản lý hóa đơn
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[invoicemodels.Invoice]

	templates   TemplateResolver
	customers   CustomerResolver
	generator   *pdf.Generator
	invoicesDir string
}

// NewInvoiceService tạo InvoiceService với các collaborator được inject
func NewInvoiceService(col *mongo.Collection, templates TemplateResolver, customers CustomerResolver, generator *pdf.Generator, invoicesDir string) *InvoiceService {
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[invoicemodels.Invoice](col),
		templates:            templates,
		customers:            customers,
		generator:            generator,
		invoicesDir:          invoicesDir,
	}
}

// Generate sinh hóa đơn cho một thuê bao:
// resolve thuê bao và template, thay placeholder, ghi file HTML,
// render PDF (wkhtmltopdf → Chromium fallback) rồi lưu bản ghi hóa đơn
// với trạng thái "generated".
func (s *InvoiceService) Generate(ctx context.Context, input *invoicedto.GenerateInvoiceInput) (*invoicedto.GenerateInvoiceResult, error) {
	customer, err := s.customers.GetById(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery,
				"Không tìm thấy thuê bao", common.StatusNotFound, nil)
		}
		return nil, err
	}

	var tpl *invoicemodels.InvoiceTemplate
	if input.TemplateID != "" {
		tpl, err = s.templates.GetById(ctx, input.TemplateID)
	} else {
		tpl, err = s.templates.GetDefault(ctx)
	}
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery,
				"Không tìm thấy template hóa đơn", common.StatusNotFound, nil)
		}
		return nil, err
	}

	now := time.Now()
	invoiceNumber := GenerateInvoiceNumber(now)
	html := RenderTemplate(tpl.HTMLContent, BuildPlaceholders(customer, input.Amount, input.DueDate, invoiceNumber, now))

	if err := os.MkdirAll(s.invoicesDir, 0755); err != nil {
		return nil, common.NewError(common.ErrCodeRendering,
			"Không tạo được thư mục hóa đơn: "+err.Error(), common.StatusInternalServerError, nil)
	}

	htmlPath := filepath.Join(s.invoicesDir, invoiceNumber+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return nil, common.NewError(common.ErrCodeRendering,
			"Không ghi được file HTML hóa đơn: "+err.Error(), common.StatusInternalServerError, nil)
	}

	pdfPath := filepath.Join(s.invoicesDir, invoiceNumber+".pdf")
	if err := s.generator.Render(ctx, htmlPath, pdfPath); err != nil {
		return nil, err
	}

	doc := invoicemodels.Invoice{
		CustomerID:    customer.ID.Hex(),
		InvoiceNumber: invoiceNumber,
		Amount:        input.Amount,
		DueDate:       input.DueDate,
		Status:        invoicemodels.StatusGenerated,
		PdfPath:       pdfPath,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithField("invoiceNumber", invoiceNumber).
		WithField("customerId", customer.ID.Hex()).Info("Đã sinh hóa đơn")

	return &invoicedto.GenerateInvoiceResult{
		InvoiceID:     created.ID.Hex(),
		InvoiceNumber: created.InvoiceNumber,
		PdfPath:       created.PdfPath,
	}, nil
}

// List trả về hóa đơn theo filter equality customerId/status, tối đa 1000
func (s *InvoiceService) List(ctx context.Context, customerID string, status string) ([]invoicemodels.Invoice, error) {
	filter := bson.M{}
	if customerID != "" {
		filter["customerId"] = customerID
	}
	if status != "" {
		filter["status"] = status
	}

	return s.Find(ctx, filter, listFindOptions())
}

// listFindOptions: hóa đơn mới nhất trước, tối đa invoiceListLimit bản ghi
func listFindOptions() *mongoopts.FindOptions {
	return mongoopts.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(invoiceListLimit)
}

// GetById tìm hóa đơn theo id dạng hex
func (s *InvoiceService) GetById(ctx context.Context, id string) (*invoicemodels.Invoice, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	invoice, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByNumber tìm hóa đơn theo số hóa đơn (dùng cho download)
func (s *InvoiceService) GetByNumber(ctx context.Context, invoiceNumber string) (*invoicemodels.Invoice, error) {
	invoice, err := s.FindOne(ctx, bson.M{"invoiceNumber": invoiceNumber}, nil)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// MarkSent chuyển hóa đơn sang trạng thái "sent" và đóng dấu thời gian gửi
func (s *InvoiceService) MarkSent(ctx context.Context, id primitive.ObjectID) (*invoicemodels.Invoice, error) {
	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{
		"status": invoicemodels.StatusSent,
		"sentAt": time.Now().UnixMilli(),
	}})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
