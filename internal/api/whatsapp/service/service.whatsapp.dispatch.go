// Package whatsappsvc - Orchestrator gửi hóa đơn qua WhatsApp:
// sinh hóa đơn rồi gửi file PDF tới gateway, tuần tự từng thuê bao.
package whatsappsvc

import (
	"context"
	"fmt"
	"os"

	customermodels "wifi_billing/internal/api/customer/models"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicemodels "wifi_billing/internal/api/invoice/models"
	whatsappdto "wifi_billing/internal/api/whatsapp/dto"
	"wifi_billing/internal/common"
	"wifi_billing/internal/gateway"
	"wifi_billing/internal/logger"
	"wifi_billing/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceStore là phần InvoiceService mà orchestrator cần
type InvoiceStore interface {
	Generate(ctx context.Context, input *invoicedto.GenerateInvoiceInput) (*invoicedto.GenerateInvoiceResult, error)
	GetById(ctx context.Context, id string) (*invoicemodels.Invoice, error)
	MarkSent(ctx context.Context, id primitive.ObjectID) (*invoicemodels.Invoice, error)
}

// CustomerStore là phần CustomerService mà orchestrator cần
type CustomerStore interface {
	GetById(ctx context.Context, id string) (*customermodels.Customer, error)
}

// DocumentGateway là phần gateway client mà orchestrator cần
type DocumentGateway interface {
	Status(ctx context.Context) gateway.StatusResponse
	SendDocument(ctx context.Context, phone string, filename string, caption string, file []byte) (*gateway.SendResult, error)
}

// DispatchService điều phối sinh + gửi hóa đơn
type DispatchService struct {
	invoices  InvoiceStore
	customers CustomerStore
	gateway   DocumentGateway
}

// NewDispatchService tạo DispatchService với các collaborator được inject
func NewDispatchService(invoices InvoiceStore, customers CustomerStore, gw DocumentGateway) *DispatchService {
	return &DispatchService{
		invoices:  invoices,
		customers: customers,
		gateway:   gw,
	}
}

// BuildCaption soạn caption tin nhắn kèm file hóa đơn
func BuildCaption(customerName string, invoiceNumber string, amount float64, dueDate string) string {
	return fmt.Sprintf("Halo %s,\n\nBerikut invoice tagihan WiFi Anda:\n\nNomor Invoice: %s\nJumlah: %s\nJatuh Tempo: %s\n\nTerima kasih!",
		customerName, invoiceNumber, utility.FormatRupiah(amount), dueDate)
}

// SendOne gửi một hóa đơn đã sinh tới thuê bao sở hữu nó.
// Gateway chưa kết nối → GatewayNotConnected, gửi lỗi → giữ nguyên trạng thái
// hóa đơn (không retry tự động). Thành công → hóa đơn chuyển "sent".
func (s *DispatchService) SendOne(ctx context.Context, invoiceID string) (*invoicemodels.Invoice, error) {
	invoice, err := s.invoices.GetById(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetById(ctx, invoice.CustomerID)
	if err != nil {
		return nil, err
	}

	status := s.gateway.Status(ctx)
	if !status.Connected {
		return nil, common.ErrGatewayNotConnected
	}

	pdfBytes, err := os.ReadFile(invoice.PdfPath)
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabaseQuery,
			"File PDF của hóa đơn không còn tồn tại", common.StatusNotFound, nil)
	}

	caption := BuildCaption(customer.Name, invoice.InvoiceNumber, invoice.Amount, invoice.DueDate)
	if _, err := s.gateway.SendDocument(ctx, customer.PhoneWhatsapp, invoice.InvoiceNumber+".pdf", caption, pdfBytes); err != nil {
		return nil, err
	}

	sent, err := s.invoices.MarkSent(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithField("invoiceNumber", invoice.InvoiceNumber).
		WithField("phone", customer.PhoneWhatsapp).Info("Đã gửi hóa đơn qua WhatsApp")

	return sent, nil
}

// BulkSend sinh rồi gửi hóa đơn cho từng thuê bao theo đúng thứ tự input.
// Xử lý tuần tự, lỗi của một thuê bao không dừng cả batch;
// kết quả trả về giữ nguyên thứ tự và độ dài của danh sách input.
func (s *DispatchService) BulkSend(ctx context.Context, input *whatsappdto.BulkSendInput) []whatsappdto.BulkSendResultItem {
	results := make([]whatsappdto.BulkSendResultItem, 0, len(input.CustomerIDs))

	for _, customerID := range input.CustomerIDs {
		item := whatsappdto.BulkSendResultItem{CustomerID: customerID}

		generated, err := s.invoices.Generate(ctx, &invoicedto.GenerateInvoiceInput{
			CustomerID: customerID,
			TemplateID: input.TemplateID,
			Amount:     input.Amount,
			DueDate:    input.DueDate,
		})
		if err != nil {
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		if _, err := s.SendOne(ctx, generated.InvoiceID); err != nil {
			// Hóa đơn đã sinh nhưng chưa gửi được, giữ trạng thái "generated"
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		item.Success = true
		item.InvoiceNumber = generated.InvoiceNumber
		results = append(results, item)
	}

	return results
}
