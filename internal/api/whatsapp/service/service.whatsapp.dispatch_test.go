// Package whatsappsvc - Test orchestrator gửi hóa đơn với các store giả lập.
package whatsappsvc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	customermodels "wifi_billing/internal/api/customer/models"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicemodels "wifi_billing/internal/api/invoice/models"
	whatsappdto "wifi_billing/internal/api/whatsapp/dto"
	"wifi_billing/internal/common"
	"wifi_billing/internal/gateway"
)

// fakeInvoiceStore giả lập InvoiceService trong bộ nhớ
type fakeInvoiceStore struct {
	invoices    map[string]*invoicemodels.Invoice
	failFor     map[string]error // customerID → lỗi khi Generate
	markedSent  []string
	generateSeq int
	pdfDir      string
}

func (f *fakeInvoiceStore) Generate(ctx context.Context, input *invoicedto.GenerateInvoiceInput) (*invoicedto.GenerateInvoiceResult, error) {
	if err, ok := f.failFor[input.CustomerID]; ok {
		return nil, err
	}
	f.generateSeq++
	id := primitive.NewObjectID()
	number := fmt.Sprintf("INV-20240315-%08d", f.generateSeq)
	pdfPath := filepath.Join(f.pdfDir, number+".pdf")
	os.WriteFile(pdfPath, []byte("%PDF-fake"), 0644)

	f.invoices[id.Hex()] = &invoicemodels.Invoice{
		ID:            id,
		CustomerID:    input.CustomerID,
		InvoiceNumber: number,
		Amount:        input.Amount,
		DueDate:       input.DueDate,
		Status:        invoicemodels.StatusGenerated,
		PdfPath:       pdfPath,
	}
	return &invoicedto.GenerateInvoiceResult{InvoiceID: id.Hex(), InvoiceNumber: number, PdfPath: pdfPath}, nil
}

func (f *fakeInvoiceStore) GetById(ctx context.Context, id string) (*invoicemodels.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvoiceStore) MarkSent(ctx context.Context, id primitive.ObjectID) (*invoicemodels.Invoice, error) {
	inv, ok := f.invoices[id.Hex()]
	if !ok {
		return nil, common.ErrNotFound
	}
	inv.Status = invoicemodels.StatusSent
	f.markedSent = append(f.markedSent, inv.InvoiceNumber)
	return inv, nil
}

// fakeCustomerStore giả lập CustomerService trong bộ nhớ
type fakeCustomerStore struct {
	customers map[string]*customermodels.Customer
}

func (f *fakeCustomerStore) GetById(ctx context.Context, id string) (*customermodels.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return c, nil
}

// fakeGateway giả lập gateway WhatsApp
type fakeGateway struct {
	connected bool
	sendErr   error
	sentTo    []string
}

func (f *fakeGateway) Status(ctx context.Context) gateway.StatusResponse {
	return gateway.StatusResponse{Connected: f.connected}
}

func (f *fakeGateway) SendDocument(ctx context.Context, phone, filename, caption string, file []byte) (*gateway.SendResult, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sentTo = append(f.sentTo, phone)
	return &gateway.SendResult{Success: true}, nil
}

func newDispatchFixture(t *testing.T) (*DispatchService, *fakeInvoiceStore, *fakeCustomerStore, *fakeGateway) {
	t.Helper()
	invoices := &fakeInvoiceStore{
		invoices: map[string]*invoicemodels.Invoice{},
		failFor:  map[string]error{},
		pdfDir:   t.TempDir(),
	}
	customers := &fakeCustomerStore{customers: map[string]*customermodels.Customer{}}
	gw := &fakeGateway{connected: true}
	return NewDispatchService(invoices, customers, gw), invoices, customers, gw
}

func addCustomer(customers *fakeCustomerStore, name string) string {
	id := primitive.NewObjectID().Hex()
	customers.customers[id] = &customermodels.Customer{
		Name:          name,
		CustomerID:    "CUST-" + name,
		PhoneWhatsapp: "628" + name,
	}
	return id
}

func TestBuildCaption(t *testing.T) {
	caption := BuildCaption("Budi", "INV-20240315-ABCDEF01", 150000, "2024-04-01")

	want := "Halo Budi,\n\nBerikut invoice tagihan WiFi Anda:\n\nNomor Invoice: INV-20240315-ABCDEF01\nJumlah: Rp 150,000\nJatuh Tempo: 2024-04-01\n\nTerima kasih!"
	if caption != want {
		t.Errorf("caption =\n%q\nmuốn\n%q", caption, want)
	}
}

func TestSendOne_Success(t *testing.T) {
	svc, invoices, customers, gw := newDispatchFixture(t)
	customerID := addCustomer(customers, "budi")

	generated, err := invoices.Generate(context.Background(),
		&invoicedto.GenerateInvoiceInput{CustomerID: customerID, Amount: 150000, DueDate: "2024-04-01"})
	assert.NoError(t, err)

	sent, err := svc.SendOne(context.Background(), generated.InvoiceID)
	assert.NoError(t, err)
	assert.Equal(t, invoicemodels.StatusSent, sent.Status)
	assert.Equal(t, []string{generated.InvoiceNumber}, invoices.markedSent)
	assert.Equal(t, []string{"628budi"}, gw.sentTo)
}

func TestSendOne_GatewayNotConnected(t *testing.T) {
	svc, invoices, customers, gw := newDispatchFixture(t)
	gw.connected = false
	customerID := addCustomer(customers, "budi")

	generated, _ := invoices.Generate(context.Background(),
		&invoicedto.GenerateInvoiceInput{CustomerID: customerID, Amount: 150000, DueDate: "2024-04-01"})

	_, err := svc.SendOne(context.Background(), generated.InvoiceID)
	assert.True(t, errors.Is(err, common.ErrGatewayNotConnected), "gateway chưa kết nối phải trả ErrGatewayNotConnected, nhận: %v", err)
	assert.Empty(t, invoices.markedSent, "hóa đơn không được đánh dấu sent khi gửi thất bại")
}

func TestSendOne_InvoiceNotFound(t *testing.T) {
	svc, _, _, _ := newDispatchFixture(t)

	_, err := svc.SendOne(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSendOne_MissingPdfFile(t *testing.T) {
	svc, invoices, customers, _ := newDispatchFixture(t)
	customerID := addCustomer(customers, "budi")

	generated, _ := invoices.Generate(context.Background(),
		&invoicedto.GenerateInvoiceInput{CustomerID: customerID, Amount: 150000, DueDate: "2024-04-01"})
	os.Remove(invoices.invoices[generated.InvoiceID].PdfPath)

	_, err := svc.SendOne(context.Background(), generated.InvoiceID)

	var appErr *common.Error
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusNotFound, appErr.StatusCode)
}

func TestBulkSend_PreservesOrderAndIsolatesFailures(t *testing.T) {
	svc, invoices, customers, _ := newDispatchFixture(t)
	id1 := addCustomer(customers, "budi")
	id2 := primitive.NewObjectID().Hex() // không tồn tại, Generate sẽ lỗi
	id3 := addCustomer(customers, "siti")

	invoices.failFor[id2] = common.ErrNotFound

	results := svc.BulkSend(context.Background(), &whatsappdto.BulkSendInput{
		CustomerIDs: []string{id1, id2, id3},
		Amount:      150000,
		DueDate:     "2024-04-01",
	})

	assert.Len(t, results, 3, "kết quả phải giữ nguyên độ dài input")
	assert.Equal(t, []string{id1, id2, id3},
		[]string{results[0].CustomerID, results[1].CustomerID, results[2].CustomerID},
		"kết quả phải giữ nguyên thứ tự input")

	assert.True(t, results[0].Success)
	assert.NotEmpty(t, results[0].InvoiceNumber)

	assert.False(t, results[1].Success)
	assert.NotEmpty(t, results[1].Error)

	assert.True(t, results[2].Success)
}

func TestBulkSend_SendFailureKeepsInvoiceGenerated(t *testing.T) {
	svc, invoices, customers, gw := newDispatchFixture(t)
	customerID := addCustomer(customers, "budi")
	gw.sendErr = common.NewGatewaySendError(`{"error":"session expired"}`)

	results := svc.BulkSend(context.Background(), &whatsappdto.BulkSendInput{
		CustomerIDs: []string{customerID},
		Amount:      150000,
		DueDate:     "2024-04-01",
	})

	assert.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.True(t, strings.Contains(results[0].Error, "WhatsApp"), "lỗi gửi phải nêu rõ gateway, nhận: %q", results[0].Error)

	// Hóa đơn đã sinh nhưng chưa gửi được phải giữ trạng thái generated
	for _, inv := range invoices.invoices {
		assert.Equal(t, invoicemodels.StatusGenerated, inv.Status)
	}
	assert.Empty(t, invoices.markedSent)
}
