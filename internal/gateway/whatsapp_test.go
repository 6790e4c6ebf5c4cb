// Package gateway - Test client WhatsApp với server giả lập.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"wifi_billing/internal/common"
)

func TestStatus_Connected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"connected": true, "status": "connected"}`))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL)
	status := client.Status(context.Background())

	assert.True(t, status.Connected)
	assert.Equal(t, "connected", status.Status)
}

func TestStatus_TransportErrorMeansDisconnected(t *testing.T) {
	// Không có server nào lắng nghe: Status không được trả lỗi
	client := NewWhatsAppClient("http://127.0.0.1:1")
	status := client.Status(context.Background())

	assert.False(t, status.Connected)
	assert.Equal(t, "unavailable", status.Status)
}

func TestQR_TransportErrorMapsToGatewayUnavailable(t *testing.T) {
	client := NewWhatsAppClient("http://127.0.0.1:1")
	_, err := client.QR(context.Background())

	assert.True(t, errors.Is(err, common.ErrGatewayUnavailable), "lỗi transport phải map thành ErrGatewayUnavailable, nhận: %v", err)
}

func TestReconnect_ReturnsGatewayBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reconnect", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL)
	body, err := client.Reconnect(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, true, body["success"])
}

func TestSendDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-document", r.URL.Path)

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "6281234567890", r.FormValue("phone"))
		assert.Contains(t, r.FormValue("caption"), "Halo")

		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "INV-20240315-ABCDEF01.pdf", header.Filename)

		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL)
	result, err := client.SendDocument(context.Background(),
		"6281234567890", "INV-20240315-ABCDEF01.pdf", "Halo Budi", []byte("%PDF-fake"))

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestSendDocument_Non2xxReturnsSendErrorWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "session expired"}`))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL)
	_, err := client.SendDocument(context.Background(), "628123", "x.pdf", "caption", []byte("data"))

	var appErr *common.Error
	assert.True(t, errors.As(err, &appErr), "lỗi phải là *common.Error, nhận %T", err)
	assert.Equal(t, common.ErrCodeGatewaySend.Code, appErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)
	assert.Contains(t, appErr.Details, "session expired")
}

func TestSendDocument_NonJSONBodyStillSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := NewWhatsAppClient(srv.URL)
	result, err := client.SendDocument(context.Background(), "628123", "x.pdf", "caption", []byte("data"))

	assert.NoError(t, err)
	assert.True(t, result.Success)
}
