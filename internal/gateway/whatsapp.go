// Package gateway chứa client HTTP cho microservice WhatsApp bên ngoài.
// Gateway expose 4 endpoint: GET /health, GET /qr, POST /reconnect,
// POST /send-document (multipart: file, phone, caption).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"wifi_billing/internal/common"
	"wifi_billing/internal/logger"
)

const (
	// controlTimeout cho các call trạng thái/điều khiển (health, qr, reconnect)
	controlTimeout = 5 * time.Second
	// sendTimeout cho call gửi tài liệu (upload file PDF)
	sendTimeout = 30 * time.Second
)

// StatusResponse là trạng thái kết nối phiên WhatsApp của gateway
type StatusResponse struct {
	Connected bool   `json:"connected"`
	Status    string `json:"status,omitempty"`
}

// SendResult là kết quả gửi tài liệu từ gateway
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WhatsAppClient là client mỏng gọi sang gateway WhatsApp
type WhatsAppClient struct {
	baseURL       string
	controlClient *http.Client
	sendClient    *http.Client
}

// NewWhatsAppClient tạo client với base URL của gateway
func NewWhatsAppClient(baseURL string) *WhatsAppClient {
	return &WhatsAppClient{
		baseURL:       baseURL,
		controlClient: &http.Client{Timeout: controlTimeout},
		sendClient:    &http.Client{Timeout: sendTimeout},
	}
}

// Status trả về trạng thái kết nối của gateway.
// Không bao giờ trả lỗi: mọi lỗi transport được coi là disconnected.
func (c *WhatsAppClient) Status(ctx context.Context) StatusResponse {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return StatusResponse{Connected: false, Status: "unavailable"}
	}

	resp, err := c.controlClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).Debug("Gateway WhatsApp không phản hồi health check")
		return StatusResponse{Connected: false, Status: "unavailable"}
	}
	defer resp.Body.Close()

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return StatusResponse{Connected: false, Status: "unavailable"}
	}

	return status
}

// QR lấy mã QR để ghép nối phiên WhatsApp
func (c *WhatsAppClient) QR(ctx context.Context) (map[string]interface{}, error) {
	return c.controlJSON(ctx, http.MethodGet, "/qr")
}

// Reconnect yêu cầu gateway khởi tạo lại phiên
func (c *WhatsAppClient) Reconnect(ctx context.Context) (map[string]interface{}, error) {
	return c.controlJSON(ctx, http.MethodPost, "/reconnect")
}

// controlJSON gọi một endpoint điều khiển và decode JSON body.
// Lỗi transport được map thành ErrGatewayUnavailable.
func (c *WhatsAppClient) controlJSON(ctx context.Context, method string, path string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, common.ErrGatewayUnavailable
	}

	resp, err := c.controlClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("path", path).Warn("Không gọi được gateway WhatsApp")
		return nil, common.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, common.ErrGatewayUnavailable
	}

	return body, nil
}

// SendDocument gửi một file tài liệu đến số điện thoại qua gateway.
// Request là multipart với 3 field: file, phone, caption.
// Status không thành công → GatewaySendError kèm body gateway trả về.
func (c *WhatsAppClient) SendDocument(ctx context.Context, phone string, filename string, caption string, file []byte) (*SendResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("không tạo được multipart form: %w", err)
	}
	if _, err := part.Write(file); err != nil {
		return nil, fmt.Errorf("không ghi được file vào form: %w", err)
	}
	if err := writer.WriteField("phone", phone); err != nil {
		return nil, fmt.Errorf("không ghi được field phone: %w", err)
	}
	if err := writer.WriteField("caption", caption); err != nil {
		return nil, fmt.Errorf("không ghi được field caption: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("không đóng được multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-document", &buf)
	if err != nil {
		return nil, common.ErrGatewayUnavailable
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.sendClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithField("phone", phone).Warn("Gửi tài liệu tới gateway WhatsApp thất bại")
		return nil, common.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetAppLogger().WithField("status", resp.StatusCode).WithField("body", string(respBody)).
			Warn("Gateway WhatsApp từ chối gửi tài liệu")
		return nil, common.NewGatewaySendError(string(respBody))
	}

	result := &SendResult{Success: true}
	if err := json.Unmarshal(respBody, result); err != nil {
		// Body không phải JSON nhưng status 2xx vẫn coi là gửi thành công
		result.Success = true
	}

	return result, nil
}
