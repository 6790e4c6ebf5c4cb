// Package pdf cung cấp việc render file HTML hóa đơn thành PDF.
// Backend chính là binary wkhtmltopdf (process ngoài), fallback là headless
// Chromium chạy in-process qua chromedp. Cả hai cùng thỏa một contract:
// file HTML trên đĩa → file PDF tại đường dẫn chỉ định.
package pdf

import (
	"context"

	"wifi_billing/internal/common"
	"wifi_billing/internal/logger"
)

// Renderer là một backend render HTML → PDF
type Renderer interface {
	// Name trả về tên backend để log
	Name() string
	// Available kiểm tra backend có dùng được trên máy hiện tại không
	Available() bool
	// Render đọc file HTML tại htmlPath và ghi PDF tại pdfPath
	Render(ctx context.Context, htmlPath string, pdfPath string) error
}

// Generator thử lần lượt các backend theo thứ tự ưu tiên
type Generator struct {
	renderers []Renderer
}

// NewGenerator tạo Generator với danh sách backend theo thứ tự ưu tiên
func NewGenerator(renderers ...Renderer) *Generator {
	return &Generator{renderers: renderers}
}

// Render thử từng backend cho đến khi có backend render thành công.
// Trả về ErrRenderingUnavailable khi không backend nào khả dụng hoặc tất cả đều lỗi.
func (g *Generator) Render(ctx context.Context, htmlPath string, pdfPath string) error {
	log := logger.GetAppLogger()

	for _, r := range g.renderers {
		if !r.Available() {
			log.WithField("renderer", r.Name()).Debug("Bỏ qua backend render không khả dụng")
			continue
		}

		err := r.Render(ctx, htmlPath, pdfPath)
		if err == nil {
			log.WithField("renderer", r.Name()).WithField("pdf", pdfPath).Info("Render PDF thành công")
			return nil
		}

		log.WithField("renderer", r.Name()).WithError(err).Warn("Backend render lỗi, thử backend tiếp theo")
	}

	return common.ErrRenderingUnavailable
}
