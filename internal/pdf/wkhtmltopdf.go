package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// wkhtmltopdfTimeout giới hạn thời gian chạy process render
const wkhtmltopdfTimeout = 60 * time.Second

// WkhtmltopdfRenderer render PDF bằng binary wkhtmltopdf (process ngoài)
type WkhtmltopdfRenderer struct {
	binPath string
}

// NewWkhtmltopdfRenderer tạo renderer với đường dẫn binary (mặc định "wkhtmltopdf" trong PATH)
func NewWkhtmltopdfRenderer(binPath string) *WkhtmltopdfRenderer {
	if binPath == "" {
		binPath = "wkhtmltopdf"
	}
	return &WkhtmltopdfRenderer{binPath: binPath}
}

// Name trả về tên backend
func (r *WkhtmltopdfRenderer) Name() string {
	return "wkhtmltopdf"
}

// Available kiểm tra binary có trong PATH không
func (r *WkhtmltopdfRenderer) Available() bool {
	_, err := exec.LookPath(r.binPath)
	return err == nil
}

// Render chạy wkhtmltopdf với --enable-local-file-access để load được
// ảnh/css cục bộ mà file HTML hóa đơn tham chiếu
func (r *WkhtmltopdfRenderer) Render(ctx context.Context, htmlPath string, pdfPath string) error {
	ctx, cancel := context.WithTimeout(ctx, wkhtmltopdfTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binPath, "--enable-local-file-access", htmlPath, pdfPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("wkhtmltopdf thất bại: %w, output: %s", err, string(output))
	}

	return nil
}
