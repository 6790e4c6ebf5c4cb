package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// chromiumTimeout giới hạn thời gian render một trang
const chromiumTimeout = 60 * time.Second

// chromiumBinaries là các tên binary trình duyệt được dò trong PATH
var chromiumBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"headless-shell",
}

// ChromiumRenderer render PDF bằng headless Chromium qua chromedp (fallback in-process)
type ChromiumRenderer struct {
	enabled bool
}

// NewChromiumRenderer tạo renderer, enabled=false tắt hoàn toàn backend này
func NewChromiumRenderer(enabled bool) *ChromiumRenderer {
	return &ChromiumRenderer{enabled: enabled}
}

// Name trả về tên backend
func (r *ChromiumRenderer) Name() string {
	return "chromium"
}

// Available kiểm tra có binary trình duyệt nào trong PATH không
func (r *ChromiumRenderer) Available() bool {
	if !r.enabled {
		return false
	}
	for _, bin := range chromiumBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

// Render mở file HTML trong headless Chromium và in ra PDF
func (r *ChromiumRenderer) Render(ctx context.Context, htmlPath string, pdfPath string) error {
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("không resolve được đường dẫn HTML: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, chromiumTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdfBytes []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+absPath),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBytes, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("chromium render thất bại: %w", err)
	}

	if err := os.WriteFile(pdfPath, pdfBytes, 0644); err != nil {
		return fmt.Errorf("không ghi được file PDF: %w", err)
	}

	return nil
}
