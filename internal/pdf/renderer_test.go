// Package pdf - Test chuỗi fallback giữa các backend render.
package pdf

import (
	"context"
	"errors"
	"testing"

	"wifi_billing/internal/common"
)

// stubRenderer là backend giả lập cho test fallback
type stubRenderer struct {
	name      string
	available bool
	err       error
	called    bool
}

func (s *stubRenderer) Name() string    { return s.name }
func (s *stubRenderer) Available() bool { return s.available }
func (s *stubRenderer) Render(ctx context.Context, htmlPath, pdfPath string) error {
	s.called = true
	return s.err
}

func TestGeneratorRender_FirstAvailableWins(t *testing.T) {
	primary := &stubRenderer{name: "wkhtmltopdf", available: true}
	fallback := &stubRenderer{name: "chromium", available: true}

	g := NewGenerator(primary, fallback)
	if err := g.Render(context.Background(), "in.html", "out.pdf"); err != nil {
		t.Fatalf("Render lỗi: %v", err)
	}
	if !primary.called {
		t.Error("backend chính phải được gọi")
	}
	if fallback.called {
		t.Error("backend fallback không được gọi khi backend chính thành công")
	}
}

func TestGeneratorRender_FallsBackOnError(t *testing.T) {
	primary := &stubRenderer{name: "wkhtmltopdf", available: true, err: errors.New("exit status 1")}
	fallback := &stubRenderer{name: "chromium", available: true}

	g := NewGenerator(primary, fallback)
	if err := g.Render(context.Background(), "in.html", "out.pdf"); err != nil {
		t.Fatalf("Render lỗi: %v", err)
	}
	if !fallback.called {
		t.Error("backend fallback phải được gọi khi backend chính lỗi")
	}
}

func TestGeneratorRender_SkipsUnavailable(t *testing.T) {
	primary := &stubRenderer{name: "wkhtmltopdf", available: false}
	fallback := &stubRenderer{name: "chromium", available: true}

	g := NewGenerator(primary, fallback)
	if err := g.Render(context.Background(), "in.html", "out.pdf"); err != nil {
		t.Fatalf("Render lỗi: %v", err)
	}
	if primary.called {
		t.Error("backend không khả dụng không được gọi")
	}
	if !fallback.called {
		t.Error("backend khả dụng phải được gọi")
	}
}

func TestGeneratorRender_AllFailReturnsRenderingUnavailable(t *testing.T) {
	primary := &stubRenderer{name: "wkhtmltopdf", available: true, err: errors.New("boom")}
	fallback := &stubRenderer{name: "chromium", available: false}

	g := NewGenerator(primary, fallback)
	err := g.Render(context.Background(), "in.html", "out.pdf")
	if !errors.Is(err, common.ErrRenderingUnavailable) {
		t.Errorf("tất cả backend lỗi phải trả ErrRenderingUnavailable, nhận: %v", err)
	}
}

func TestGeneratorRender_NoRenderers(t *testing.T) {
	g := NewGenerator()
	err := g.Render(context.Background(), "in.html", "out.pdf")
	if !errors.Is(err, common.ErrRenderingUnavailable) {
		t.Errorf("không có backend phải trả ErrRenderingUnavailable, nhận: %v", err)
	}
}
