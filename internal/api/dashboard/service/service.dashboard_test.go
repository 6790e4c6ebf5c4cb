// Package dashboardsvc - Test xác định hóa đơn quá hạn theo chuỗi ngày ISO.
package dashboardsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	invoicemodels "wifi_billing/internal/api/invoice/models"
)

func TestIsOverdue(t *testing.T) {
	cases := []struct {
		name    string
		status  string
		dueDate string
		today   string
		want    bool
	}{
		{"pending quá hạn", invoicemodels.StatusPending, "2024-01-01", "2024-01-02", true},
		{"sent quá hạn", invoicemodels.StatusSent, "2024-01-01", "2024-01-02", true},
		{"đúng hạn hôm nay thì chưa quá hạn", invoicemodels.StatusPending, "2024-01-01", "2024-01-01", false},
		{"hạn trong tương lai", invoicemodels.StatusPending, "2024-02-01", "2024-01-02", false},
		{"paid không bao giờ quá hạn", invoicemodels.StatusPaid, "2023-01-01", "2024-01-02", false},
		{"generated không tính quá hạn", invoicemodels.StatusGenerated, "2023-01-01", "2024-01-02", false},
		{"qua năm mới", invoicemodels.StatusSent, "2023-12-31", "2024-01-01", true},
	}

	for _, c := range cases {
		if got := IsOverdue(c.status, c.dueDate, c.today); got != c.want {
			t.Errorf("%s: IsOverdue(%q, %q, %q) = %v, muốn %v",
				c.name, c.status, c.dueDate, c.today, got, c.want)
		}
	}
}

func TestOverdueFilter(t *testing.T) {
	filter := OverdueFilter("2024-01-15")

	due, ok := filter["dueDate"].(bson.M)
	if !ok || due["$lt"] != "2024-01-15" {
		t.Errorf("dueDate phải là {$lt: today}, nhận %v", filter["dueDate"])
	}

	status, ok := filter["status"].(bson.M)
	if !ok {
		t.Fatalf("status phải là bson.M, nhận %T", filter["status"])
	}
	in, ok := status["$in"].(bson.A)
	if !ok || len(in) != 2 {
		t.Fatalf("status.$in phải gồm 2 trạng thái, nhận %v", status["$in"])
	}
	if in[0] != invoicemodels.StatusPending || in[1] != invoicemodels.StatusSent {
		t.Errorf("status.$in = %v, muốn [pending, sent]", in)
	}
}
