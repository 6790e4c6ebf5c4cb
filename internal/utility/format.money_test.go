// Package utility - Test định dạng tiền và ngày cho hóa đơn.
package utility

import (
	"testing"
	"time"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{150000, "Rp 150,000"},
		{1500000, "Rp 1,500,000"},
		{999, "Rp 999"},
		{0, "Rp 0"},
		{1000, "Rp 1,000"},
		{150000.6, "Rp 150,001"}, // làm tròn
		{-25000, "Rp -25,000"},
	}

	for _, c := range cases {
		got := FormatRupiah(c.amount)
		if got != c.want {
			t.Errorf("FormatRupiah(%v) = %q, muốn %q", c.amount, got, c.want)
		}
	}
}

func TestFormatDateDMY(t *testing.T) {
	d := time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC)
	if got := FormatDateDMY(d); got != "05/01/2024" {
		t.Errorf("FormatDateDMY = %q, muốn 05/01/2024", got)
	}
}
