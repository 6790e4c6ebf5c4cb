package utility

import (
	"math"
	"strconv"
	"time"
)

// FormatRupiah định dạng số tiền kiểu "Rp 150,000" (làm tròn, nhóm hàng nghìn)
func FormatRupiah(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	// Chèn dấu phẩy mỗi 3 chữ số từ phải sang
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}

// FormatDateDMY định dạng ngày kiểu dd/mm/yyyy
func FormatDateDMY(t time.Time) string {
	return t.Format("02/01/2006")
}
