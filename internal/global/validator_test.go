// Package global - Test các custom validator (iso_date, cron_time, no_xss).
package global

import "testing"

func TestValidateISODate(t *testing.T) {
	InitValidator()

	type payload struct {
		DueDate string `validate:"iso_date"`
	}

	valid := []string{"2024-01-01", "2024-12-31", ""}
	for _, v := range valid {
		if err := Validate.Struct(payload{DueDate: v}); err != nil {
			t.Errorf("iso_date phải chấp nhận %q, lỗi: %v", v, err)
		}
	}

	invalid := []string{"01/01/2024", "2024-1-1", "20240101", "2024-01-01T00:00:00"}
	for _, v := range invalid {
		if err := Validate.Struct(payload{DueDate: v}); err == nil {
			t.Errorf("iso_date phải từ chối %q", v)
		}
	}
}

func TestValidateCronTime(t *testing.T) {
	InitValidator()

	type payload struct {
		CronTime string `validate:"cron_time"`
	}

	valid := []string{"09:00", "00:00", "23:59", ""}
	for _, v := range valid {
		if err := Validate.Struct(payload{CronTime: v}); err != nil {
			t.Errorf("cron_time phải chấp nhận %q, lỗi: %v", v, err)
		}
	}

	invalid := []string{"24:00", "9:00", "09:60", "0900"}
	for _, v := range invalid {
		if err := Validate.Struct(payload{CronTime: v}); err == nil {
			t.Errorf("cron_time phải từ chối %q", v)
		}
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	type payload struct {
		Notes string `validate:"no_xss"`
	}

	if err := Validate.Struct(payload{Notes: "Ghi chú bình thường"}); err != nil {
		t.Errorf("text thường phải hợp lệ, lỗi: %v", err)
	}
	if err := Validate.Struct(payload{Notes: "<script>alert(1)</script>"}); err == nil {
		t.Error("no_xss phải từ chối thẻ script")
	}
	if err := Validate.Struct(payload{Notes: "JAVASCRIPT:void(0)"}); err == nil {
		t.Error("no_xss phải từ chối pattern không phân biệt hoa thường")
	}
}
