// Package models - SchedulerSettings thuộc domain scheduler (settings).
// Document singleton theo type="scheduler", upsert toàn bộ khi cập nhật.
// Chỉ lưu cấu hình: không có engine nào thực thi lịch nhắc trong service này.
package models

// SettingsTypeScheduler là giá trị type của document settings scheduler
const SettingsTypeScheduler = "scheduler"

// SchedulerSettings là cấu hình lịch nhắc thanh toán
type SchedulerSettings struct {
	Type          string `json:"type" bson:"type"`
	Enabled       bool   `json:"enabled" bson:"enabled"`
	DaysBeforeDue int    `json:"daysBeforeDue" bson:"daysBeforeDue"`
	ReminderDays  []int  `json:"reminderDays" bson:"reminderDays"` // Các offset ngày nhắc lại
	CronTime      string `json:"cronTime" bson:"cronTime"`         // HH:MM
	CreatedAt     int64  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     int64  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DefaultSchedulerSettings trả về cấu hình mặc định khi chưa có document nào
func DefaultSchedulerSettings() SchedulerSettings {
	return SchedulerSettings{
		Type:          SettingsTypeScheduler,
		Enabled:       false,
		DaysBeforeDue: 2,
		ReminderDays:  []int{1, 3},
		CronTime:      "09:00",
	}
}
