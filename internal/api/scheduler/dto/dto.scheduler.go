package dto

// SchedulerSettingsInput là dữ liệu đầu vào khi cập nhật cấu hình lịch nhắc
type SchedulerSettingsInput struct {
	Enabled       bool   `json:"enabled"`
	DaysBeforeDue int    `json:"daysBeforeDue" validate:"gte=0,lte=60"`
	ReminderDays  []int  `json:"reminderDays" validate:"omitempty,dive,gte=0,lte=60"`
	CronTime      string `json:"cronTime" validate:"required,cron_time"`
}
