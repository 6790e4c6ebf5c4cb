// Package models - Test cấu hình scheduler mặc định.
package models

import "testing"

func TestDefaultSchedulerSettings(t *testing.T) {
	s := DefaultSchedulerSettings()

	if s.Type != SettingsTypeScheduler {
		t.Errorf("type = %q, muốn %q", s.Type, SettingsTypeScheduler)
	}
	if s.Enabled {
		t.Error("enabled mặc định phải là false")
	}
	if s.DaysBeforeDue != 2 {
		t.Errorf("daysBeforeDue = %d, muốn 2", s.DaysBeforeDue)
	}
	if len(s.ReminderDays) != 2 || s.ReminderDays[0] != 1 || s.ReminderDays[1] != 3 {
		t.Errorf("reminderDays = %v, muốn [1 3]", s.ReminderDays)
	}
	if s.CronTime != "09:00" {
		t.Errorf("cronTime = %q, muốn 09:00", s.CronTime)
	}
}
