package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "wifi_billing/internal/api/base/service"
	"wifi_billing/internal/api/scheduler/dto"
	"wifi_billing/internal/api/scheduler/models"
	"wifi_billing/internal/common"
)

// SchedulerService quản lý document settings singleton của lịch nhắc
type SchedulerService struct {
	basesvc.BaseServiceMongoImpl[models.SchedulerSettings]
}

// NewSchedulerService khởi tạo SchedulerService với collection settings
func NewSchedulerService(col *mongo.Collection) *SchedulerService {
	return &SchedulerService{
		BaseServiceMongoImpl: *basesvc.NewBaseServiceMongo[models.SchedulerSettings](col),
	}
}

func schedulerFilter() bson.M {
	return bson.M{"type": models.SettingsTypeScheduler}
}

// Get trả về cấu hình hiện tại, hoặc mặc định nếu chưa có document nào
func (s *SchedulerService) Get(ctx context.Context) (models.SchedulerSettings, error) {
	settings, err := s.FindOne(ctx, schedulerFilter(), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.DefaultSchedulerSettings(), nil
		}
		return models.SchedulerSettings{}, err
	}
	return settings, nil
}

// Set ghi đè toàn bộ cấu hình (upsert theo type)
func (s *SchedulerService) Set(ctx context.Context, input *dto.SchedulerSettingsInput) (models.SchedulerSettings, error) {
	reminderDays := input.ReminderDays
	if reminderDays == nil {
		reminderDays = []int{}
	}
	update := basesvc.UpdateData{
		Set: bson.M{
			"type":          models.SettingsTypeScheduler,
			"enabled":       input.Enabled,
			"daysBeforeDue": input.DaysBeforeDue,
			"reminderDays":  reminderDays,
			"cronTime":      input.CronTime,
		},
	}
	return s.Upsert(ctx, schedulerFilter(), update)
}
