// Package invoicesvc - Service template hóa đơn (invoice_templates).
package invoicesvc

import (
	"context"

	basesvc "wifi_billing/internal/api/base/service"
	invoicedto "wifi_billing/internal/api/invoice/dto"
	invoicemodels "wifi_billing/internal/api/invoice/models"
	"wifi_billing/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// templateListLimit giới hạn số template trả về khi list
const templateListLimit = 100

// TemplateService xử lý CRUD template hóa đơn
type TemplateService struct {
	*basesvc.BaseServiceMongoImpl[invoicemodels.InvoiceTemplate]
}

// NewTemplateService tạo TemplateService trên collection được truyền vào
func NewTemplateService(col *mongo.Collection) *TemplateService {
	return &TemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[invoicemodels.InvoiceTemplate](col),
	}
}

// Create tạo template mới. Nếu đánh dấu mặc định thì bỏ cờ mặc định trên tất cả
// template khác trước (tuần tự, không transaction - reader đồng thời có thể thấy
// trạng thái chuyển tiếp).
func (s *TemplateService) Create(ctx context.Context, input *invoicedto.TemplateCreateInput) (*invoicemodels.InvoiceTemplate, error) {
	if input.IsDefault {
		if _, err := s.UpdateMany(ctx, bson.M{}, &basesvc.UpdateData{Set: bson.M{"isDefault": false}}); err != nil {
			return nil, err
		}
	}

	doc := invoicemodels.InvoiceTemplate{
		Name:        input.Name,
		HTMLContent: input.HTMLContent,
		IsDefault:   input.IsDefault,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List trả về tất cả template, tối đa 100
func (s *TemplateService) List(ctx context.Context) ([]invoicemodels.InvoiceTemplate, error) {
	opts := mongoopts.Find().SetLimit(templateListLimit)
	return s.Find(ctx, bson.M{}, opts)
}

// GetById tìm template theo id dạng hex
func (s *TemplateService) GetById(ctx context.Context, id string) (*invoicemodels.InvoiceTemplate, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	tpl, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GetDefault trả về template đang được đánh dấu mặc định
func (s *TemplateService) GetDefault(ctx context.Context) (*invoicemodels.InvoiceTemplate, error) {
	tpl, err := s.FindOne(ctx, bson.M{"isDefault": true}, nil)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Delete xóa template theo id
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}
	return s.DeleteById(ctx, objID)
}
