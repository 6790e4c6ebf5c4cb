// Package customersvc - Service thuê bao WiFi (customers).
package customersvc

import (
	"context"
	"regexp"

	basesvc "wifi_billing/internal/api/base/service"
	customerdto "wifi_billing/internal/api/customer/dto"
	customermodels "wifi_billing/internal/api/customer/models"
	"wifi_billing/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit giới hạn số bản ghi trả về khi list
const listLimit = 1000

// CustomerService xử lý CRUD và tìm kiếm thuê bao
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[customermodels.Customer]
}

// NewCustomerService tạo CustomerService trên collection được truyền vào
func NewCustomerService(col *mongo.Collection) *CustomerService {
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[customermodels.Customer](col),
	}
}

// Create tạo thuê bao mới với các giá trị mặc định
func (s *CustomerService) Create(ctx context.Context, input *customerdto.CustomerCreateInput) (*customermodels.Customer, error) {
	doc := customermodels.Customer{
		CustomerID:    input.CustomerID,
		Name:          input.Name,
		Address:       input.Address,
		Package:       input.Package,
		StartDate:     input.StartDate,
		BillingCycle:  input.BillingCycle,
		NextDueDate:   input.NextDueDate,
		PhoneWhatsapp: input.PhoneWhatsapp,
		WifiID:        input.WifiID,
		Status:        input.Status,
		Notes:         input.Notes,
	}
	if doc.BillingCycle == "" {
		doc.BillingCycle = customermodels.BillingCycleMonthly
	}
	if doc.Status == "" {
		doc.Status = customermodels.StatusActive
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// BuildListFilter xây filter tìm kiếm: substring không phân biệt hoa thường
// trên name/customerId/phoneWhatsapp/wifiId, kết hợp equality theo status
func BuildListFilter(q string, status string) bson.M {
	filter := bson.M{}

	if q != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"customerId": pattern},
			bson.M{"phoneWhatsapp": pattern},
			bson.M{"wifiId": pattern},
		}
	}

	if status != "" {
		filter["status"] = status
	}

	return filter
}

// List trả về danh sách thuê bao theo filter tìm kiếm, tối đa 1000 bản ghi
// theo thứ tự insert
func (s *CustomerService) List(ctx context.Context, q string, status string) ([]customermodels.Customer, error) {
	filter := BuildListFilter(q, status)
	opts := mongoopts.Find().SetLimit(listLimit)
	return s.Find(ctx, filter, opts)
}

// GetById tìm thuê bao theo id dạng hex, id không hợp lệ coi như không tìm thấy
func (s *CustomerService) GetById(ctx context.Context, id string) (*customermodels.Customer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	customer, err := s.FindOneById(ctx, objID)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update cập nhật một phần thuê bao, chỉ ghi các field khác nil
func (s *CustomerService) Update(ctx context.Context, id string, input *customerdto.CustomerUpdateInput) (*customermodels.Customer, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	set := bson.M{}
	if input.CustomerID != nil {
		set["customerId"] = *input.CustomerID
	}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Package != nil {
		set["package"] = *input.Package
	}
	if input.StartDate != nil {
		set["startDate"] = *input.StartDate
	}
	if input.BillingCycle != nil {
		set["billingCycle"] = *input.BillingCycle
	}
	if input.NextDueDate != nil {
		set["nextDueDate"] = *input.NextDueDate
	}
	if input.PhoneWhatsapp != nil {
		set["phoneWhatsapp"] = *input.PhoneWhatsapp
	}
	if input.WifiID != nil {
		set["wifiId"] = *input.WifiID
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	// Không có field nào để ghi thì trả về bản ghi hiện tại
	if len(set) == 0 {
		customer, err := s.FindOneById(ctx, objID)
		if err != nil {
			return nil, err
		}
		return &customer, nil
	}

	updated, err := s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa thuê bao theo id
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}
	return s.DeleteById(ctx, objID)
}
