// Package models - InvoiceTemplate thuộc domain invoice (invoice_templates).
// Template HTML với placeholder {{...}}, tối đa một template là mặc định.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceTemplate là template HTML để render hóa đơn
type InvoiceTemplate struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	HTMLContent string             `json:"htmlContent" bson:"htmlContent"`
	IsDefault   bool               `json:"isDefault" bson:"isDefault"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}
