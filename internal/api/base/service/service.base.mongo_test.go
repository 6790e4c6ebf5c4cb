// Package basesvc - Test chuyển đổi dữ liệu update.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PassthroughStruct(t *testing.T) {
	in := &UpdateData{Set: map[string]interface{}{"name": "Budi"}}
	out, err := ToUpdateData(in)
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out != in {
		t.Error("con trỏ *UpdateData phải được trả về nguyên vẹn")
	}
}

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	out, err := ToUpdateData(bson.M{"status": "active"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out.Set["status"] != "active" {
		t.Errorf("map thường phải được wrap vào $set, nhận %v", out.Set)
	}
	if out.Unset != nil || out.SetOnInsert != nil {
		t.Error("map thường không được sinh $unset/$setOnInsert")
	}
}

func TestToUpdateData_MapWithOperators(t *testing.T) {
	out, err := ToUpdateData(bson.M{
		"$set":   map[string]interface{}{"status": "sent"},
		"$unset": map[string]interface{}{"notes": ""},
	})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if out.Set["status"] != "sent" {
		t.Errorf("$set không được giữ nguyên, nhận %v", out.Set)
	}
	if _, ok := out.Unset["notes"]; !ok {
		t.Errorf("$unset không được giữ nguyên, nhận %v", out.Unset)
	}
}
