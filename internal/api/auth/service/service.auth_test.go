// Package authsvc - Test phát hành và kiểm tra JWT.
package authsvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wifi_billing/internal/api/auth/models"
	"wifi_billing/internal/common"
)

func TestIssueAndVerifyToken(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", "")
	user := models.AuthUser{ID: primitive.NewObjectID()}

	token, err := svc.issueToken(user)
	if err != nil {
		t.Fatalf("issueToken lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("token rỗng")
	}

	subject, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken lỗi: %v", err)
	}
	if subject != user.ID.Hex() {
		t.Errorf("subject = %q, muốn %q", subject, user.ID.Hex())
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc := NewAuthService(nil, "secret-a", "")
	token, _ := svc.issueToken(models.AuthUser{ID: primitive.NewObjectID()})

	other := NewAuthService(nil, "secret-b", "")
	_, err := other.VerifyToken(token)
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("token ký sai secret phải trả ErrTokenInvalid, nhận: %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := NewAuthService(nil, "test-secret", "")
	_, err := svc.VerifyToken("không phải jwt")
	if !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("chuỗi rác phải trả ErrTokenInvalid, nhận: %v", err)
	}
}
