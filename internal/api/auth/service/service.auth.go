// Package authsvc - service đăng nhập Google và phát hành JWT.
package authsvc

import (
	"context"
	"errors"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authdto "wifi_billing/internal/api/auth/dto"
	"wifi_billing/internal/api/auth/models"
	basesvc "wifi_billing/internal/api/base/service"
	"wifi_billing/internal/common"
)

// tokenTTL là thời gian sống của JWT phát hành sau khi đăng nhập
const tokenTTL = 7 * 24 * time.Hour

// AuthService xác thực Google ID token và quản lý người dùng hệ thống
type AuthService struct {
	basesvc.BaseServiceMongoImpl[models.AuthUser]
	jwtSecret      string
	googleClientID string
}

// NewAuthService tạo AuthService với collection người dùng và cấu hình xác thực
func NewAuthService(col *mongo.Collection, jwtSecret, googleClientID string) *AuthService {
	return &AuthService{
		BaseServiceMongoImpl: *basesvc.NewBaseServiceMongo[models.AuthUser](col),
		jwtSecret:            jwtSecret,
		googleClientID:       googleClientID,
	}
}

// GoogleLogin xác thực Google ID token, upsert người dùng và phát hành JWT.
// Người dùng đầu tiên của hệ thống được gán vai trò admin.
func (s *AuthService) GoogleLogin(ctx context.Context, input *authdto.GoogleLoginInput) (*authdto.LoginResult, error) {
	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(input.Credential, []string{s.googleClientID}); err != nil {
		logrus.WithError(err).Warn("GoogleLogin: Google ID token không hợp lệ")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Google ID token không hợp lệ", common.StatusUnauthorized, err)
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.Credential)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Không đọc được thông tin từ ID token", common.StatusUnauthorized, err)
	}

	// Người dùng đầu tiên là admin, các người dùng sau là staff
	role := models.RoleStaff
	count, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	now := time.Now().UnixMilli()
	update := basesvc.UpdateData{
		Set: bson.M{
			"email":     claimSet.Email,
			"name":      claimSet.Name,
			"googleId":  claimSet.Sub,
			"avatarUrl": claimSet.Picture,
			"lastLogin": now,
		},
		SetOnInsert: bson.M{
			"role":     role,
			"isActive": true,
		},
	}
	user, err := s.Upsert(ctx, bson.M{"googleId": claimSet.Sub}, update)
	if err != nil {
		logrus.WithFields(logrus.Fields{"googleId": claimSet.Sub, "error": err.Error()}).Error("GoogleLogin: Lỗi upsert người dùng")
		return nil, err
	}

	if !user.IsActive {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "email": user.Email}).Info("GoogleLogin: Đăng nhập thành công")
	return &authdto.LoginResult{Token: token, User: user}, nil
}

// issueToken phát hành JWT HS256 với subject là id người dùng
func (s *AuthService) issueToken(user models.AuthUser) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không phát hành được token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifyToken kiểm tra JWT và trả về id người dùng (hex) trong subject
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenInvalid
	}
	return claims.Subject, nil
}

// GetByIdHex trả về người dùng theo id hex, sai định dạng coi như không tồn tại
func (s *AuthService) GetByIdHex(ctx context.Context, idHex string) (models.AuthUser, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return models.AuthUser{}, common.ErrNotFound
	}
	return s.FindOneById(ctx, id)
}
