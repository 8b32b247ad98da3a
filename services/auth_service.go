package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/radipleven/school-gradebook-project/apperr"
	"github.com/radipleven/school-gradebook-project/config"
	"github.com/radipleven/school-gradebook-project/models"
)

// Unknown email and wrong password must be indistinguishable: one message,
// and a bcrypt compare on both paths so they cost about the same.
const invalidCredentials = "invalid email or password"

// Hash of an unguessable throwaway value, compared against when the email
// does not resolve to a user.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type LoginResult struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	Token  string      `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, *apperr.Error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperr.Unauthorized(invalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	token, err := s.signToken(&u)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &LoginResult{UserID: u.ID, Role: u.Role, Token: token}, nil
}

func (s *AuthService) signToken(u *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role.String(),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.TokenTTL).Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(s.cfg.JWTSecret))
}
