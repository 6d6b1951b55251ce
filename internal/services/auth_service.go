package services

import (
	"context"
	"errors"
	"time"

	"scene-backend/config"
	"scene-backend/internal/domain"
	"scene-backend/internal/repository"
	scene_errors "scene-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.JWTExpiryDays) * 24 * time.Hour,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

type LoginResult struct {
	AccessToken string
	User        UserInfo
}

// AccessClaims is the token payload: the store-assigned user identifier
// and the login email, plus the registered expiry.
type AccessClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Signup creates a user and returns a signed access token. The duplicate
// check and the insert are two separate store calls; two concurrent
// signups with the same email can both pass the check.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return "", scene_errors.ErrEmailTaken
	}
	if !errors.Is(err, scene_errors.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	newUser := &domain.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
	}

	id, err := s.users.Insert(ctx, newUser)
	if err != nil {
		return "", err
	}

	return s.newAccessToken(id.Hex(), newUser.Email)
}

// Login verifies the password against the stored hash and returns a signed
// token with the user's public fields. Unknown email and wrong password
// collapse into the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, scene_errors.ErrNotFound) {
			return LoginResult{}, scene_errors.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := comparePassword(u.Password, password); err != nil {
		return LoginResult{}, scene_errors.ErrInvalidCredentials
	}

	token, err := s.newAccessToken(u.ID.Hex(), u.Email)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		AccessToken: token,
		User: UserInfo{
			Name:  u.Name,
			Email: u.Email,
			ID:    u.ID.Hex(),
		},
	}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, scene_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, scene_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, scene_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, scene_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(id, email string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, scene_errors.ErrInvalidInput),
		errors.Is(err, scene_errors.ErrEmailTaken),
		errors.Is(err, scene_errors.ErrInvalidCredentials):
		return 400
	case errors.Is(err, scene_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, scene_errors.ErrNotFound):
		return 404
	default:
		return 500
	}
}

type ctxKey string

var claimsKey ctxKey = "auth_claims"

func WithClaimsContext(ctx context.Context, claims AccessClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (AccessClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(AccessClaims)
	return claims, ok
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
