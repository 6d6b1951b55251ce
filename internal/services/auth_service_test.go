package services

import (
	"context"
	"testing"

	"scene-backend/config"
	"scene-backend/internal/domain"
	scene_errors "scene-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]domain.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return domain.User{}, scene_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	u.ID = id
	f.users[u.Email] = *u
	return id, nil
}

func newTestAuthService(t *testing.T, repo *fakeUserRepo) *AuthService {
	t.Helper()
	return NewAuthService(repo, &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiryDays: 7,
	})
}

func TestSignup_IssuesTokenWithStoreAssignedID(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(t, repo)

	token, err := s.Signup(context.Background(), SignupInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ParseAccessToken(token)
	require.NoError(t, err)

	stored, ok := repo.users["a@x.com"]
	require.True(t, ok)
	assert.Equal(t, stored.ID.Hex(), claims.ID)
	assert.NotEqual(t, primitive.NilObjectID.Hex(), claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSignup_StoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(t, repo)

	_, err := s.Signup(context.Background(), SignupInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	stored := repo.users["a@x.com"]
	assert.NotEqual(t, "secret-password", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-password")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(t, repo)

	in := SignupInput{Name: "A", Email: "a@x.com", Password: "p"}
	_, err := s.Signup(context.Background(), in)
	require.NoError(t, err)

	_, err = s.Signup(context.Background(), in)
	assert.ErrorIs(t, err, scene_errors.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(t, repo)

	_, err := s.Signup(context.Background(), SignupInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	res, err := s.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)

	assert.Equal(t, "A", res.User.Name)
	assert.Equal(t, "a@x.com", res.User.Email)
	assert.Equal(t, repo.users["a@x.com"].ID.Hex(), res.User.ID)

	claims, err := s.ParseAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(t, repo)

	_, err := s.Signup(context.Background(), SignupInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, scene_errors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	s := newTestAuthService(t, newFakeUserRepo())

	// Same error as a wrong password: no user-enumeration distinction.
	_, err := s.Login(context.Background(), "nobody@x.com", "p")
	assert.ErrorIs(t, err, scene_errors.ErrInvalidCredentials)
}

func TestParseAccessToken_RejectsEmpty(t *testing.T) {
	s := newTestAuthService(t, newFakeUserRepo())

	_, err := s.ParseAccessToken("")
	assert.ErrorIs(t, err, scene_errors.ErrUnauthorized)
}

func TestParseAccessToken_RejectsForeignSecret(t *testing.T) {
	repo := newFakeUserRepo()
	s := newTestAuthService(t, repo)

	other := NewAuthService(repo, &config.Config{JWTSecret: "other-secret", JWTExpiryDays: 7})
	token, err := other.Signup(context.Background(), SignupInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = s.ParseAccessToken(token)
	assert.ErrorIs(t, err, scene_errors.ErrUnauthorized)
}

func TestParseAccessToken_RejectsExpired(t *testing.T) {
	repo := newFakeUserRepo()
	expired := NewAuthService(repo, &config.Config{JWTSecret: "test-secret", JWTExpiryDays: -1})

	token, err := expired.Signup(context.Background(), SignupInput{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = expired.ParseAccessToken(token)
	assert.ErrorIs(t, err, scene_errors.ErrUnauthorized)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(scene_errors.ErrEmailTaken))
	assert.Equal(t, 400, HTTPStatus(scene_errors.ErrInvalidCredentials))
	assert.Equal(t, 400, HTTPStatus(scene_errors.ErrInvalidInput))
	assert.Equal(t, 401, HTTPStatus(scene_errors.ErrUnauthorized))
	assert.Equal(t, 404, HTTPStatus(scene_errors.ErrNotFound))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
}
