package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightpath/care-api/internal/config"
	"github.com/brightpath/care-api/internal/model"
	"github.com/brightpath/care-api/internal/repository"
	pkgauth "github.com/brightpath/care-api/pkg/auth"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func newTestService(users repository.UserRepository) *Service {
	jwtSvc := pkgauth.NewJWTService(config.JWTConfig{Secret: "test-secret", ExpiryMinutes: 60})
	return NewService(users, jwtSvc)
}

func registerReq(role string) *model.RegisterRequest {
	return &model.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
		Role:     role,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users)

	tokens, err := svc.Register(context.Background(), registerReq(model.RoleParent))
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, "bearer", tokens.TokenType)

	// The stored password is hashed, never the plaintext.
	stored := users.users["priya@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.False(t, stored.Verified)

	loginTokens, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginTokens.AccessToken)
}

func TestRegisterAdminIsVerified(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users)

	_, err := svc.Register(context.Background(), registerReq(model.RoleHospitalAdmin))
	require.NoError(t, err)
	assert.True(t, users.users["priya@example.com"].Verified)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq("wizard"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq(model.RoleParent))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq(model.RoleDoctor))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerReq(model.RoleParent))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	tokens, err := svc.Register(context.Background(), registerReq(model.RoleParent))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, model.RoleParent, claims.Role)
}
