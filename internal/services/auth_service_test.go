package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"travelmitr/internal/domain"
)

func newAuthService(m *memStore) AuthService {
	return AuthService{
		Users:  memUsers{m},
		Tokens: Tokens{Secret: []byte("test-secret"), TTL: time.Hour},
		Cost:   bcrypt.MinCost,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	m := newMemStore()
	svc := newAuthService(m)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "Asha@Example.com", Password: "s3cret", Phone: "9800000000"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "asha@example.com", reg.User.Email)
	assert.NotEqual(t, "s3cret", m.users[0].PasswordHash)

	uid, err := svc.Tokens.Parse(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, uid)

	login, err := svc.Login(ctx, LoginInput{Email: "asha@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	_, err = svc.Register(ctx, RegisterInput{Name: "Asha 2", Email: "asha@example.com", Password: "x", Phone: "1"})
	assert.True(t, domain.IsConflict(err))
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := newAuthService(newMemStore())
	_, err := svc.Register(context.Background(), RegisterInput{Name: "Asha", Email: "a@b.c", Password: "pw"})
	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)
}

func TestLoginInvalidCredentials(t *testing.T) {
	m := newMemStore()
	svc := newAuthService(m)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "right", Phone: "1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "asha@example.com", Password: "wrong"})
	assert.True(t, domain.IsUnauthorized(err))

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "right"})
	assert.True(t, domain.IsUnauthorized(err))
	assert.Equal(t, invalidCredentials, err.Error())

	_, err = svc.Login(ctx, LoginInput{Email: "asha@example.com"})
	assert.True(t, domain.IsValidation(err))
}

func TestTokensRejectExpiredAndForeign(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tokens := Tokens{Secret: []byte("k1"), TTL: time.Hour, Now: func() time.Time { return issued }}
	raw, err := tokens.Issue(5)
	require.NoError(t, err)

	later := tokens
	later.Now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = later.Parse(raw)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Equal(t, "token expired", err.Error())

	foreign := Tokens{Secret: []byte("k2"), TTL: time.Hour, Now: tokens.Now}
	_, err = foreign.Parse(raw)
	assert.True(t, domain.IsUnauthorized(err))

	_, err = tokens.Parse("not-a-jwt")
	assert.True(t, domain.IsUnauthorized(err))

	_, err = Tokens{}.Issue(5)
	assert.Equal(t, domain.KindInternal, domain.Kind(err))
}

func TestProfileUpdate(t *testing.T) {
	m := newMemStore()
	svc := newAuthService(m)
	ctx := context.Background()
	reg, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "pw", Phone: "1"})
	require.NoError(t, err)

	p, err := svc.UpdateProfile(ctx, reg.User.ID, ProfileInput{Name: " Asha R ", Phone: "2"})
	require.NoError(t, err)
	assert.Equal(t, "Asha R", p.Name)
	assert.Equal(t, "2", p.Phone)
	assert.Equal(t, "asha@example.com", p.Email)

	_, err = svc.UpdateProfile(ctx, 99, ProfileInput{Name: "x", Phone: "y"})
	assert.True(t, domain.IsNotFound(err))

	_, err = svc.UpdateProfile(ctx, reg.User.ID, ProfileInput{Phone: "y"})
	assert.True(t, domain.IsValidation(err))
}
