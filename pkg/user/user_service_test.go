package user

import (
	"context"
	"testing"

	"github.com/rackiel/Foodify-sub001/domain"
	"github.com/rackiel/Foodify-sub001/entities"
	"github.com/rackiel/Foodify-sub001/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}))

	return NewUserService(NewUserRepository(db), jwt.NewJWTService(), nil)
}

func TestRegister(t *testing.T) {
	svc := setupTestService(t)

	profile, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Maria Santos",
		Email:    "maria@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleResident, profile.Role)
	assert.NotEmpty(t, profile.ID)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Other Maria",
		Email:    "maria@example.com",
		Password: "another-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := setupTestService(t)

	profile, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jose Rivera",
		Email:    "jose@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "jose@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, profile.ID, res.User.ID)

	// token round-trips through the JWT service
	userID, role, err := jwt.NewJWTService().GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, userID)
	assert.Equal(t, domain.RoleResident, role)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "jose@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMe(t *testing.T) {
	svc := setupTestService(t)

	profile, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ana Cruz",
		Email:    "ana@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	got, err := svc.Me(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", got.Name)

	_, err = svc.Me(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
