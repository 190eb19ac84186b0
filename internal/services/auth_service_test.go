package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mizuki-dev/task-tracker-api/internal/models"
	"github.com/mizuki-dev/task-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewAuthService(repository.NewUserRepository(db)), db
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	// The stored hash verifies against the original password
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "other@x.com", Password: "pw2"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(RegisterInput{Username: "bob", Email: "a@x.com", Password: "pw2"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := setupAuthService(t)

	for _, input := range []RegisterInput{
		{Username: "", Email: "a@x.com", Password: "pw1"},
		{Username: "alice", Email: "", Password: "pw1"},
		{Username: "alice", Email: "a@x.com", Password: ""},
		{Username: "   ", Email: "a@x.com", Password: "pw1"},
	} {
		_, err := svc.Register(input)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

// Both failure modes collapse into ErrInvalidCredentials.
func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(LoginInput{Username: "alice", Password: "nope"})
	_, unknownUser := svc.Login(LoginInput{Username: "nobody", Password: "pw1"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthService(t)

	registered, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
}
