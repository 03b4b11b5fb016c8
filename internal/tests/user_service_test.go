package tests

import (
	"testing"

	"qualigo/internal/domain"
	"qualigo/internal/mocks"
	"qualigo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserServiceRegister(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)
	userRepo.On("LoadUsers").Return([]domain.User{}, nil)

	var saved []domain.User
	userRepo.On("SaveUsers", mock.AnythingOfType("[]domain.User")).Run(func(args mock.Arguments) {
		saved = args.Get(0).([]domain.User)
	}).Return(nil)

	svc := service.NewUserService(userRepo)

	user, err := svc.Register(domain.User{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret",
		Role:     domain.RoleAdmin, // must be ignored
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Len(t, saved, 1)
	assert.Equal(t, "ana@example.com", saved[0].Email)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	existing := domain.User{ID: "u-1", Email: "ana@example.com"}

	userRepo := mocks.NewUserRepository(t)
	userRepo.On("LoadUsers").Return([]domain.User{existing}, nil)

	// SaveUsers must not be called, so the user list stays unchanged.
	svc := service.NewUserService(userRepo)

	_, err := svc.Register(domain.User{Email: "ana@example.com", Password: "other"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestUserServiceLogin(t *testing.T) {
	registered := domain.User{
		ID:       "u-1",
		Email:    "ana@example.com",
		Password: "secret",
		Role:     domain.RoleCustomer,
	}
	admin := domain.User{ID: "ADMIN-001", Email: service.AdminEmail, Role: domain.RoleAdmin}

	tests := []struct {
		name     string
		email    string
		password string
		wantID   string
		hasErr   bool
	}{
		{name: "exact match succeeds", email: "ana@example.com", password: "secret", wantID: "u-1"},
		{name: "wrong password rejected", email: "ana@example.com", password: "Secret", hasErr: true},
		{name: "unknown email rejected", email: "nobody@example.com", password: "secret", hasErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			userRepo := mocks.NewUserRepository(t)
			userRepo.On("LoadUsers").Return([]domain.User{admin, registered}, nil)

			svc := service.NewUserService(userRepo)

			user, err := svc.Login(testCase.email, testCase.password)
			if testCase.hasErr {
				assert.ErrorIs(t, err, service.ErrInvalidCredentials)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.wantID, user.ID)
		})
	}
}

func TestUserServiceLoginSeedsAdmin(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)
	userRepo.On("LoadUsers").Return([]domain.User{}, nil).Once()

	var seeded []domain.User
	userRepo.On("SaveUsers", mock.AnythingOfType("[]domain.User")).Run(func(args mock.Arguments) {
		seeded = args.Get(0).([]domain.User)
	}).Return(nil)
	userRepo.On("LoadUsers").Return(func() []domain.User { return seeded }, nil)

	svc := service.NewUserService(userRepo)

	admin, err := svc.Login(service.AdminEmail, "admin123")
	assert.NoError(t, err)
	assert.Equal(t, "ADMIN-001", admin.ID)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}

func TestUserServiceCurrentUser(t *testing.T) {
	user := &domain.User{ID: "u-1", Email: "ana@example.com"}

	userRepo := mocks.NewUserRepository(t)
	userRepo.On("SaveCurrentUser", user).Return(nil)
	userRepo.On("LoadCurrentUser").Return(user, nil)

	svc := service.NewUserService(userRepo)

	assert.NoError(t, svc.SetCurrentUser(user))
	got, err := svc.CurrentUser()
	assert.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
}

func TestUserServiceLogout(t *testing.T) {
	userRepo := mocks.NewUserRepository(t)
	userRepo.On("SaveCurrentUser", (*domain.User)(nil)).Return(nil)

	svc := service.NewUserService(userRepo)

	assert.NoError(t, svc.SetCurrentUser(nil))
}
