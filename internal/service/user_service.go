package service

import (
	"errors"
	"log"
	"time"

	"qualigo/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// The distinguished admin account, lazily created on first login attempt.
const (
	AdminEmail    = "admin@qualigo.com"
	adminPassword = "admin123"
)

// UserService registers users and tracks the single current session.
// Passwords are stored and compared verbatim, preserved from the source demo
// as a flagged simplification, and login gives one undifferentiated answer
// for unknown email and wrong password.
type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Register rejects a duplicate email and forces the role to customer
// regardless of what the caller supplied.
func (s *UserService) Register(user domain.User) (*domain.User, error) {
	users, err := s.users.LoadUsers()
	if err != nil {
		return nil, err
	}
	for _, existing := range users {
		if existing.Email == user.Email {
			return nil, ErrEmailTaken
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Role = domain.RoleCustomer
	user.CreatedAt = time.Now()

	users = append(users, user)
	if err := s.users.SaveUsers(users); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Login(email, password string) (*domain.User, error) {
	if err := s.ensureAdmin(); err != nil {
		log.Printf("[qualigo] failed to seed admin user: %v", err)
	}

	users, err := s.users.LoadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

// SetCurrentUser replaces the singleton session pointer; nil logs out. The
// session has no expiry.
func (s *UserService) SetCurrentUser(user *domain.User) error {
	return s.users.SaveCurrentUser(user)
}

func (s *UserService) CurrentUser() (*domain.User, error) {
	return s.users.LoadCurrentUser()
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	return s.users.LoadUsers()
}

func (s *UserService) ensureAdmin() error {
	users, err := s.users.LoadUsers()
	if err != nil {
		return err
	}
	for _, user := range users {
		if user.Email == AdminEmail {
			return nil
		}
	}

	users = append(users, domain.User{
		ID:        "ADMIN-001",
		Name:      "Administrador QaliGo",
		Email:     AdminEmail,
		Password:  adminPassword,
		Phone:     "+1-555-0001",
		Address:   "QaliGo HQ",
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now(),
	})
	return s.users.SaveUsers(users)
}
