package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quizdesk/internal/config"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService interface {
	RegisterStudent(ctx context.Context, dto RegisterStudentDTO) (*User, error)
	Authenticate(ctx context.Context, dto LoginDTO) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

// RegisterStudent always creates a student account. Admin accounts are
// provisioned through EnsureAdmin at startup, never through the public
// registration surface.
func (s *userService) RegisterStudent(ctx context.Context, dto RegisterStudentDTO) (*User, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByUsername(dto.Username)
	if err != nil {
		log.WithError(err).Error("Failed to look up username")
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	rollNumber := dto.RollNumber
	branch := dto.Branch
	u := &User{
		ID:           uuid.New(),
		Username:     dto.Username,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: string(hash),
		Role:         RoleStudent,
		RollNumber:   &rollNumber,
		Branch:       &branch,
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("Student registered")
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, dto LoginDTO) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByUsername(dto.Username)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// EnsureAdmin seeds an admin account if it does not exist yet.
func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         RoleAdmin,
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to seed admin account")
		return err
	}

	log.WithField("username", username).Info("Admin account seeded")
	return nil
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		RollNumber: u.RollNumber,
		Branch:     u.Branch,
		CreatedAt:  u.CreatedAt,
	}
}
