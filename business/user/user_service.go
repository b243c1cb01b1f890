package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partsHub/domain"
	"partsHub/pkg/logger"
	"partsHub/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

var validRoles = map[string]bool{
	RoleBuyer:  true,
	RoleSeller: true,
	RoleAdmin:  true,
}

const tokenTTL = 24 * time.Hour

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	role := user.Role
	if role == "" {
		role = RoleBuyer
	}
	if !validRoles[role] || role == RoleAdmin {
		logger.Error("Invalid role on registration", "role", role)
		return domain.User{}, errors.New("invalid role")
	}

	if role == RoleSeller && user.StoreName == "" {
		return domain.User{}, errors.New("store name is required for sellers")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName:  user.FullName,
		Email:     user.Email,
		Password:  string(passwordHash),
		Role:      role,
		StoreName: user.StoreName,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user")
		return domain.User{}, err
	}

	logger.Info("user registered", "user_id", newUser.ID, "role", newUser.Role)

	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", domain.User{}, errors.New("invalid email format")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("user not found for login", err)
		return "", domain.User{}, errors.New("invalid email or password")
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		logger.Error("password mismatch on login")
		return "", domain.User{}, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, tokenTTL)
	if err != nil {
		logger.Error("failed to generate token", err)
		return "", domain.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	if id == 0 {
		return domain.User{}, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.userRepo.FindAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, user *domain.User) (domain.User, error) {
	if user.ID == 0 {
		return domain.User{}, errors.New("invalid user id")
	}

	existing, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		logger.Error("user not found", err)
		return domain.User{}, errors.New("user not found")
	}

	if user.FullName != "" {
		existing.FullName = user.FullName
	}
	if user.StoreName != "" {
		existing.StoreName = user.StoreName
	}
	if user.Password != "" {
		hash, err := utils.HashPassword(user.Password)
		if err != nil {
			return domain.User{}, errors.New("failed to hash password")
		}
		existing.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, &existing); err != nil {
		logger.Error("failed to update user", err)
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return existing, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("invalid user id")
	}

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return errors.New("user not found")
	}

	return s.userRepo.Delete(ctx, id)
}
