package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/pkg/jwt"
	"go-storefront/pkg/validator"

	"gorm.io/gorm"
)

// RegisterInput is the signup form
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=255"`
}

// LoginResponse carries the token plus the user for the client store
type LoginResponse struct {
	Token      string             `json:"token"`
	User       model.UserResponse `json:"user"`
	Privileges []string           `json:"privileges"`
}

type AuthService interface {
	Register(input *RegisterInput) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		tokens:   tokens,
	}
}

// Register creates a new account with the SELLER role: every registered user
// can buy, review, and sell.
func (s *authService) Register(input *RegisterInput) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	}

	role, err := s.roleRepo.FindByCode(model.RoleSeller)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    input.Email,
		FullName: input.FullName,
		RoleID:   &role.ID,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.buildLoginResponse(user)
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return s.buildLoginResponse(user)
}

func (s *authService) buildLoginResponse(user *model.User) (*LoginResponse, error) {
	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}

	privileges := user.PrivilegeCodes()
	token, err := s.tokens.Generate(user.ID, user.Email, user.FullName, roleCode, privileges)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:      token,
		User:       user.ToResponse(),
		Privileges: privileges,
	}, nil
}
