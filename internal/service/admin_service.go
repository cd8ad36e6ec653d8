package service

import (
	"context"
	"errors"
	"reflect"

	"golang.org/x/crypto/bcrypt"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/constants"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/infra/token"
	"github.com/northwestmeats/storefront/internal/model"
)

// invalidCredentialsMsg is deliberately identical for an unknown username and
// a wrong password.
const invalidCredentialsMsg = "invalid credentials"

type LoginResult struct {
	Token string
	Admin *model.Admin
}

// IAdminService manages admin identity.
//
// Errors:
//   - apperr.BadRequestCode 400: missing register/login fields
//   - apperr.ConflictCode 400: duplicate username or email on register
//   - apperr.UnauthenticatedCode 401: bad credentials on login
//   - apperr.NotFoundCode 404: token subject no longer exists
type IAdminService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Profile(ctx context.Context, adminID string) (*model.Admin, error)
}

type AdminService struct {
	admins     repository.AdminRepository
	tokenMaker token.Maker
}

func NewAdminService(admins repository.AdminRepository, tokenMaker token.Maker) IAdminService {
	if reflect.ValueOf(admins).IsNil() {
		panic("admin service initialization failed: admins cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("admin service initialization failed: tokenMaker cannot be nil")
	}
	return &AdminService{admins: admins, tokenMaker: tokenMaker}
}

func (s *AdminService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return apperr.New(apperr.BadRequestCode, "please provide username, email, and password")
	}

	exists, err := s.admins.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	if exists {
		return apperr.New(apperr.ConflictCode, "admin with this email or username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}

	admin := &model.Admin{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		// The unique indexes close the check-then-create window.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return apperr.New(apperr.ConflictCode, "admin with this email or username already exists")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *AdminService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperr.New(apperr.BadRequestCode, "please provide username and password")
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.UnauthenticatedCode, invalidCredentialsMsg)
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, invalidCredentialsMsg)
	}

	accessToken, _, err := s.tokenMaker.CreateToken(admin.ID, admin.Username, constants.AccessTokenDuration)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	return &LoginResult{Token: accessToken, Admin: admin}, nil
}

func (s *AdminService) Profile(ctx context.Context, adminID string) (*model.Admin, error) {
	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "admin not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return admin, nil
}
