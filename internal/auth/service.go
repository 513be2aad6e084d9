package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carewell-health/carewell-backend/internal/users"
	pkgauth "github.com/carewell-health/carewell-backend/pkg/auth"
	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/carewell-health/carewell-backend/pkg/db"
	"github.com/carewell-health/carewell-backend/pkg/db/models"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	pkgerrors "github.com/carewell-health/carewell-backend/pkg/errors"
	"github.com/carewell-health/carewell-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service handles registration, credential checks and session lookups.
type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*SessionDTO, error)
	Login(ctx context.Context, dto LoginDTO) (*SessionDTO, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error)
}

type userStore interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type service struct {
	users  userStore
	jwtCfg config.JWTConfig
	pwCfg  config.PasswordConfig
	now    func() time.Time
}

// NewService wires the auth workflow.
func NewService(userRepo userStore, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &service{
		users:  userRepo,
		jwtCfg: jwtCfg,
		pwCfg:  pwCfg,
		now:    time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*SessionDTO, error) {
	role := enums.RolePatient
	if dto.Role != "" {
		parsed, err := enums.ParseRole(dto.Role)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
		role = parsed
	}

	hash, err := security.HashPassword(dto.Password, s.pwCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         dto.Name,
		Age:          dto.Age,
		Email:        dto.Email,
		Phone:        dto.Phone,
		Address:      dto.Address,
		AadharCard:   dto.AadharCard,
		PhotoURL:     dto.PhotoURL,
		Role:         role,
		PasswordHash: hash,
		Consent:      dto.Consent,
	})
	if err != nil {
		// The unique indexes decide the winner under concurrent signups.
		if db.IsUniqueViolation(err, "ux_users_email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		if db.IsUniqueViolation(err, "ux_users_aadhar_card") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "aadhar card already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return s.session(user)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*SessionDTO, error) {
	// Unknown email and wrong password must be indistinguishable.
	invalid := pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")

	user, err := s.users.FindByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	ok, err := security.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, invalid
	}

	return s.session(user)
}

func (s *service) CurrentUser(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}
	return users.FromModel(user), nil
}

func (s *service) session(user *models.User) (*SessionDTO, error) {
	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return &SessionDTO{
		User:  users.FromModel(user),
		Token: token,
	}, nil
}
