package user

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
	"github.com/BruksfildServices01/zaban-academy/internal/validators"
)

const (
	minPasswordLen = 6
	minUsernameLen = 3
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Username string
	Password string
	Name     string
	Phone    string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
	jwt    *auth.JWTManager
}

func NewRegister(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	jwt *auth.JWTManager,
) *Register {
	return &Register{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*dto.AuthDTO, error) {

	username := validators.NormalizeUsername(in.Username)
	if utf8.RuneCountInString(username) < minUsernameLen || strings.ContainsAny(username, " \t\n") {
		return nil, httperr.ErrBusiness("invalid_username")
	}

	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return nil, httperr.ErrBusiness("weak_password")
	}

	phone := ""
	if raw := strings.TrimSpace(in.Phone); raw != "" {
		phone = validators.NormalizePhone(raw)
		if phone == "" {
			return nil, httperr.ErrBusiness("invalid_phone")
		}
	} else if validators.IsMobile(username) {
		phone = username
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         auth.RoleUser,
		Name:         strings.TrimSpace(in.Name),
		Phone:        phone,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return issue(uc.jwt, u)
}

func issue(jwt *auth.JWTManager, u *models.User) (*dto.AuthDTO, error) {
	token, err := jwt.GenerateAccessToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AuthDTO{
		User:  dto.ToUserDTO(*u),
		Token: token,
	}, nil
}
