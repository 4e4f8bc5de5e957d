package user

import (
	"context"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/validators"
)

type Login struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
	jwt    *auth.JWTManager
}

func NewLogin(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	jwt *auth.JWTManager,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Execute answers invalid_credentials for both an unknown username and a
// wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*dto.AuthDTO, error) {

	u, err := uc.repo.GetByUsername(ctx, validators.NormalizeUsername(username))
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := uc.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return issue(uc.jwt, u)
}
