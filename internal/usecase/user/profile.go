package user

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/user"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
)

type GetCurrentUser struct {
	repo domain.Repository
}

func NewGetCurrentUser(
	repo domain.Repository,
) *GetCurrentUser {
	return &GetCurrentUser{
		repo: repo,
	}
}

func (uc *GetCurrentUser) Execute(
	ctx context.Context,
	id uint,
) (*dto.UserDTO, error) {

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(*u)
	return &out, nil
}

type UpdateProfile struct {
	repo domain.Repository
}

func NewUpdateProfile(
	repo domain.Repository,
) *UpdateProfile {
	return &UpdateProfile{
		repo: repo,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	id uint,
	in domain.ProfileUpdate,
) (*dto.UserDTO, error) {

	in.Name = trimmed(in.Name)
	in.Avatar = trimmed(in.Avatar)
	in.Bio = trimmed(in.Bio)

	if in.Level != nil {
		level := strings.ToUpper(strings.TrimSpace(*in.Level))
		if !domain.ValidLevel(level) {
			return nil, httperr.ErrBusiness("invalid_level")
		}
		in.Level = &level
	}

	u, err := uc.repo.UpdateProfile(ctx, id, in)
	if err != nil {
		return nil, err
	}
	out := dto.ToUserDTO(*u)
	return &out, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
