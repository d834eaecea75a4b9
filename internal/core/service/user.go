package service

import (
	"context"
	"time"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/util"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo}
}

func (u *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *UserService) UpdateByID(ctx context.Context, id string, patch *request.UserUpdateRequest) (domain.User, error) {
	user, err := u.repo.GetByID(ctx, id)

	if err != nil {
		return domain.User{}, err
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}

	if patch.Firstname != nil {
		user.Firstname = *patch.Firstname
	}

	if patch.Lastname != nil {
		user.Lastname = *patch.Lastname
	}

	if patch.Password != nil {
		encrypted, err := util.GenerateEncrypt(*patch.Password)

		if err != nil {
			return domain.User{}, err
		}

		user.EncryptedPassword = encrypted
	}

	user.UpdatedAt = time.Now()

	return u.repo.Update(ctx, user)
}
