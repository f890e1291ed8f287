package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/user/dto"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/shared/errors"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
	Email    string
	Status   string
	Role     string
	OrderBy  string
	Order    string
}

type ListUsersUseCase struct {
	userRepo user.Repository
}

func NewListUsersUseCase(userRepo user.Repository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserDTO, int64, error) {
	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Email:    query.Email,
		Status:   query.Status,
		Role:     query.Role,
		OrderBy:  query.OrderBy,
		Order:    query.Order,
	})
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list users")
	}
	return dto.ToUserDTOs(users), total, nil
}
