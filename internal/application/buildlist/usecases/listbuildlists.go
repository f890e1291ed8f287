package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/buildlist/dto"
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/shared/errors"
)

type ListBuildListsQuery struct {
	Page        int
	PageSize    int
	OwnerID     uint
	CarID       uint
	RequesterID uint
	OrderBy     string
	Order       string
}

type ListBuildListsUseCase struct {
	listRepo buildlist.Repository
}

func NewListBuildListsUseCase(listRepo buildlist.Repository) *ListBuildListsUseCase {
	return &ListBuildListsUseCase{listRepo: listRepo}
}

// Execute browses build lists. Unlisted lists appear only when the
// requester filters by their own ownership.
func (uc *ListBuildListsUseCase) Execute(ctx context.Context, query ListBuildListsQuery) ([]*dto.BuildListDTO, int64, error) {
	filter := buildlist.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		OwnerID:  query.OwnerID,
		CarID:    query.CarID,
		OrderBy:  query.OrderBy,
		Order:    query.Order,
	}
	if query.OwnerID == 0 || query.OwnerID != query.RequesterID {
		filter.Visibility = buildlist.VisibilityPublic
	}

	lists, total, err := uc.listRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list build lists")
	}
	return dto.ToBuildListDTOs(lists), total, nil
}
