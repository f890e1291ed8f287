package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/buildlist/dto"
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/shared/errors"
)

type GetBuildListUseCase struct {
	listRepo buildlist.Repository
}

func NewGetBuildListUseCase(listRepo buildlist.Repository) *GetBuildListUseCase {
	return &GetBuildListUseCase{listRepo: listRepo}
}

// Execute loads a build list with its items. Unlisted lists stay
// reachable by direct ID; only browsing hides them.
func (uc *GetBuildListUseCase) Execute(ctx context.Context, listID uint) (*dto.BuildListDTO, error) {
	list, err := uc.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load build list")
	}
	if list == nil {
		return nil, errors.NewNotFoundError("build list not found")
	}
	return dto.ToBuildListDTO(list), nil
}
