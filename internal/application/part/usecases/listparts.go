package usecases

import (
	"context"

	"github.com/camber-app/camber/internal/application/part/dto"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/shared/errors"
)

type ListPartsQuery struct {
	Page     int
	PageSize int
	Category string
	Search   string
	OrderBy  string
	Order    string
}

type ListPartsUseCase struct {
	partRepo part.Repository
}

func NewListPartsUseCase(partRepo part.Repository) *ListPartsUseCase {
	return &ListPartsUseCase{partRepo: partRepo}
}

func (uc *ListPartsUseCase) Execute(ctx context.Context, query ListPartsQuery) ([]*dto.PartDTO, int64, error) {
	if query.Category != "" && !part.Category(query.Category).IsValid() {
		return nil, 0, errors.NewValidationError("invalid category: " + query.Category)
	}

	parts, total, err := uc.partRepo.List(ctx, part.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Category: part.Category(query.Category),
		Search:   query.Search,
		OrderBy:  query.OrderBy,
		Order:    query.Order,
	})
	if err != nil {
		return nil, 0, errors.NewInternalError("failed to list parts")
	}
	return dto.ToPartDTOs(parts), total, nil
}
