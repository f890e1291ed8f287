package mappers

import (
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
	"github.com/camber-app/camber/internal/shared/authorization"
)

// UserMapper converts between user domain entities and persistence models.
type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.Status,
		model.EmailVerified,
		model.VerificationToken,
		model.VerificationExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:                    entity.ID(),
		Email:                 entity.Email(),
		Name:                  entity.Name(),
		PasswordHash:          entity.PasswordHash(),
		Role:                  string(entity.Role()),
		Status:                entity.Status(),
		EmailVerified:         entity.EmailVerified(),
		VerificationToken:     entity.VerificationToken(),
		VerificationExpiresAt: entity.VerificationExpiresAt(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}

func (m *UserMapper) ToEntities(ms []*models.UserModel) []*user.User {
	entities := make([]*user.User, 0, len(ms))
	for _, model := range ms {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
