package mappers

import (
	"fmt"

	"rannaghore/internal/domain/user"
	"rannaghore/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(entity *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Name:         entity.Name(),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *userMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, fmt.Errorf("user model is nil")
	}
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.Name,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

type OAuthAccountMapper interface {
	ToModel(entity *user.OAuthAccount) *models.OAuthAccountModel
	ToDomain(model *models.OAuthAccountModel) (*user.OAuthAccount, error)
}

type oauthAccountMapper struct{}

func NewOAuthAccountMapper() OAuthAccountMapper {
	return &oauthAccountMapper{}
}

func (m *oauthAccountMapper) ToModel(entity *user.OAuthAccount) *models.OAuthAccountModel {
	if entity == nil {
		return nil
	}
	return &models.OAuthAccountModel{
		ID:             entity.ID(),
		UserID:         entity.UserID(),
		Provider:       entity.Provider(),
		ProviderUserID: entity.ProviderUserID(),
		Email:          entity.Email(),
		CreatedAt:      entity.CreatedAt(),
	}
}

func (m *oauthAccountMapper) ToDomain(model *models.OAuthAccountModel) (*user.OAuthAccount, error) {
	if model == nil {
		return nil, fmt.Errorf("oauth account model is nil")
	}
	return user.ReconstructOAuthAccount(
		model.ID,
		model.UserID,
		model.Provider,
		model.ProviderUserID,
		model.Email,
		model.CreatedAt,
	)
}
