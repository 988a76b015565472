package persistent

import (
	"lucky-money/pkg/models"
	"lucky-money/services/auth/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Image:         m.Image,
		Password:      m.Password,
		GoogleSubject: m.GoogleSubject,
		Role:          entity.UserRole(m.Role),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:            e.ID,
		Email:         e.Email,
		Name:          e.Name,
		Image:         e.Image,
		Password:      e.Password,
		GoogleSubject: e.GoogleSubject,
		Role:          models.UserRole(e.Role),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
