package repository

import (
	"contractregistry/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultRoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *DefaultRoleRepository {
	return &DefaultRoleRepository{db: db}
}

func (r *DefaultRoleRepository) FindByUser(userID int64) ([]entity.Role, error) {
	var rows []entity.UserRole
	err := r.db.Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	roles := make([]entity.Role, len(rows))
	for i, row := range rows {
		roles[i] = row.Role
	}
	return roles, nil
}

func (r *DefaultRoleRepository) Grant(userID int64, role entity.Role) error {
	return r.db.Create(&entity.UserRole{UserID: userID, Role: role}).Error
}
