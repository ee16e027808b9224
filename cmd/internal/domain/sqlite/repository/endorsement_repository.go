package repository

import (
	"contractregistry/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEndorsementRepository struct {
	db *gorm.DB
}

func NewEndorsementRepository(db *gorm.DB) *DefaultEndorsementRepository {
	return &DefaultEndorsementRepository{db: db}
}

func (d *DefaultEndorsementRepository) FindByContract(contractID string) ([]*entity.ContractEndorsement, error) {
	var endorsements []*entity.ContractEndorsement
	err := d.db.
		Where("contract_id = ?", contractID).
		Order("created_at ASC").
		Find(&endorsements).Error
	if err != nil {
		return nil, err
	}
	return endorsements, nil
}

func (d *DefaultEndorsementRepository) Create(endorsement *entity.ContractEndorsement) error {
	return d.db.Create(endorsement).Error
}
