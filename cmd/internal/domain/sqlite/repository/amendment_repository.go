package repository

import (
	"contractregistry/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultAmendmentRepository struct {
	db *gorm.DB
}

func NewAmendmentRepository(db *gorm.DB) *DefaultAmendmentRepository {
	return &DefaultAmendmentRepository{db: db}
}

// FindByContract returns amendments oldest first, the order their ordinal
// labels are derived from.
func (d *DefaultAmendmentRepository) FindByContract(contractID string) ([]*entity.ContractAmendment, error) {
	var amendments []*entity.ContractAmendment
	err := d.db.
		Where("contract_id = ?", contractID).
		Order("created_at ASC").
		Find(&amendments).Error
	if err != nil {
		return nil, err
	}
	return amendments, nil
}

func (d *DefaultAmendmentRepository) Create(amendment *entity.ContractAmendment) error {
	return d.db.Create(amendment).Error
}
