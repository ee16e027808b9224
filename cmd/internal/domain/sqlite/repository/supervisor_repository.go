package repository

import (
	"errors"

	"contractregistry/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSupervisorRepository struct {
	db *gorm.DB
}

func NewSupervisorRepository(db *gorm.DB) *DefaultSupervisorRepository {
	return &DefaultSupervisorRepository{db: db}
}

func (d *DefaultSupervisorRepository) FindByContract(contractID string) ([]*entity.ContractSupervisor, error) {
	var supervisors []*entity.ContractSupervisor
	err := d.db.
		Where("contract_id = ?", contractID).
		Order("created_at ASC").
		Find(&supervisors).Error
	if err != nil {
		return nil, err
	}
	return supervisors, nil
}

func (d *DefaultSupervisorRepository) FindByID(id int64) (*entity.ContractSupervisor, error) {
	var supervisor entity.ContractSupervisor
	err := d.db.First(&supervisor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &supervisor, nil
}

func (d *DefaultSupervisorRepository) Create(supervisor *entity.ContractSupervisor) error {
	return d.db.Create(supervisor).Error
}

// CreateAll bulk-inserts the supervisors the import reconciler resolved.
func (d *DefaultSupervisorRepository) CreateAll(supervisors []*entity.ContractSupervisor) error {
	if len(supervisors) == 0 {
		return nil
	}
	return d.db.CreateInBatches(supervisors, 200).Error
}

func (d *DefaultSupervisorRepository) Delete(supervisor *entity.ContractSupervisor) error {
	return d.db.Delete(supervisor).Error
}
