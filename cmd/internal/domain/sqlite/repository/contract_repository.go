package repository

import (
	"errors"
	"strings"

	"contractregistry/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// ContractFilter narrows the public listing. Zero values mean "no filter".
type ContractFilter struct {
	Search       string
	Status       string
	Modality     string
	StartDateMin string
}

type DefaultContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *DefaultContractRepository {
	return &DefaultContractRepository{db: db}
}

func (d *DefaultContractRepository) FindAll(filter ContractFilter) ([]*entity.Contract, error) {
	q := d.db.Model(&entity.Contract{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(object) LIKE ? OR LOWER(contracted_company) LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Modality != "" {
		q = q.Where("modality = ?", filter.Modality)
	}
	if filter.StartDateMin != "" {
		q = q.Where("start_date >= ?", filter.StartDateMin)
	}

	var contracts []*entity.Contract
	err := q.Order("created_at DESC").Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (d *DefaultContractRepository) FindByID(id string) (*entity.Contract, error) {
	var contract entity.Contract
	err := d.db.Where("id = ?", id).First(&contract).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (d *DefaultContractRepository) Save(contract *entity.Contract) error {
	return d.db.Save(contract).Error
}

// CreateAll bulk-inserts the accepted import rows in one statement batch.
// IDs are assigned by the caller before the insert, so reconciliation can
// match them back by contract number afterwards.
func (d *DefaultContractRepository) CreateAll(contracts []*entity.Contract) error {
	if len(contracts) == 0 {
		return nil
	}
	return d.db.CreateInBatches(contracts, 200).Error
}

func (d *DefaultContractRepository) Delete(contract *entity.Contract) error {
	return d.db.Delete(contract).Error
}

// CountEndingBetween counts active contracts whose end date falls in the
// inclusive [from, to] window, both "2006-01-02" strings.
func (d *DefaultContractRepository) CountEndingBetween(from, to string) (int64, error) {
	var count int64
	err := d.db.Model(&entity.Contract{}).
		Where("status = ?", entity.StatusActive).
		Where("end_date >= ? AND end_date <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
