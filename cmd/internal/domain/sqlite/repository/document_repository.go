package repository

import (
	"errors"

	"contractregistry/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultDocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DefaultDocumentRepository {
	return &DefaultDocumentRepository{db: db}
}

func (d *DefaultDocumentRepository) FindByContract(contractID string) ([]*entity.ContractDocument, error) {
	var docs []*entity.ContractDocument
	err := d.db.
		Where("contract_id = ?", contractID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (d *DefaultDocumentRepository) FindByID(id int64) (*entity.ContractDocument, error) {
	var doc entity.ContractDocument
	err := d.db.First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// CountByType backs the sequence label ("2º") of a new same-type upload.
func (d *DefaultDocumentRepository) CountByType(contractID string, docType entity.DocumentType) (int64, error) {
	var count int64
	err := d.db.Model(&entity.ContractDocument{}).
		Where("contract_id = ? AND document_type = ?", contractID, docType).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (d *DefaultDocumentRepository) Create(doc *entity.ContractDocument) error {
	return d.db.Create(doc).Error
}

func (d *DefaultDocumentRepository) Delete(doc *entity.ContractDocument) error {
	return d.db.Delete(doc).Error
}
