package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/infrastructure/aws/storage"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"
	"contractregistry/cmd/internal/utils/uid"

	"github.com/labstack/gommon/log"
)

type DocumentRepository interface {
	FindByContract(contractID string) ([]*entity.ContractDocument, error)
	FindByID(id int64) (*entity.ContractDocument, error)
	CountByType(contractID string, docType entity.DocumentType) (int64, error)
	Create(doc *entity.ContractDocument) error
	Delete(doc *entity.ContractDocument) error
}

type DefaultDocumentService struct {
	DocumentRepo DocumentRepository
	ContractRepo ContractRepository
	S3           storage.S3Client
}

func NewDocumentService(documentRepo DocumentRepository, contractRepo ContractRepository, s3 storage.S3Client) *DefaultDocumentService {
	return &DefaultDocumentService{
		DocumentRepo: documentRepo,
		ContractRepo: contractRepo,
		S3:           s3,
	}
}

// UploadDocument stores the PDF in the bucket first and the metadata row
// after. A failure between the two leaves an orphaned object behind, which
// is accepted; the row is the source of truth.
func (d *DefaultDocumentService) UploadDocument(actor *entity.User, contractId, docType string, fileHeader *multipart.FileHeader) (*contract.DocumentResponse, apierror.ErrorResponse) {
	if !entity.IsValidDocumentType(docType) {
		return nil, apierror.InvalidDocumentTypeError
	}

	if apierr := checkDocumentFile(fileHeader); apierr != nil {
		return nil, apierr
	}

	c, err := d.ContractRepo.FindByID(contractId)
	if err != nil {
		log.Errorf("failed to fetch contract %s: %v", contractId, err)
		return nil, apierror.InternalServerError
	}

	if c == nil {
		return nil, apierror.NotFoundError
	}

	data, apierr := readDocumentFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	key := fmt.Sprintf("%s/%d.%s", c.ID, now, ext)

	if err = d.S3.UploadFile(data, key); err != nil {
		log.Errorf("failed to upload document of contract %s: %v", c.ID, err)
		return nil, apierror.InternalServerError
	}

	label, apierr := d.sequenceLabel(c.ID, entity.DocumentType(docType))
	if apierr != nil {
		return nil, apierr
	}

	doc := &entity.ContractDocument{
		ID:             uid.Generate(),
		ContractID:     c.ID,
		DocumentType:   entity.DocumentType(docType),
		FileName:       fileHeader.Filename,
		FilePath:       key,
		FileSize:       fileHeader.Size,
		DocumentNumber: label,
		UploadedBy:     actor.ID,
		UploadedAt:     now,
	}

	if err = d.DocumentRepo.Create(doc); err != nil {
		log.Errorf("failed to save document row of contract %s: %v", c.ID, err)
		return nil, apierror.InternalServerError
	}
	return toDocumentResponse(doc), nil
}

func (d *DefaultDocumentService) DeleteDocument(documentId int64) apierror.ErrorResponse {
	doc, err := d.DocumentRepo.FindByID(documentId)
	if err != nil {
		log.Errorf("failed to fetch document %d: %v", documentId, err)
		return apierror.InternalServerError
	}

	if doc == nil {
		return apierror.NotFoundError
	}

	if err = d.S3.DeleteFile(doc.FilePath); err != nil {
		log.Errorf("failed to delete document object %s: %v", doc.FilePath, err)
		return apierror.InternalServerError
	}

	if err = d.DocumentRepo.Delete(doc); err != nil {
		log.Errorf("failed to delete document row %d: %v", documentId, err)
		return apierror.InternalServerError
	}
	return nil
}

// sequenceLabel numbers repeated uploads of the same type: the first carries
// no label, the second is "2º", and so on.
func (d *DefaultDocumentService) sequenceLabel(contractID string, docType entity.DocumentType) (string, apierror.ErrorResponse) {
	count, err := d.DocumentRepo.CountByType(contractID, docType)
	if err != nil {
		log.Errorf("failed to count documents of contract %s: %v", contractID, err)
		return "", apierror.InternalServerError
	}

	seq := count + 1
	if seq == 1 {
		return "", nil
	}
	return fmt.Sprintf("%dº", seq), nil
}

func checkDocumentFile(fileHeader *multipart.FileHeader) apierror.ErrorResponse {
	if fileHeader == nil {
		return apierror.MissingDocumentFileError
	}

	if strings.TrimSpace(fileHeader.Filename) == "" {
		return apierror.MissingFileNameError
	}

	if fileHeader.Size > contract.MaxDocumentSizeBytes {
		return apierror.NewFileTooLargeError(contract.MaxDocumentSizeBytes)
	}

	if ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidDocumentFileTypes); !ok {
		return apierror.NewInvalidFileExtError(ext)
	}
	return nil
}

func readDocumentFile(fileHeader *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open file: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read file: %v", err)
		return nil, apierror.InternalServerError
	}
	return data, nil
}

func toDocumentResponses(docs []*entity.ContractDocument) []*contract.DocumentResponse {
	resp := make([]*contract.DocumentResponse, len(docs))
	for i, doc := range docs {
		resp[i] = toDocumentResponse(doc)
	}
	return resp
}

func toDocumentResponse(doc *entity.ContractDocument) *contract.DocumentResponse {
	return &contract.DocumentResponse{
		ID:             doc.ID,
		ContractID:     doc.ContractID,
		DocumentType:   string(doc.DocumentType),
		FileName:       doc.FileName,
		FilePath:       doc.FilePath,
		FileSize:       doc.FileSize,
		DocumentNumber: doc.DocumentNumber,
		UploadedAt:     utils.FormatEpoch(doc.UploadedAt),
	}
}
