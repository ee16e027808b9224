package service

import (
	"errors"

	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/domain/sqlite/repository"
	"contractregistry/cmd/internal/utils/uid"
	"contractregistry/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func init() {
	uid.Init(1)
}

func newTestValidate() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("modality", validators.IsModality)
	_ = validate.RegisterValidation("contractstatus", validators.IsContractStatus)
	_ = validate.RegisterValidation("amendmenttype", validators.IsAmendmentType)
	_ = validate.RegisterValidation("endorsementtype", validators.IsEndorsementType)
	_ = validate.RegisterValidation("doctype", validators.IsDocumentType)
	return validate
}

type fakeContractRepo struct {
	contracts []*entity.Contract
	saveErr   error
	createErr error
}

func (f *fakeContractRepo) FindAll(_ repository.ContractFilter) ([]*entity.Contract, error) {
	return f.contracts, nil
}

func (f *fakeContractRepo) FindByID(id string) (*entity.Contract, error) {
	for _, c := range f.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeContractRepo) Save(c *entity.Contract) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	for i, existing := range f.contracts {
		if existing.ID == c.ID {
			f.contracts[i] = c
			return nil
		}
	}
	f.contracts = append(f.contracts, c)
	return nil
}

func (f *fakeContractRepo) CreateAll(contracts []*entity.Contract) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.contracts = append(f.contracts, contracts...)
	return nil
}

func (f *fakeContractRepo) Delete(c *entity.Contract) error {
	for i, existing := range f.contracts {
		if existing.ID == c.ID {
			f.contracts = append(f.contracts[:i], f.contracts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeContractRepo) CountEndingBetween(from, to string) (int64, error) {
	var count int64
	for _, c := range f.contracts {
		if c.Status == entity.StatusActive && c.EndDate >= from && c.EndDate <= to {
			count++
		}
	}
	return count, nil
}

type fakeAmendmentRepo struct {
	amendments []*entity.ContractAmendment
	createErr  error
}

func (f *fakeAmendmentRepo) FindByContract(contractID string) ([]*entity.ContractAmendment, error) {
	var out []*entity.ContractAmendment
	for _, a := range f.amendments {
		if a.ContractID == contractID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAmendmentRepo) Create(a *entity.ContractAmendment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.amendments = append(f.amendments, a)
	return nil
}

type fakeEndorsementRepo struct {
	endorsements []*entity.ContractEndorsement
}

func (f *fakeEndorsementRepo) FindByContract(contractID string) ([]*entity.ContractEndorsement, error) {
	var out []*entity.ContractEndorsement
	for _, e := range f.endorsements {
		if e.ContractID == contractID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEndorsementRepo) Create(e *entity.ContractEndorsement) error {
	f.endorsements = append(f.endorsements, e)
	return nil
}

type fakeSupervisorRepo struct {
	supervisors []*entity.ContractSupervisor
	createErr   error
}

func (f *fakeSupervisorRepo) FindByContract(contractID string) ([]*entity.ContractSupervisor, error) {
	var out []*entity.ContractSupervisor
	for _, s := range f.supervisors {
		if s.ContractID == contractID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSupervisorRepo) FindByID(id int64) (*entity.ContractSupervisor, error) {
	for _, s := range f.supervisors {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupervisorRepo) Create(s *entity.ContractSupervisor) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.supervisors = append(f.supervisors, s)
	return nil
}

func (f *fakeSupervisorRepo) CreateAll(supervisors []*entity.ContractSupervisor) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.supervisors = append(f.supervisors, supervisors...)
	return nil
}

func (f *fakeSupervisorRepo) Delete(s *entity.ContractSupervisor) error {
	for i, existing := range f.supervisors {
		if existing.ID == s.ID {
			f.supervisors = append(f.supervisors[:i], f.supervisors[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeDocumentRepo struct {
	documents []*entity.ContractDocument
}

func (f *fakeDocumentRepo) FindByContract(contractID string) ([]*entity.ContractDocument, error) {
	var out []*entity.ContractDocument
	for _, d := range f.documents {
		if d.ContractID == contractID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) FindByID(id int64) (*entity.ContractDocument, error) {
	for _, d := range f.documents {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) CountByType(contractID string, docType entity.DocumentType) (int64, error) {
	var count int64
	for _, d := range f.documents {
		if d.ContractID == contractID && d.DocumentType == docType {
			count++
		}
	}
	return count, nil
}

func (f *fakeDocumentRepo) Create(d *entity.ContractDocument) error {
	f.documents = append(f.documents, d)
	return nil
}

func (f *fakeDocumentRepo) Delete(d *entity.ContractDocument) error {
	for i, existing := range f.documents {
		if existing.ID == d.ID {
			f.documents = append(f.documents[:i], f.documents[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeS3 struct {
	objects   map[string][]byte
	uploadErr error
	deleteErr error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) UploadFile(data []byte, key string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeS3) DeleteFile(key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

var errUniqueViolation = errors.New("constraint failed: UNIQUE constraint failed: contracts.contract_number")
