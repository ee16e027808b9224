package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/domain/policy"
	"contractregistry/cmd/internal/domain/sqlite/repository"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"
	"contractregistry/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type ContractRepository interface {
	FindAll(filter repository.ContractFilter) ([]*entity.Contract, error)
	FindByID(id string) (*entity.Contract, error)
	Save(contract *entity.Contract) error
	CreateAll(contracts []*entity.Contract) error
	Delete(contract *entity.Contract) error
	CountEndingBetween(from, to string) (int64, error)
}

type AmendmentRepository interface {
	FindByContract(contractID string) ([]*entity.ContractAmendment, error)
	Create(amendment *entity.ContractAmendment) error
}

type EndorsementRepository interface {
	FindByContract(contractID string) ([]*entity.ContractEndorsement, error)
	Create(endorsement *entity.ContractEndorsement) error
}

type DefaultContractService struct {
	ContractRepo    ContractRepository
	AmendmentRepo   AmendmentRepository
	EndorsementRepo EndorsementRepository
	SupervisorRepo  SupervisorRepository
	DocumentRepo    DocumentRepository
	Policy          *policy.ContractPolicy
	Validate        *validator.Validate
}

func NewContractService(
	contractRepo ContractRepository,
	amendmentRepo AmendmentRepository,
	endorsementRepo EndorsementRepository,
	supervisorRepo SupervisorRepository,
	documentRepo DocumentRepository,
	contractPolicy *policy.ContractPolicy,
	validate *validator.Validate,
) *DefaultContractService {
	return &DefaultContractService{
		ContractRepo:    contractRepo,
		AmendmentRepo:   amendmentRepo,
		EndorsementRepo: endorsementRepo,
		SupervisorRepo:  supervisorRepo,
		DocumentRepo:    documentRepo,
		Policy:          contractPolicy,
		Validate:        validate,
	}
}

// GetContracts serves the public listing. Anyone can call it; filters are
// optional and combined with AND.
func (s *DefaultContractService) GetContracts(filter repository.ContractFilter) ([]*contract.ContractResponse, apierror.ErrorResponse) {
	contracts, err := s.ContractRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch contracts: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ContractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toContractResponse(c)
	}
	return resp, nil
}

func (s *DefaultContractService) GetContractByID(contractId string) (*contract.ContractDetailResponse, apierror.ErrorResponse) {
	c, err := s.ContractRepo.FindByID(contractId)
	if err != nil {
		log.Errorf("failed to fetch contract %s: %v", contractId, err)
		return nil, apierror.InternalServerError
	}

	if c == nil {
		return nil, apierror.NotFoundError
	}

	amendments, err := s.AmendmentRepo.FindByContract(c.ID)
	if err != nil {
		log.Errorf("failed to fetch amendments of contract %s: %v", c.ID, err)
		return nil, apierror.InternalServerError
	}

	endorsements, err := s.EndorsementRepo.FindByContract(c.ID)
	if err != nil {
		log.Errorf("failed to fetch endorsements of contract %s: %v", c.ID, err)
		return nil, apierror.InternalServerError
	}

	supervisors, err := s.SupervisorRepo.FindByContract(c.ID)
	if err != nil {
		log.Errorf("failed to fetch supervisors of contract %s: %v", c.ID, err)
		return nil, apierror.InternalServerError
	}

	documents, err := s.DocumentRepo.FindByContract(c.ID)
	if err != nil {
		log.Errorf("failed to fetch documents of contract %s: %v", c.ID, err)
		return nil, apierror.InternalServerError
	}

	detail := &contract.ContractDetailResponse{
		ContractResponse: toContractResponse(c),
		Amendments:       toAmendmentResponses(amendments),
		Endorsements:     toEndorsementResponses(endorsements),
		Supervisors:      toSupervisorResponses(supervisors),
		Documents:        toDocumentResponses(documents),
	}
	return detail, nil
}

// CreateContract runs the staged save for a brand new contract. Staged
// supervisors are flushed here and only here; on edits they were already
// persisted through the direct endpoint.
func (s *DefaultContractService) CreateContract(actor *entity.User, req *contract.SaveContractRequest) (*contract.SaveContractResponse, apierror.ErrorResponse) {
	if apierr := s.checkSaveRequest(req); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	status := entity.NormalizeStatus(req.Status)
	if status == "" {
		status = entity.StatusActive
	}

	c := &entity.Contract{
		ID:                 uuid.NewString(),
		ContractNumber:     req.ContractNumber,
		GMSNumber:          req.GMSNumber,
		Modality:           entity.Modality(req.Modality),
		Object:             req.Object,
		ContractedCompany:  req.ContractedCompany,
		ContractValue:      req.ContractValue,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             status,
		ProcessNumber:      req.ProcessNumber,
		HasExtensionClause: req.HasExtensionClause,
		ManagerName:        req.ManagerName,
		ManagerEmail:       req.ManagerEmail,
		ManagerNomination:  req.ManagerNomination,
		CreatedBy:          actor.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.ContractRepo.Save(c); err != nil {
		if isDuplicateErr(err) {
			return nil, apierror.DuplicateContractNumberError
		}
		log.Errorf("failed to create contract: %v", err)
		return nil, apierror.InternalServerError
	}

	results := s.flushChildren(c.ID, req, true)
	return toSaveResponse(c, results), nil
}

// UpdateContract applies the form fields to an existing contract and flushes
// only the amendments and endorsements staged during this edit session.
func (s *DefaultContractService) UpdateContract(actor *entity.User, contractId string, req *contract.SaveContractRequest) (*contract.SaveContractResponse, apierror.ErrorResponse) {
	if apierr := s.checkSaveRequest(req); apierr != nil {
		return nil, apierr
	}

	c, err := s.ContractRepo.FindByID(contractId)
	if err != nil {
		log.Errorf("failed to fetch contract %s: %v", contractId, err)
		return nil, apierror.InternalServerError
	}

	if c == nil {
		return nil, apierror.NotFoundError
	}

	c.ContractNumber = req.ContractNumber
	c.GMSNumber = req.GMSNumber
	c.Modality = entity.Modality(req.Modality)
	c.Object = req.Object
	c.ContractedCompany = req.ContractedCompany
	c.ContractValue = req.ContractValue
	c.StartDate = req.StartDate
	c.EndDate = req.EndDate
	c.ProcessNumber = req.ProcessNumber
	c.HasExtensionClause = req.HasExtensionClause
	c.ManagerName = req.ManagerName
	c.ManagerEmail = req.ManagerEmail
	c.ManagerNomination = req.ManagerNomination
	if req.Status != "" {
		c.Status = entity.ContractStatus(req.Status)
	}
	c.UpdatedAt = utils.NowUTC()

	if err = s.ContractRepo.Save(c); err != nil {
		if isDuplicateErr(err) {
			return nil, apierror.DuplicateContractNumberError
		}
		log.Errorf("failed to update contract %s: %v", contractId, err)
		return nil, apierror.InternalServerError
	}

	results := s.flushChildren(c.ID, req, false)
	return toSaveResponse(c, results), nil
}

func (s *DefaultContractService) DeleteContract(contractId string) apierror.ErrorResponse {
	c, err := s.ContractRepo.FindByID(contractId)
	if err != nil {
		log.Errorf("failed to fetch contract %s: %v", contractId, err)
		return apierror.InternalServerError
	}

	if c == nil {
		return apierror.NotFoundError
	}

	// Children go away through the FK cascade, never through application code.
	if err = s.ContractRepo.Delete(c); err != nil {
		log.Errorf("failed to delete contract %s: %v", contractId, err)
		return apierror.InternalServerError
	}
	return nil
}

// GetExpiringCounts serves the dashboard counters: active contracts whose
// end date falls within 45, 60 and 90 days from today.
func (s *DefaultContractService) GetExpiringCounts() (*contract.ExpiringContractsResponse, apierror.ErrorResponse) {
	today := time.Now().UTC().Format(time.DateOnly)

	resp := &contract.ExpiringContractsResponse{}
	windows := []struct {
		days  int
		count *int64
	}{
		{90, &resp.Within90},
		{60, &resp.Within60},
		{45, &resp.Within45},
	}

	for _, w := range windows {
		limit := time.Now().UTC().AddDate(0, 0, w.days).Format(time.DateOnly)
		count, err := s.ContractRepo.CountEndingBetween(today, limit)
		if err != nil {
			log.Errorf("failed to count contracts ending within %d days: %v", w.days, err)
			return nil, apierror.InternalServerError
		}
		*w.count = count
	}
	return resp, nil
}

// checkSaveRequest validates the whole form upfront: field rules, the date
// ordering, and the per-type requirements of every staged child. Nothing is
// persisted until all of it passes.
func (s *DefaultContractService) checkSaveRequest(req *contract.SaveContractRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	for _, a := range req.Amendments {
		utils.Sanitize(a)
	}
	for _, e := range req.Endorsements {
		utils.Sanitize(e)
	}
	for _, sup := range req.Supervisors {
		utils.Sanitize(sup)
	}

	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	if req.EndDate < req.StartDate {
		return apierror.EndBeforeStartError
	}

	for _, a := range req.Amendments {
		if apierr := s.Policy.CheckAmendment(entity.AmendmentType(a.AmendmentType), a.NewValue, a.NewEndDate); apierr != nil {
			return apierr
		}
	}

	for _, e := range req.Endorsements {
		if apierr := s.Policy.CheckEndorsement(entity.EndorsementType(e.EndorsementType), e.NewValue, e.NewExecutionDate, e.AdjustmentIndex); apierr != nil {
			return apierr
		}
	}
	return nil
}

// flushChildren inserts the staged children one by one. Each insert is
// independent: a failure is logged, recorded in the result list, and the
// remaining children are still attempted.
func (s *DefaultContractService) flushChildren(contractID string, req *contract.SaveContractRequest, withSupervisors bool) []*contract.ChildResult {
	var results []*contract.ChildResult
	now := utils.NowUTC()

	for i, a := range req.Amendments {
		err := s.AmendmentRepo.Create(&entity.ContractAmendment{
			ID:            uid.Generate(),
			ContractID:    contractID,
			AmendmentType: entity.AmendmentType(a.AmendmentType),
			NewValue:      a.NewValue,
			NewEndDate:    a.NewEndDate,
			ProcessNumber: a.ProcessNumber,
			CreatedAt:     now,
		})
		if err != nil {
			log.Errorf("failed to save staged amendment %d of contract %s: %v", i, contractID, err)
		}
		results = append(results, &contract.ChildResult{Kind: "amendment", Index: i, Saved: err == nil})
	}

	for i, e := range req.Endorsements {
		err := s.EndorsementRepo.Create(&entity.ContractEndorsement{
			ID:               uid.Generate(),
			ContractID:       contractID,
			EndorsementType:  entity.EndorsementType(e.EndorsementType),
			NewValue:         e.NewValue,
			NewExecutionDate: e.NewExecutionDate,
			AdjustmentIndex:  e.AdjustmentIndex,
			ProcessNumber:    e.ProcessNumber,
			Description:      e.Description,
			CreatedAt:        now,
		})
		if err != nil {
			log.Errorf("failed to save staged endorsement %d of contract %s: %v", i, contractID, err)
		}
		results = append(results, &contract.ChildResult{Kind: "endorsement", Index: i, Saved: err == nil})
	}

	if !withSupervisors {
		return results
	}

	for i, sup := range req.Supervisors {
		err := s.SupervisorRepo.Create(&entity.ContractSupervisor{
			ID:                   uid.Generate(),
			ContractID:           contractID,
			SupervisorName:       sup.SupervisorName,
			SupervisorEmail:      sup.SupervisorEmail,
			SupervisorNomination: sup.SupervisorNomination,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
		if err != nil {
			log.Errorf("failed to save staged supervisor %d of contract %s: %v", i, contractID, err)
		}
		results = append(results, &contract.ChildResult{Kind: "supervisor", Index: i, Saved: err == nil})
	}
	return results
}

// isDuplicateErr classifies uniqueness violations so a repeated contract
// number gets its own error instead of a generic 500. The message check
// covers SQLite drivers that do not translate to gorm.ErrDuplicatedKey.
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}

func toSaveResponse(c *entity.Contract, results []*contract.ChildResult) *contract.SaveContractResponse {
	failures := 0
	for _, r := range results {
		if !r.Saved {
			failures++
		}
	}

	return &contract.SaveContractResponse{
		Contract:      toContractResponse(c),
		ChildResults:  results,
		ChildFailures: failures,
	}
}

func toContractResponse(c *entity.Contract) *contract.ContractResponse {
	return &contract.ContractResponse{
		ID:                 c.ID,
		ContractNumber:     c.ContractNumber,
		GMSNumber:          c.GMSNumber,
		Modality:           string(c.Modality),
		Object:             c.Object,
		ContractedCompany:  c.ContractedCompany,
		ContractValue:      c.ContractValue,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Status:             string(c.Status),
		ProcessNumber:      c.ProcessNumber,
		HasExtensionClause: c.HasExtensionClause,
		ManagerName:        c.ManagerName,
		ManagerEmail:       c.ManagerEmail,
		ManagerNomination:  c.ManagerNomination,
		CreatedAt:          utils.FormatEpoch(c.CreatedAt),
		UpdatedAt:          utils.FormatEpoch(c.UpdatedAt),
	}
}

// toAmendmentResponses labels each amendment by its position in the oldest
// first ordering: "1º Aditivo", "2º Aditivo" and so on.
func toAmendmentResponses(amendments []*entity.ContractAmendment) []*contract.AmendmentResponse {
	resp := make([]*contract.AmendmentResponse, len(amendments))
	for i, a := range amendments {
		resp[i] = &contract.AmendmentResponse{
			ID:            a.ID,
			Label:         fmt.Sprintf("%dº Aditivo", i+1),
			AmendmentType: string(a.AmendmentType),
			NewValue:      a.NewValue,
			NewEndDate:    a.NewEndDate,
			ProcessNumber: a.ProcessNumber,
			CreatedAt:     utils.FormatEpoch(a.CreatedAt),
		}
	}
	return resp
}

func toEndorsementResponses(endorsements []*entity.ContractEndorsement) []*contract.EndorsementResponse {
	resp := make([]*contract.EndorsementResponse, len(endorsements))
	for i, e := range endorsements {
		resp[i] = &contract.EndorsementResponse{
			ID:               e.ID,
			EndorsementType:  string(e.EndorsementType),
			NewValue:         e.NewValue,
			NewExecutionDate: e.NewExecutionDate,
			AdjustmentIndex:  e.AdjustmentIndex,
			ProcessNumber:    e.ProcessNumber,
			Description:      e.Description,
			CreatedAt:        utils.FormatEpoch(e.CreatedAt),
		}
	}
	return resp
}
