package service

import (
	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"
	"contractregistry/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type SupervisorRepository interface {
	FindByContract(contractID string) ([]*entity.ContractSupervisor, error)
	FindByID(id int64) (*entity.ContractSupervisor, error)
	Create(supervisor *entity.ContractSupervisor) error
	CreateAll(supervisors []*entity.ContractSupervisor) error
	Delete(supervisor *entity.ContractSupervisor) error
}

// DefaultSupervisorService persists supervisors immediately, unlike
// amendments and endorsements, which are staged until the contract save.
type DefaultSupervisorService struct {
	SupervisorRepo SupervisorRepository
	ContractRepo   ContractRepository
	Validate       *validator.Validate
}

func NewSupervisorService(supervisorRepo SupervisorRepository, contractRepo ContractRepository, validate *validator.Validate) *DefaultSupervisorService {
	return &DefaultSupervisorService{
		SupervisorRepo: supervisorRepo,
		ContractRepo:   contractRepo,
		Validate:       validate,
	}
}

func (s *DefaultSupervisorService) AddSupervisor(contractId string, req *contract.SupervisorRequest) (*contract.SupervisorResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	c, err := s.ContractRepo.FindByID(contractId)
	if err != nil {
		log.Errorf("failed to fetch contract %s: %v", contractId, err)
		return nil, apierror.InternalServerError
	}

	if c == nil {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	supervisor := &entity.ContractSupervisor{
		ID:                   uid.Generate(),
		ContractID:           c.ID,
		SupervisorName:       req.SupervisorName,
		SupervisorEmail:      req.SupervisorEmail,
		SupervisorNomination: req.SupervisorNomination,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err = s.SupervisorRepo.Create(supervisor); err != nil {
		log.Errorf("failed to save supervisor of contract %s: %v", contractId, err)
		return nil, apierror.InternalServerError
	}
	return toSupervisorResponse(supervisor), nil
}

func (s *DefaultSupervisorService) DeleteSupervisor(supervisorId int64) apierror.ErrorResponse {
	supervisor, err := s.SupervisorRepo.FindByID(supervisorId)
	if err != nil {
		log.Errorf("failed to fetch supervisor %d: %v", supervisorId, err)
		return apierror.InternalServerError
	}

	if supervisor == nil {
		return apierror.NotFoundError
	}

	if err = s.SupervisorRepo.Delete(supervisor); err != nil {
		log.Errorf("failed to delete supervisor %d: %v", supervisorId, err)
		return apierror.InternalServerError
	}
	return nil
}

func toSupervisorResponses(supervisors []*entity.ContractSupervisor) []*contract.SupervisorResponse {
	resp := make([]*contract.SupervisorResponse, len(supervisors))
	for i, sup := range supervisors {
		resp[i] = toSupervisorResponse(sup)
	}
	return resp
}

func toSupervisorResponse(s *entity.ContractSupervisor) *contract.SupervisorResponse {
	return &contract.SupervisorResponse{
		ID:                   s.ID,
		ContractID:           s.ContractID,
		SupervisorName:       s.SupervisorName,
		SupervisorEmail:      s.SupervisorEmail,
		SupervisorNomination: s.SupervisorNomination,
		CreatedAt:            utils.FormatEpoch(s.CreatedAt),
	}
}
