package service

import (
	"testing"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContractService() (*DefaultContractService, *fakeContractRepo, *fakeAmendmentRepo, *fakeSupervisorRepo) {
	contractRepo := &fakeContractRepo{}
	amendmentRepo := &fakeAmendmentRepo{}
	endorsementRepo := &fakeEndorsementRepo{}
	supervisorRepo := &fakeSupervisorRepo{}
	documentRepo := &fakeDocumentRepo{}

	svc := NewContractService(
		contractRepo, amendmentRepo, endorsementRepo,
		supervisorRepo, documentRepo,
		policy.NewContractPolicy(), newTestValidate(),
	)
	return svc, contractRepo, amendmentRepo, supervisorRepo
}

func validSaveRequest() *contract.SaveContractRequest {
	return &contract.SaveContractRequest{
		ContractNumber:    "001/2024",
		Modality:          "Pregão",
		Object:            "Serviços de limpeza",
		ContractedCompany: "Empresa Exemplo LTDA",
		ContractValue:     120000,
		StartDate:         "2024-01-01",
		EndDate:           "2024-12-31",
		ProcessNumber:     "12345.000001/2024-01",
	}
}

func TestCreateContract(t *testing.T) {
	actor := &entity.User{ID: 10}

	t.Run("persists staged amendments and supervisors", func(t *testing.T) {
		svc, contractRepo, amendmentRepo, supervisorRepo := newTestContractService()

		newValue := 150000.0
		req := validSaveRequest()
		req.Amendments = []*contract.StagedAmendment{
			{AmendmentType: "Aditivo de Valor", NewValue: &newValue, ProcessNumber: "p-1"},
			{AmendmentType: "Aditivo de Prazo", NewEndDate: "2025-06-30", ProcessNumber: "p-2"},
		}
		req.Supervisors = []*contract.StagedSupervisor{
			{SupervisorName: "Maria da Silva"},
		}

		resp, apierr := svc.CreateContract(actor, req)
		require.Nil(t, apierr)
		require.NotNil(t, resp)

		assert.NotEmpty(t, resp.Contract.ID)
		assert.Equal(t, "Vigente", resp.Contract.Status)
		assert.Len(t, contractRepo.contracts, 1)
		assert.Len(t, amendmentRepo.amendments, 2)
		assert.Len(t, supervisorRepo.supervisors, 1)
		assert.Len(t, resp.ChildResults, 3)
		assert.Equal(t, 0, resp.ChildFailures)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		svc, _, _, _ := newTestContractService()

		req := validSaveRequest()
		req.StartDate = "2024-12-31"
		req.EndDate = "2024-01-01"

		_, apierr := svc.CreateContract(actor, req)
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})

	t.Run("rejects value amendment without a new value", func(t *testing.T) {
		svc, contractRepo, _, _ := newTestContractService()

		req := validSaveRequest()
		req.Amendments = []*contract.StagedAmendment{
			{AmendmentType: "Aditivo de Valor", ProcessNumber: "p-1"},
		}

		_, apierr := svc.CreateContract(actor, req)
		require.NotNil(t, apierr)
		assert.Empty(t, contractRepo.contracts, "nothing persists when validation fails")
	})

	t.Run("classifies a repeated contract number as duplicate", func(t *testing.T) {
		svc, contractRepo, _, _ := newTestContractService()
		contractRepo.saveErr = errUniqueViolation

		_, apierr := svc.CreateContract(actor, validSaveRequest())
		require.NotNil(t, apierr)
		assert.Equal(t, 409, apierr.Code())
	})

	t.Run("child insert failure never blocks the remainder", func(t *testing.T) {
		svc, contractRepo, amendmentRepo, supervisorRepo := newTestContractService()
		amendmentRepo.createErr = errUniqueViolation

		newValue := 150000.0
		req := validSaveRequest()
		req.Amendments = []*contract.StagedAmendment{
			{AmendmentType: "Aditivo de Valor", NewValue: &newValue, ProcessNumber: "p-1"},
		}
		req.Supervisors = []*contract.StagedSupervisor{
			{SupervisorName: "Maria da Silva"},
		}

		resp, apierr := svc.CreateContract(actor, req)
		require.Nil(t, apierr)

		assert.Len(t, contractRepo.contracts, 1)
		assert.Len(t, supervisorRepo.supervisors, 1)
		assert.Equal(t, 1, resp.ChildFailures)
	})
}

func TestUpdateContract(t *testing.T) {
	actor := &entity.User{ID: 10}

	t.Run("flushes staged amendments but never staged supervisors", func(t *testing.T) {
		svc, contractRepo, amendmentRepo, supervisorRepo := newTestContractService()

		created, apierr := svc.CreateContract(actor, validSaveRequest())
		require.Nil(t, apierr)

		req := validSaveRequest()
		req.Object = "Serviços de limpeza e conservação"
		req.Amendments = []*contract.StagedAmendment{
			{AmendmentType: "Aditivo de Prazo", NewEndDate: "2025-06-30", ProcessNumber: "p-9"},
		}
		req.Supervisors = []*contract.StagedSupervisor{
			{SupervisorName: "João Pereira"},
		}

		resp, apierr := svc.UpdateContract(actor, created.Contract.ID, req)
		require.Nil(t, apierr)

		assert.Equal(t, "Serviços de limpeza e conservação", contractRepo.contracts[0].Object)
		assert.Len(t, amendmentRepo.amendments, 1)
		assert.Empty(t, supervisorRepo.supervisors, "supervisors are persisted by the direct endpoint on edits")
		assert.Len(t, resp.ChildResults, 1)
	})

	t.Run("unknown contract yields 404", func(t *testing.T) {
		svc, _, _, _ := newTestContractService()

		_, apierr := svc.UpdateContract(actor, "nope", validSaveRequest())
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})
}

func TestGetContractByID(t *testing.T) {
	actor := &entity.User{ID: 10}

	t.Run("labels amendments by position", func(t *testing.T) {
		svc, _, _, _ := newTestContractService()

		v1, v2 := 10.0, 20.0
		req := validSaveRequest()
		req.Amendments = []*contract.StagedAmendment{
			{AmendmentType: "Aditivo de Valor", NewValue: &v1, ProcessNumber: "p-1"},
			{AmendmentType: "Aditivo de Valor", NewValue: &v2, ProcessNumber: "p-2"},
		}

		created, apierr := svc.CreateContract(actor, req)
		require.Nil(t, apierr)

		detail, apierr := svc.GetContractByID(created.Contract.ID)
		require.Nil(t, apierr)
		require.Len(t, detail.Amendments, 2)

		assert.Equal(t, "1º Aditivo", detail.Amendments[0].Label)
		assert.Equal(t, "2º Aditivo", detail.Amendments[1].Label)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		svc, _, _, _ := newTestContractService()

		_, apierr := svc.GetContractByID("missing")
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})
}
