package service

import (
	"testing"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupervisorService() (*DefaultSupervisorService, *fakeSupervisorRepo) {
	contractRepo := &fakeContractRepo{
		contracts: []*entity.Contract{{ID: "c-1", ContractNumber: "001/2024"}},
	}
	supervisorRepo := &fakeSupervisorRepo{}

	svc := NewSupervisorService(supervisorRepo, contractRepo, newTestValidate())
	return svc, supervisorRepo
}

func TestAddSupervisor(t *testing.T) {
	t.Run("persists immediately", func(t *testing.T) {
		svc, supervisorRepo := newTestSupervisorService()

		resp, apierr := svc.AddSupervisor("c-1", &contract.SupervisorRequest{
			SupervisorName:  "Maria da Silva",
			SupervisorEmail: "maria@example.gov.br",
		})
		require.Nil(t, apierr)

		assert.Equal(t, "c-1", resp.ContractID)
		assert.NotZero(t, resp.ID)
		assert.Len(t, supervisorRepo.supervisors, 1)
	})

	t.Run("unknown contract yields 404", func(t *testing.T) {
		svc, _ := newTestSupervisorService()

		_, apierr := svc.AddSupervisor("missing", &contract.SupervisorRequest{SupervisorName: "Maria"})
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})

	t.Run("name is required", func(t *testing.T) {
		svc, supervisorRepo := newTestSupervisorService()

		_, apierr := svc.AddSupervisor("c-1", &contract.SupervisorRequest{})
		require.NotNil(t, apierr)
		assert.Empty(t, supervisorRepo.supervisors)
	})
}

func TestDeleteSupervisor(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		svc, supervisorRepo := newTestSupervisorService()

		resp, apierr := svc.AddSupervisor("c-1", &contract.SupervisorRequest{SupervisorName: "Maria"})
		require.Nil(t, apierr)

		require.Nil(t, svc.DeleteSupervisor(resp.ID))
		assert.Empty(t, supervisorRepo.supervisors)
	})

	t.Run("unknown supervisor yields 404", func(t *testing.T) {
		svc, _ := newTestSupervisorService()

		apierr := svc.DeleteSupervisor(42)
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})
}
