package policy

import (
	"testing"

	"contractregistry/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAmendment(t *testing.T) {
	p := NewContractPolicy()
	value := 1000.0

	t.Run("value amendment requires a new value", func(t *testing.T) {
		assert.Nil(t, p.CheckAmendment(entity.AmendmentValue, &value, ""))
		assert.NotNil(t, p.CheckAmendment(entity.AmendmentValue, nil, ""))
	})

	t.Run("term amendment requires a new end date", func(t *testing.T) {
		assert.Nil(t, p.CheckAmendment(entity.AmendmentTerm, nil, "2025-06-30"))
		assert.NotNil(t, p.CheckAmendment(entity.AmendmentTerm, nil, ""))
	})

	t.Run("combined amendment requires both", func(t *testing.T) {
		assert.Nil(t, p.CheckAmendment(entity.AmendmentValueAndTerm, &value, "2025-06-30"))
		assert.NotNil(t, p.CheckAmendment(entity.AmendmentValueAndTerm, &value, ""))
		assert.NotNil(t, p.CheckAmendment(entity.AmendmentValueAndTerm, nil, "2025-06-30"))
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		apierr := p.CheckAmendment("Aditivo Misterioso", &value, "2025-06-30")
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})
}

func TestCheckEndorsement(t *testing.T) {
	p := NewContractPolicy()
	value := 1000.0

	t.Run("index readjustment accepts value and index", func(t *testing.T) {
		assert.Nil(t, p.CheckEndorsement(entity.EndorsementIndexReadjustment, &value, "", "IPCA"))
	})

	t.Run("repactuation accepts value but not index", func(t *testing.T) {
		assert.Nil(t, p.CheckEndorsement(entity.EndorsementRepactuation, &value, "", ""))
		assert.NotNil(t, p.CheckEndorsement(entity.EndorsementRepactuation, &value, "", "IPCA"))
	})

	t.Run("execution extension accepts only a new date", func(t *testing.T) {
		assert.Nil(t, p.CheckEndorsement(entity.EndorsementExecutionExtension, nil, "2025-06-30", ""))
		assert.NotNil(t, p.CheckEndorsement(entity.EndorsementExecutionExtension, &value, "2025-06-30", ""))
	})

	t.Run("budget line change accepts none of the optional fields", func(t *testing.T) {
		assert.Nil(t, p.CheckEndorsement(entity.EndorsementBudgetLineChange, nil, "", ""))
		assert.NotNil(t, p.CheckEndorsement(entity.EndorsementBudgetLineChange, &value, "", ""))
		assert.NotNil(t, p.CheckEndorsement(entity.EndorsementBudgetLineChange, nil, "2025-06-30", ""))
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		assert.NotNil(t, p.CheckEndorsement("Apostila", nil, "", ""))
	})
}

func TestHasRole(t *testing.T) {
	roles := []entity.Role{entity.RoleUser}

	assert.True(t, HasRole(roles, entity.RoleUser))
	assert.False(t, HasRole(roles, entity.RoleAdmin))
	assert.False(t, HasRole(nil, entity.RoleAdmin))

	assert.Nil(t, RequireAdmin([]entity.Role{entity.RoleUser, entity.RoleAdmin}))
	assert.NotNil(t, RequireAdmin(roles))
}
