package service

import (
	"testing"

	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/infrastructure/minhareceita"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Save(c *entity.Company) error {
	f.companies[c.CNPJ] = c
	return nil
}

func (f *fakeCompanyRepo) FindByCNPJ(cnpj string) (*entity.Company, error) {
	return f.companies[cnpj], nil
}

// Valid checksum, used across the cache tests.
const testCNPJ = "11222333000181"

func TestGetCompanyByCNPJ(t *testing.T) {
	t.Run("rejects malformed CNPJs before any lookup", func(t *testing.T) {
		svc := NewMiscService(minhareceita.NewClient(), newFakeCompanyRepo())

		for _, cnpj := range []string{"", "123", "11222333000180", "aaaaaaaaaaaaaa"} {
			_, apierr := svc.GetCompanyByCNPJ(cnpj)
			require.NotNil(t, apierr, cnpj)
			assert.Equal(t, 400, apierr.Code())
		}
	})

	t.Run("serves positive cache without touching the API", func(t *testing.T) {
		repo := newFakeCompanyRepo()
		repo.companies[testCNPJ] = &entity.Company{
			CNPJ:      testCNPJ,
			LegalName: "Empresa Exemplo LTDA",
			RegStatus: entity.RegStatusActive,
			Found:     true,
		}

		svc := NewMiscService(minhareceita.NewClient(), repo)
		resp, apierr := svc.GetCompanyByCNPJ(testCNPJ)
		require.Nil(t, apierr)

		assert.True(t, resp.Cached)
		assert.Equal(t, "Empresa Exemplo LTDA", resp.LegalName)
		assert.Equal(t, "ACTIVE", resp.RegStatus)
	})

	t.Run("negative cache yields 404", func(t *testing.T) {
		repo := newFakeCompanyRepo()
		repo.companies[testCNPJ] = &entity.Company{CNPJ: testCNPJ, Found: false}

		svc := NewMiscService(minhareceita.NewClient(), repo)
		_, apierr := svc.GetCompanyByCNPJ(testCNPJ)
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})
}
