package service

import (
	"strings"
	"testing"

	"contractregistry/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentService() (*DefaultDocumentService, *fakeContractRepo, *fakeDocumentRepo, *fakeS3) {
	contractRepo := &fakeContractRepo{
		contracts: []*entity.Contract{{ID: "c-1", ContractNumber: "001/2024"}},
	}
	documentRepo := &fakeDocumentRepo{}
	s3 := newFakeS3()

	svc := NewDocumentService(documentRepo, contractRepo, s3)
	return svc, contractRepo, documentRepo, s3
}

func TestUploadDocument(t *testing.T) {
	actor := &entity.User{ID: 3}
	pdf := []byte("%PDF-1.4 fake")

	t.Run("stores the object then the metadata row", func(t *testing.T) {
		svc, _, documentRepo, s3 := newTestDocumentService()

		header := buildFileHeader(t, "contrato_assinado.pdf", pdf)
		resp, apierr := svc.UploadDocument(actor, "c-1", "Contrato", header)
		require.Nil(t, apierr)

		assert.Equal(t, "contrato_assinado.pdf", resp.FileName)
		assert.True(t, strings.HasPrefix(resp.FilePath, "c-1/"))
		assert.True(t, strings.HasSuffix(resp.FilePath, ".pdf"))
		assert.Empty(t, resp.DocumentNumber, "first of its type carries no sequence label")

		require.Len(t, documentRepo.documents, 1)
		_, stored := s3.objects[resp.FilePath]
		assert.True(t, stored)
	})

	t.Run("labels repeated uploads of the same type", func(t *testing.T) {
		svc, _, _, _ := newTestDocumentService()

		first, apierr := svc.UploadDocument(actor, "c-1", "Termo Aditivo", buildFileHeader(t, "a.pdf", pdf))
		require.Nil(t, apierr)
		second, apierr := svc.UploadDocument(actor, "c-1", "Termo Aditivo", buildFileHeader(t, "b.pdf", pdf))
		require.Nil(t, apierr)
		other, apierr := svc.UploadDocument(actor, "c-1", "Portaria", buildFileHeader(t, "c.pdf", pdf))
		require.Nil(t, apierr)

		assert.Empty(t, first.DocumentNumber)
		assert.Equal(t, "2º", second.DocumentNumber)
		assert.Empty(t, other.DocumentNumber, "the counter is per document type")
	})

	t.Run("rejects invalid document types", func(t *testing.T) {
		svc, _, _, _ := newTestDocumentService()

		_, apierr := svc.UploadDocument(actor, "c-1", "Recibo", buildFileHeader(t, "a.pdf", pdf))
		require.NotNil(t, apierr)
		assert.Equal(t, 400, apierr.Code())
	})

	t.Run("rejects non-pdf files", func(t *testing.T) {
		svc, _, _, s3 := newTestDocumentService()

		_, apierr := svc.UploadDocument(actor, "c-1", "Contrato", buildFileHeader(t, "planilha.xlsx", pdf))
		require.NotNil(t, apierr)
		assert.Empty(t, s3.objects)
	})

	t.Run("unknown contract yields 404", func(t *testing.T) {
		svc, _, _, _ := newTestDocumentService()

		_, apierr := svc.UploadDocument(actor, "missing", "Contrato", buildFileHeader(t, "a.pdf", pdf))
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})
}

func TestDeleteDocument(t *testing.T) {
	actor := &entity.User{ID: 3}
	pdf := []byte("%PDF-1.4 fake")

	t.Run("removes the object before the row", func(t *testing.T) {
		svc, _, documentRepo, s3 := newTestDocumentService()

		resp, apierr := svc.UploadDocument(actor, "c-1", "Contrato", buildFileHeader(t, "a.pdf", pdf))
		require.Nil(t, apierr)

		apierr = svc.DeleteDocument(resp.ID)
		require.Nil(t, apierr)

		assert.Empty(t, documentRepo.documents)
		assert.Empty(t, s3.objects)
	})

	t.Run("unknown document yields 404", func(t *testing.T) {
		svc, _, _, _ := newTestDocumentService()

		apierr := svc.DeleteDocument(999)
		require.NotNil(t, apierr)
		assert.Equal(t, 404, apierr.Code())
	})
}
