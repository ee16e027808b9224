package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeModality(t *testing.T) {
	tests := []struct {
		raw  string
		want Modality
	}{
		{"Pregão", ModalityAuction},
		{"pregão", ModalityAuction},
		{"PREGÃO", ModalityAuction},
		{"  Pregão  ", ModalityAuction},
		{"tomada de preços", ModalityPriceTaking},
		{"Credenciamento", ModalityAccreditation},
		{"Adesão", ModalityAdhesion},
		{"Leilão", ""},
		{"", ""},
		{"Pregao", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeModality(tt.raw))
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ContractStatus
	}{
		{"Vigente", StatusActive},
		{"vigente", StatusActive},
		{" RESCINDIDO ", StatusTerminated},
		{"Encerrado", StatusClosed},
		{"Prorrogado", StatusExtended},
		{"Ativo", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.raw))
		})
	}
}

func TestIsValidPredicates(t *testing.T) {
	t.Run("exact canonical labels only", func(t *testing.T) {
		assert.True(t, IsValidModality("Pregão"))
		assert.False(t, IsValidModality("pregão"), "validation is stricter than import normalization")

		assert.True(t, IsValidStatus("Vigente"))
		assert.False(t, IsValidStatus("VIGENTE"))
	})

	t.Run("amendment types", func(t *testing.T) {
		assert.True(t, IsValidAmendmentType("Aditivo de Valor"))
		assert.True(t, IsValidAmendmentType("Aditivo de Valor e Prazo"))
		assert.False(t, IsValidAmendmentType("Aditivo"))
	})

	t.Run("endorsement types", func(t *testing.T) {
		assert.True(t, IsValidEndorsementType("Reajuste por Índice"))
		assert.False(t, IsValidEndorsementType("Reajuste"))
	})

	t.Run("document types", func(t *testing.T) {
		assert.True(t, IsValidDocumentType("Apostilamento"))
		assert.True(t, IsValidDocumentType("Portaria"))
		assert.False(t, IsValidDocumentType("Recibo"))
	})
}
