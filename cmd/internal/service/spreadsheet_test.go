package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"1234.56", 1234.56},
		{"1.234.567,89", 1234567.89},
		{"120000", 120000},
		{"R$ 0,50", 0.5},
		{"", 0},
		{"n/a", 0},
		{"R$", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.want, coerceCurrency(tt.raw), 0.0001)
		})
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"Sim", true},
		{"  sim  ", true},
		{"x", true},
		{"true", true},
		{"1", true},
		{"Não", false},
		{"nao", false},
		{"", false},
		{"qualquer", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceBool(tt.raw))
		})
	}
}

func TestCoerceDate(t *testing.T) {
	t.Run("converts spreadsheet serials", func(t *testing.T) {
		got := coerceDate("45000")

		parsed, err := time.Parse(time.DateOnly, got)
		require.NoError(t, err)
		assert.Equal(t, "2023-03-15", parsed.Format(time.DateOnly))
	})

	t.Run("keeps ISO dates", func(t *testing.T) {
		assert.Equal(t, "2024-01-01", coerceDate("2024-01-01"))
	})

	t.Run("converts Brazilian dates", func(t *testing.T) {
		assert.Equal(t, "2024-12-31", coerceDate("31/12/2024"))
	})

	t.Run("passes unparseable values through unchanged", func(t *testing.T) {
		assert.Equal(t, "sometime soon", coerceDate("sometime soon"))
	})

	t.Run("empty stays empty", func(t *testing.T) {
		assert.Equal(t, "", coerceDate(""))
	})
}

func TestMapRows(t *testing.T) {
	t.Run("resolves Portuguese headers with English fallbacks", func(t *testing.T) {
		rows := [][]string{
			{"Número do Contrato", "Objeto", "contract_value", "Coluna Desconhecida"},
			{"001/2024", "Limpeza", "1000", "ignored"},
		}

		mapped := mapRows(rows)
		require.Len(t, mapped, 1)

		assert.Equal(t, "001/2024", mapped[0]["contract_number"])
		assert.Equal(t, "Limpeza", mapped[0]["object"])
		assert.Equal(t, "1000", mapped[0]["contract_value"])
		_, ok := mapped[0]["coluna desconhecida"]
		assert.False(t, ok)
	})

	t.Run("header matching ignores case", func(t *testing.T) {
		rows := [][]string{
			{"MODALIDADE"},
			{"Pregão"},
		}

		mapped := mapRows(rows)
		require.Len(t, mapped, 1)
		assert.Equal(t, "Pregão", mapped[0]["modality"])
	})

	t.Run("drops fully empty rows", func(t *testing.T) {
		rows := [][]string{
			{"Número do Contrato", "Objeto"},
			{"", ""},
			{"002/2024", "Vigilância"},
		}

		mapped := mapRows(rows)
		require.Len(t, mapped, 1)
		assert.Equal(t, "002/2024", mapped[0]["contract_number"])
	})

	t.Run("no data rows yields nil", func(t *testing.T) {
		assert.Nil(t, mapRows([][]string{{"Número do Contrato"}}))
		assert.Nil(t, mapRows(nil))
	})
}
