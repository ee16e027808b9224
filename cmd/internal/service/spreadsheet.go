package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Epoch day offset between the spreadsheet serial-date origin (1899-12-30)
// and 1970-01-01.
const serialDateEpochOffset = 25569

// importRow is one data row keyed by canonical field name. Columns whose
// header does not match any known label are dropped.
type importRow map[string]string

// headerAliases maps each canonical field to the accepted header labels,
// compared lowercased and trimmed. Portuguese labels are the primary form,
// the English identifiers are fallbacks.
var headerAliases = map[string][]string{
	"contract_number":       {"número do contrato", "numero do contrato", "contract_number"},
	"gms_number":            {"número gms", "numero gms", "gms_number"},
	"modality":              {"modalidade", "modality"},
	"object":                {"objeto", "object"},
	"contracted_company":    {"empresa contratada", "contratada", "contracted_company"},
	"contract_value":        {"valor do contrato", "valor", "contract_value"},
	"start_date":            {"data de início", "data de inicio", "início da vigência", "start_date"},
	"end_date":              {"data de término", "data de termino", "fim da vigência", "end_date"},
	"status":                {"status", "situação", "situacao"},
	"process_number":        {"número do processo", "numero do processo", "process_number"},
	"has_extension_clause":  {"possui prorrogação", "possui prorrogacao", "has_extension_clause"},
	"manager_name":          {"nome gestor", "nome do gestor", "gestor", "manager_name"},
	"manager_email":         {"email gestor", "e-mail do gestor", "email do gestor", "manager_email"},
	"manager_nomination":    {"nomeação gestor", "nomeacao gestor", "manager_nomination"},
	"supervisor_name":       {"fiscal", "nome do fiscal", "supervisor_name"},
	"supervisor_email":      {"e-mail do fiscal", "email do fiscal", "supervisor_email"},
	"supervisor_nomination": {"nomeação fiscal", "nomeacao fiscal", "supervisor_nomination"},
}

// parseExcelRows reads the first sheet of an .xlsx/.xls file. Cells are read
// raw so date serials arrive as numeric strings for the coercer instead of
// excelize's localized formatting.
func parseExcelRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}

func parseCSVRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// mapRows resolves the header row into column positions and converts every
// following row into an importRow. Returns nil when there is no header or
// no data.
func mapRows(rows [][]string) []importRow {
	if len(rows) < 2 {
		return nil
	}

	fieldByCol := map[int]string{}
	for col, header := range rows[0] {
		if field, ok := resolveHeader(header); ok {
			fieldByCol[col] = field
		}
	}

	var mapped []importRow
	for _, raw := range rows[1:] {
		row := importRow{}
		empty := true
		for col, field := range fieldByCol {
			if col >= len(raw) {
				continue
			}

			value := strings.TrimSpace(raw[col])
			row[field] = value
			if value != "" {
				empty = false
			}
		}

		if !empty {
			mapped = append(mapped, row)
		}
	}
	return mapped
}

func resolveHeader(header string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(header))
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if normalized == alias {
				return field, true
			}
		}
	}
	return "", false
}

// coerceDate normalizes a cell into "2006-01-02". Excel stores dates as day
// serials, so a purely numeric cell is converted from its serial value.
// Parseable strings are reformatted; anything else passes through unchanged
// and is caught by the row validator.
func coerceDate(raw string) string {
	if raw == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		seconds := (serial - serialDateEpochOffset) * 86400
		return time.Unix(int64(seconds), 0).UTC().Format(time.DateOnly)
	}

	layouts := []string{time.DateOnly, "02/01/2006", "2/1/2006", "02-01-2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return raw
}

// coerceBool reads an affirmative cell. The extension-clause column usually
// carries "Sim"/"Não", but exported sheets also show up with "x" marks or
// literal booleans.
func coerceBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sim", "s", "yes", "y", "true", "1", "x":
		return true
	}
	return false
}

// coerceCurrency parses Brazilian-formatted money ("R$ 1.234,56"). Every
// rune but digits, commas and periods is stripped; when a decimal comma is
// present the periods are thousand separators and are dropped. Unparseable
// values become 0.
func coerceCurrency(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	f, _ := value.Float64()
	return f
}
