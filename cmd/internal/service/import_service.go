package service

import (
	"fmt"
	"mime/multipart"
	"strings"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"
	"contractregistry/cmd/internal/utils/uid"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/xuri/excelize/v2"
)

// pendingSupervisor is a supervisor parsed from a spreadsheet row before the
// contracts exist. It is linked back by contract number after the bulk
// insert.
type pendingSupervisor struct {
	ContractNumber string
	Name           string
	Email          string
	Nomination     string
}

type DefaultImportService struct {
	ContractRepo   ContractRepository
	SupervisorRepo SupervisorRepository
}

func NewImportService(contractRepo ContractRepository, supervisorRepo SupervisorRepository) *DefaultImportService {
	return &DefaultImportService{
		ContractRepo:   contractRepo,
		SupervisorRepo: supervisorRepo,
	}
}

// ImportSpreadsheet runs the whole batch: parse, coerce, validate row by
// row, bulk-insert the accepted contracts, then link parsed supervisors.
// Rows that cannot be salvaged are skipped and counted, never aborting the
// batch; only an insert failure aborts.
func (s *DefaultImportService) ImportSpreadsheet(actor *entity.User, fileHeader *multipart.FileHeader) (*contract.ImportResponse, apierror.ErrorResponse) {
	ext, apierr := checkSpreadsheetFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	data, apierr := readDocumentFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	rows, err := parseRows(data, ext)
	if err != nil {
		log.Errorf("failed to parse spreadsheet: %v", err)
		return nil, apierror.MalformedBodyError
	}

	mapped := mapRows(rows)
	if len(mapped) == 0 {
		return nil, apierror.EmptySpreadsheetError
	}

	contracts, supervisors, skipped := buildImportBatch(mapped, actor.ID)
	if len(contracts) == 0 {
		return nil, apierror.EmptySpreadsheetError
	}

	if err = s.ContractRepo.CreateAll(contracts); err != nil {
		if isDuplicateErr(err) {
			return nil, apierror.DuplicateContractNumberError
		}
		log.Errorf("failed to bulk-insert %d contracts: %v", len(contracts), err)
		return nil, apierror.InternalServerError
	}

	resp := &contract.ImportResponse{
		Imported: len(contracts),
		Skipped:  skipped,
	}

	linked, err := s.linkSupervisors(contracts, supervisors)
	if err != nil {
		resp.SupervisorError = "Contracts were imported, but their supervisors could not be saved"
	}
	resp.SupervisorsLinked = linked
	return resp, nil
}

// GenerateTemplate builds the downloadable .xlsx skeleton: the expected
// headers, one example row, and the valid enum labels spelled out below it.
func (s *DefaultImportService) GenerateTemplate() ([]byte, apierror.ErrorResponse) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []any{
		"Número do Contrato", "Número GMS", "Modalidade", "Objeto",
		"Empresa Contratada", "Valor do Contrato", "Data de Início",
		"Data de Término", "Status", "Número do Processo",
		"Possui Prorrogação", "Nome Gestor", "Email Gestor", "Nomeação Gestor",
		"Fiscal", "E-mail do Fiscal", "Nomeação Fiscal",
	}
	example := []any{
		"001/2024", "GMS-1234", "Pregão", "Prestação de serviços de limpeza",
		"Empresa Exemplo LTDA", "R$ 120.000,00", "2024-01-01", "2024-12-31",
		"Vigente", "12345.000001/2024-01", "Sim", "João Pereira",
		"joao.pereira@example.gov.br", "Portaria 10/2024", "Maria da Silva",
		"maria.silva@example.gov.br", "Portaria 11/2024",
	}

	rows := [][]any{
		headers,
		example,
		{},
		{"Modalidades válidas: " + joinModalities()},
		{"Status válidos: " + joinStatuses()},
		{"Datas no formato AAAA-MM-DD; valores podem usar o formato R$ 1.234,56."},
		{"Possui Prorrogação: Sim ou Não."},
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			log.Errorf("failed to build template row %d: %v", i+1, err)
			return nil, apierror.InternalServerError
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Errorf("failed to serialize template: %v", err)
		return nil, apierror.InternalServerError
	}
	return buf.Bytes(), nil
}

// buildImportBatch turns mapped rows into contract entities plus the
// supervisors to link afterwards. A row is skipped when the contract number
// is missing, or when any other required field is still empty after
// coercion.
func buildImportBatch(rows []importRow, actorID int64) ([]*entity.Contract, []pendingSupervisor, int) {
	var contracts []*entity.Contract
	var supervisors []pendingSupervisor
	skipped := 0

	now := utils.NowUTC()
	for _, row := range rows {
		c := rowToContract(row, actorID, now)
		if c == nil {
			skipped++
			continue
		}

		contracts = append(contracts, c)
		if name := row["supervisor_name"]; name != "" {
			supervisors = append(supervisors, pendingSupervisor{
				ContractNumber: c.ContractNumber,
				Name:           name,
				Email:          row["supervisor_email"],
				Nomination:     row["supervisor_nomination"],
			})
		}
	}
	return contracts, supervisors, skipped
}

func rowToContract(row importRow, actorID, now int64) *entity.Contract {
	number := row["contract_number"]
	if number == "" {
		return nil
	}

	startDate := coerceDate(row["start_date"])
	endDate := coerceDate(row["end_date"])

	c := &entity.Contract{
		ID:                 uuid.NewString(),
		ContractNumber:     number,
		GMSNumber:          row["gms_number"],
		Modality:           normalizeModality(row["modality"]),
		Object:             row["object"],
		ContractedCompany:  row["contracted_company"],
		ContractValue:      coerceCurrency(row["contract_value"]),
		StartDate:          startDate,
		EndDate:            endDate,
		Status:             normalizeStatus(row["status"]),
		ProcessNumber:      row["process_number"],
		HasExtensionClause: coerceBool(row["has_extension_clause"]),
		ManagerName:        row["manager_name"],
		ManagerEmail:       row["manager_email"],
		ManagerNomination:  row["manager_nomination"],
		CreatedBy:          actorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if c.Object == "" || c.ContractedCompany == "" || c.ProcessNumber == "" {
		return nil
	}

	if startDate == "" || endDate == "" {
		return nil
	}
	return c
}

// normalizeModality resolves the free-text cell to a canonical label,
// falling back to "Pregão" when nothing matches.
func normalizeModality(raw string) entity.Modality {
	if m := entity.NormalizeModality(raw); m != "" {
		return m
	}
	return entity.ModalityAuction
}

func normalizeStatus(raw string) entity.ContractStatus {
	if s := entity.NormalizeStatus(raw); s != "" {
		return s
	}
	return entity.StatusActive
}

// linkSupervisors matches parsed supervisors back to the freshly inserted
// contracts by exact contract number. Unmatched ones are dropped. An insert
// failure never undoes the contracts; it is returned so the caller can report
// it alongside the import counts.
func (s *DefaultImportService) linkSupervisors(contracts []*entity.Contract, pending []pendingSupervisor) (int, error) {
	if len(pending) == 0 {
		return 0, nil
	}

	now := utils.NowUTC()
	var rows []*entity.ContractSupervisor
	for _, p := range pending {
		contractID := findContractID(contracts, p.ContractNumber)
		if contractID == "" {
			continue
		}

		rows = append(rows, &entity.ContractSupervisor{
			ID:                   uid.Generate(),
			ContractID:           contractID,
			SupervisorName:       p.Name,
			SupervisorEmail:      p.Email,
			SupervisorNomination: p.Nomination,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}

	if err := s.SupervisorRepo.CreateAll(rows); err != nil {
		log.Errorf("failed to link %d imported supervisors: %v", len(rows), err)
		return 0, err
	}
	return len(rows), nil
}

func findContractID(contracts []*entity.Contract, number string) string {
	for _, c := range contracts {
		if c.ContractNumber == number {
			return c.ID
		}
	}
	return ""
}

func parseRows(data []byte, ext string) ([][]string, error) {
	if ext == "csv" {
		return parseCSVRows(data)
	}
	return parseExcelRows(data)
}

func checkSpreadsheetFile(fileHeader *multipart.FileHeader) (string, apierror.ErrorResponse) {
	if fileHeader == nil {
		return "", apierror.MissingSpreadsheetError
	}

	if strings.TrimSpace(fileHeader.Filename) == "" {
		return "", apierror.MissingFileNameError
	}

	if fileHeader.Size > contract.MaxSpreadsheetSizeBytes {
		return "", apierror.NewFileTooLargeError(contract.MaxSpreadsheetSizeBytes)
	}

	ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidSpreadsheetFileTypes)
	if !ok {
		return "", apierror.NewInvalidFileExtError(ext)
	}
	return strings.ToLower(strings.TrimPrefix(ext, ".")), nil
}

func joinModalities() string {
	labels := make([]string, len(entity.Modalities))
	for i, m := range entity.Modalities {
		labels[i] = string(m)
	}
	return strings.Join(labels, ", ")
}

func joinStatuses() string {
	labels := make([]string, len(entity.Statuses))
	for i, s := range entity.Statuses {
		labels[i] = string(s)
	}
	return strings.Join(labels, ", ")
}
