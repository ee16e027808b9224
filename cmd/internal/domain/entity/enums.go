package entity

import "strings"

type ContractStatus string

const (
	StatusActive     ContractStatus = "Vigente"
	StatusTerminated ContractStatus = "Rescindido"
	StatusClosed     ContractStatus = "Encerrado"
	StatusExtended   ContractStatus = "Prorrogado"
)

type Modality string

const (
	ModalityAuction       Modality = "Pregão"
	ModalityWaiver        Modality = "Dispensa"
	ModalityUnenforceable Modality = "Inexigibilidade"
	ModalityCompetition   Modality = "Concorrência"
	ModalityPriceTaking   Modality = "Tomada de Preços"
	ModalityAccreditation Modality = "Credenciamento"
	ModalityAdhesion      Modality = "Adesão"
)

type AmendmentType string

const (
	AmendmentValue        AmendmentType = "Aditivo de Valor"
	AmendmentTerm         AmendmentType = "Aditivo de Prazo"
	AmendmentValueAndTerm AmendmentType = "Aditivo de Valor e Prazo"
)

type EndorsementType string

const (
	EndorsementExecutionExtension EndorsementType = "Prorrogação de Prazo de Execução"
	EndorsementIndexReadjustment  EndorsementType = "Reajuste por Índice"
	EndorsementRepactuation       EndorsementType = "Repactuação"
	EndorsementBudgetLineChange   EndorsementType = "Alteração de Dotação Orçamentária"
)

type DocumentType string

const (
	DocContract             DocumentType = "Contrato"
	DocContractPublication  DocumentType = "Extrato de Publicação do Contrato"
	DocAmendmentTerm        DocumentType = "Termo Aditivo"
	DocAmendmentPublication DocumentType = "Extrato de Publicação do Aditivo"
	DocEndorsementRecord    DocumentType = "Apostilamento"
	DocAppointmentOrder     DocumentType = "Portaria"
)

var (
	Statuses = []ContractStatus{
		StatusActive, StatusTerminated, StatusClosed, StatusExtended,
	}

	Modalities = []Modality{
		ModalityAuction, ModalityWaiver, ModalityUnenforceable,
		ModalityCompetition, ModalityPriceTaking, ModalityAccreditation,
		ModalityAdhesion,
	}

	AmendmentTypes = []AmendmentType{
		AmendmentValue, AmendmentTerm, AmendmentValueAndTerm,
	}

	EndorsementTypes = []EndorsementType{
		EndorsementExecutionExtension, EndorsementIndexReadjustment,
		EndorsementRepactuation, EndorsementBudgetLineChange,
	}

	DocumentTypes = []DocumentType{
		DocContract, DocContractPublication, DocAmendmentTerm,
		DocAmendmentPublication, DocEndorsementRecord, DocAppointmentOrder,
	}
)

// NormalizeModality resolves a free-text spreadsheet value to its canonical
// label by trimmed, case-insensitive equality. It never fuzzy-matches;
// anything else yields "".
func NormalizeModality(raw string) Modality {
	for _, m := range Modalities {
		if equalsFold(raw, string(m)) {
			return m
		}
	}
	return ""
}

// NormalizeStatus resolves a free-text spreadsheet value to its canonical
// status label. Returns "" when nothing matches.
func NormalizeStatus(raw string) ContractStatus {
	for _, s := range Statuses {
		if equalsFold(raw, string(s)) {
			return s
		}
	}
	return ""
}

func IsValidModality(raw string) bool {
	return NormalizeModality(raw) != "" && string(NormalizeModality(raw)) == raw
}

func IsValidStatus(raw string) bool {
	return NormalizeStatus(raw) != "" && string(NormalizeStatus(raw)) == raw
}

func IsValidAmendmentType(raw string) bool {
	for _, t := range AmendmentTypes {
		if string(t) == raw {
			return true
		}
	}
	return false
}

func IsValidEndorsementType(raw string) bool {
	for _, t := range EndorsementTypes {
		if string(t) == raw {
			return true
		}
	}
	return false
}

func IsValidDocumentType(raw string) bool {
	for _, t := range DocumentTypes {
		if string(t) == raw {
			return true
		}
	}
	return false
}

func equalsFold(raw, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), canonical)
}
