package policy

import (
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils/apierror"
)

// ContractPolicy encapsulates the field-applicability rules for contract
// children. It returns apierror.ErrorResponse directly for seamless
// integration with handlers and services.
type ContractPolicy struct{}

func NewContractPolicy() *ContractPolicy {
	return &ContractPolicy{}
}

// CheckAmendment enforces the per-type requirements: value-type amendments
// need a new value, term-type ones a new end date, the combined type both.
func (p *ContractPolicy) CheckAmendment(typ entity.AmendmentType, newValue *float64, newEndDate string) apierror.ErrorResponse {
	if !entity.IsValidAmendmentType(string(typ)) {
		return apierror.InvalidAmendmentTypeError
	}

	needsValue := typ == entity.AmendmentValue || typ == entity.AmendmentValueAndTerm
	needsDate := typ == entity.AmendmentTerm || typ == entity.AmendmentValueAndTerm

	if needsValue && newValue == nil {
		return apierror.AmendmentValueRequiredError
	}
	if needsDate && newEndDate == "" {
		return apierror.AmendmentEndDateRequiredError
	}
	return nil
}

// CheckEndorsement enforces which optional fields each endorsement type
// accepts. Only index readjustments carry an adjustment index; only
// execution deadline extensions carry a new execution date; a new value is
// accepted by index readjustments and repactuations.
func (p *ContractPolicy) CheckEndorsement(typ entity.EndorsementType, newValue *float64, newExecutionDate, adjustmentIndex string) apierror.ErrorResponse {
	if !entity.IsValidEndorsementType(string(typ)) {
		return apierror.InvalidEndorsementTypeError
	}

	acceptsValue := typ == entity.EndorsementIndexReadjustment || typ == entity.EndorsementRepactuation
	acceptsIndex := typ == entity.EndorsementIndexReadjustment
	acceptsDate := typ == entity.EndorsementExecutionExtension

	if newValue != nil && !acceptsValue {
		return apierror.EndorsementFieldNotAllowedError("new_value")
	}
	if adjustmentIndex != "" && !acceptsIndex {
		return apierror.EndorsementFieldNotAllowedError("adjustment_index")
	}
	if newExecutionDate != "" && !acceptsDate {
		return apierror.EndorsementFieldNotAllowedError("new_execution_date")
	}
	return nil
}
