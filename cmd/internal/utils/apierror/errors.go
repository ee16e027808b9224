package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed request body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError         = NewSimple(404, "Resource not found")
	InvalidIDError        = NewSimple(400, "The provided ID is invalid")
	UnauthorizedError     = NewSimple(401, "Missing or invalid credentials")
	InvalidAuthTokenError = NewSimple(401, "Invalid authentication token")
	MissingRoleError      = NewSimple(403, "Missing required role")
	InvalidMediaTypeError = NewSimple(415, "Unsupported media type")
	InvalidCNPJError      = NewSimple(400, "The provided CNPJ is invalid")

	/*
	 * Contract registry specific
	 */
	DuplicateContractNumberError  = NewSimple(409, "A contract with this contract number already exists")
	EndBeforeStartError           = NewSimple(400, "End date cannot be before the start date")
	InvalidAmendmentTypeError     = NewSimple(400, "Invalid amendment type")
	InvalidEndorsementTypeError   = NewSimple(400, "Invalid endorsement type")
	AmendmentValueRequiredError   = NewSimple(400, "A new value is required for value amendments")
	AmendmentEndDateRequiredError = NewSimple(400, "A new end date is required for term amendments")
	InvalidDocumentTypeError      = NewSimple(400, "Invalid document type")
	MissingDocumentFileError      = NewSimple(400, "A document file is required")
	MissingFileNameError          = NewSimple(400, "The uploaded file has no name")
	MissingSpreadsheetError       = NewSimple(400, "A spreadsheet file is required")
	EmptySpreadsheetError         = NewSimple(400, "The spreadsheet has no importable rows")

	/*
	 * Used for authentications
	 */
	UserAlreadyConfirmedError   = NewSimple(400, "User is already confirmed")
	IDPInvalidPasswordError     = NewSimple(400, "Provided password does not meet requirements")
	IDPExistingEmailError       = NewSimple(400, "Email already exists")
	IDPUserNotFoundError        = NewSimple(404, "User not found")
	IDPUserNotConfirmedError    = NewSimple(400, "User is not confirmed yet")
	IDPCredentialsMismatchError = NewSimple(400, "Credentials mismatch")
	IDPConfirmCodeMismatchError = NewSimple(400, "Confirmation code mismatch")
	IDPConfirmCodeExpiredError  = NewSimple(400, "Confirmation code has expired")
	IDPInvalidParameterError    = NewSimple(400, "Invalid parameters provided, the user is likely already verified")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "datetime":
			problems[field] = append(problems[field], "Value must be a date in the format "+fe.Param())
		case "gte":
			problems[field] = append(problems[field], "Value must be at least "+fe.Param())
		case "modality":
			problems[field] = append(problems[field], "Value must be a valid procurement modality")
		case "contractstatus":
			problems[field] = append(problems[field], "Value must be a valid contract status")
		case "amendmenttype":
			problems[field] = append(problems[field], "Value must be a valid amendment type")
		case "endorsementtype":
			problems[field] = append(problems[field], "Value must be a valid endorsement type")
		case "doctype":
			problems[field] = append(problems[field], "Value must be a valid document type")
		case "hasupper":
			problems[field] = append(problems[field], "Value must have at least one uppercase character")
		case "haslower":
			problems[field] = append(problems[field], "Value must have at least one lowercase character")
		case "hasdigit":
			problems[field] = append(problems[field], "Value must have at least one number")
		case "hasspecial":
			problems[field] = append(problems[field], "Value must have at least one special character")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewForbiddenError(msg string) *APIError {
	return NewSimple(http.StatusForbidden, msg)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is required", name)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewInvalidFileExtError(ext string) *APIError {
	return NewSimple(http.StatusBadRequest, "Files with extension '%s' are not accepted", ext)
}

func NewFileTooLargeError(maxBytes int64) *APIError {
	return NewSimple(http.StatusBadRequest, "File exceeds the maximum size of %d bytes", maxBytes)
}

func EndorsementFieldNotAllowedError(field string) *APIError {
	return NewSimple(http.StatusBadRequest, "Field '%s' is not applicable to this endorsement type", field)
}
