package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type DocumentService interface {
	UploadDocument(actor *entity.User, contractId, docType string, fileHeader *multipart.FileHeader) (*contract.DocumentResponse, apierror.ErrorResponse)
	DeleteDocument(documentId int64) apierror.ErrorResponse
}

type DefaultDocumentRoute struct {
	DocumentService DocumentService
}

func NewDocumentRoute(documentService DocumentService) *DefaultDocumentRoute {
	return &DefaultDocumentRoute{DocumentService: documentService}
}

// UploadDocument expects a multipart form with the PDF under "file" and the
// document type under "document_type".
func (h *DefaultDocumentRoute) UploadDocument(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	contractId := strings.TrimSpace(c.Param("id"))
	if contractId == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	docType := strings.TrimSpace(c.FormValue("document_type"))
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingDocumentFileError)
	}

	resp, apierr := h.DocumentService.UploadDocument(user, contractId, docType, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *DefaultDocumentRoute) DeleteDocument(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := h.DocumentService.DeleteDocument(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
