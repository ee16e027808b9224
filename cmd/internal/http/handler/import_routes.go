package handler

import (
	"mime/multipart"
	"net/http"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ImportService interface {
	ImportSpreadsheet(actor *entity.User, fileHeader *multipart.FileHeader) (*contract.ImportResponse, apierror.ErrorResponse)
	GenerateTemplate() ([]byte, apierror.ErrorResponse)
}

type DefaultImportRoute struct {
	ImportService ImportService
}

func NewImportRoute(importService ImportService) *DefaultImportRoute {
	return &DefaultImportRoute{ImportService: importService}
}

// ImportSpreadsheet expects a multipart form with the spreadsheet under
// "file".
func (h *DefaultImportRoute) ImportSpreadsheet(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MissingSpreadsheetError)
	}

	resp, apierr := h.ImportService.ImportSpreadsheet(user, fileHeader)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultImportRoute) DownloadTemplate(c echo.Context) error {
	data, apierr := h.ImportService.GenerateTemplate()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="modelo_importacao_contratos.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
