package handler

import (
	"net/http"
	"strings"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UtilService interface {
	GetCompanyByCNPJ(cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse)
}

type DefaultUtilRoute struct {
	UtilService UtilService
}

func NewUtilRoute(utilService UtilService) *DefaultUtilRoute {
	return &DefaultUtilRoute{UtilService: utilService}
}

func (u *DefaultUtilRoute) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// GetCompany looks up a contracted company by CNPJ, an admin convenience
// when filling the contract form.
func (u *DefaultUtilRoute) GetCompany(c echo.Context) error {
	cnpj := strings.TrimSpace(c.Param("cnpj"))

	company, apierr := u.UtilService.GetCompanyByCNPJ(cnpj)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}
