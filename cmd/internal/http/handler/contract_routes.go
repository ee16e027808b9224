package handler

import (
	"net/http"
	"strings"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	"contractregistry/cmd/internal/domain/sqlite/repository"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ContractService interface {
	GetContracts(filter repository.ContractFilter) ([]*contract.ContractResponse, apierror.ErrorResponse)
	GetContractByID(contractId string) (*contract.ContractDetailResponse, apierror.ErrorResponse)
	CreateContract(actor *entity.User, req *contract.SaveContractRequest) (*contract.SaveContractResponse, apierror.ErrorResponse)
	UpdateContract(actor *entity.User, contractId string, req *contract.SaveContractRequest) (*contract.SaveContractResponse, apierror.ErrorResponse)
	DeleteContract(contractId string) apierror.ErrorResponse
	GetExpiringCounts() (*contract.ExpiringContractsResponse, apierror.ErrorResponse)
}

type DefaultContractRoute struct {
	ContractService ContractService
}

func NewContractRoute(contractService ContractService) *DefaultContractRoute {
	return &DefaultContractRoute{ContractService: contractService}
}

// GetContracts is the public listing. No authentication: citizens browse
// contracts anonymously.
func (h *DefaultContractRoute) GetContracts(c echo.Context) error {
	filter := repository.ContractFilter{
		Search:       strings.TrimSpace(c.QueryParam("search")),
		Status:       strings.TrimSpace(c.QueryParam("status")),
		Modality:     strings.TrimSpace(c.QueryParam("modality")),
		StartDateMin: strings.TrimSpace(c.QueryParam("start_date_min")),
	}

	contracts, apierr := h.ContractService.GetContracts(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"contracts": contracts}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultContractRoute) GetContract(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	detail, apierr := h.ContractService.GetContractByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *DefaultContractRoute) CreateContract(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.SaveContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.ContractService.CreateContract(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *DefaultContractRoute) UpdateContract(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.SaveContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.ContractService.UpdateContract(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultContractRoute) DeleteContract(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	if apierr := h.ContractService.DeleteContract(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultContractRoute) GetExpiringCounts(c echo.Context) error {
	resp, apierr := h.ContractService.GetExpiringCounts()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
