package handler

import (
	"net/http"
	"strconv"
	"strings"

	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SupervisorService interface {
	AddSupervisor(contractId string, req *contract.SupervisorRequest) (*contract.SupervisorResponse, apierror.ErrorResponse)
	DeleteSupervisor(supervisorId int64) apierror.ErrorResponse
}

type DefaultSupervisorRoute struct {
	SupervisorService SupervisorService
}

func NewSupervisorRoute(supervisorService SupervisorService) *DefaultSupervisorRoute {
	return &DefaultSupervisorRoute{SupervisorService: supervisorService}
}

func (h *DefaultSupervisorRoute) AddSupervisor(c echo.Context) error {
	contractId := strings.TrimSpace(c.Param("id"))
	if contractId == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("id"))
	}

	var req contract.SupervisorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := h.SupervisorService.AddSupervisor(contractId, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *DefaultSupervisorRoute) DeleteSupervisor(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	if apierr := h.SupervisorService.DeleteSupervisor(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
