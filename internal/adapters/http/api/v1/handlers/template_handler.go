package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/http/middleware"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/usecase"
	res "github.com/Maksym-Tomusiak/Diploma-API/pkg/http"
)

type TemplateHandler struct {
	service usecase.TemplateService
}

func NewTemplateHandler(service usecase.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

type templateCreateRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Params      domain.TemplateParams `json:"params"`
}

type templateUpdateRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Params      *domain.TemplateParams `json:"params"`
	IsActive    *bool                  `json:"is_active"`
}

// GetAll lists templates. include_inactive is honored for admins only and
// silently downgraded for everyone else.
func (h *TemplateHandler) GetAll(c echo.Context) error {
	includeInactive := c.QueryParam("include_inactive") == "true"
	if !middleware.CurrentUser(c).IsAdmin() {
		includeInactive = false
	}
	templates, err := h.service.GetAll(c.Request().Context(), includeInactive)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, templates)
}

func (h *TemplateHandler) Get(c echo.Context) error {
	templateID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	tpl, err := h.service.Get(c.Request().Context(), templateID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, tpl)
}

func (h *TemplateHandler) Create(c echo.Context) error {
	req := new(templateCreateRequest)
	if err := c.Bind(req); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid payload", usecase.ErrValidation))
	}
	tpl, err := h.service.Create(c.Request().Context(), req.Name, req.Description, req.Params)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusCreated, tpl)
}

func (h *TemplateHandler) Update(c echo.Context) error {
	templateID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	req := new(templateUpdateRequest)
	if err := c.Bind(req); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid payload", usecase.ErrValidation))
	}
	tpl, err := h.service.Update(c.Request().Context(), templateID, usecase.TemplateUpdate{
		Name:        req.Name,
		Description: req.Description,
		Params:      req.Params,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, tpl)
}

func (h *TemplateHandler) Delete(c echo.Context) error {
	templateID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	tpl, err := h.service.Delete(c.Request().Context(), templateID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, tpl)
}
