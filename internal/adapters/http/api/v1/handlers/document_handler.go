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

type DocumentHandler struct {
	service usecase.DocumentService
}

func NewDocumentHandler(service usecase.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type documentCreateRequest struct {
	GoogleDocID string  `json:"google_doc_id"`
	Title       *string `json:"title"`
}

type documentStatusRequest struct {
	Status domain.DocumentStatus `json:"status"`
}

func (h *DocumentHandler) GetAll(c echo.Context) error {
	docs, err := h.service.GetForUser(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, docs)
}

func (h *DocumentHandler) Get(c echo.Context) error {
	documentID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.service.Get(c.Request().Context(), documentID, middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, doc)
}

func (h *DocumentHandler) Create(c echo.Context) error {
	req := new(documentCreateRequest)
	if err := c.Bind(req); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid payload", usecase.ErrValidation))
	}
	doc, err := h.service.Create(c.Request().Context(), middleware.CurrentUser(c).ID, req.GoogleDocID, req.Title)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusCreated, doc)
}

func (h *DocumentHandler) UpdateStatus(c echo.Context) error {
	documentID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	req := new(documentStatusRequest)
	if err := c.Bind(req); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid payload", usecase.ErrValidation))
	}
	doc, err := h.service.UpdateStatus(c.Request().Context(), documentID, middleware.CurrentUser(c).ID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	documentID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	doc, err := h.service.Delete(c.Request().Context(), documentID, middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, doc)
}
