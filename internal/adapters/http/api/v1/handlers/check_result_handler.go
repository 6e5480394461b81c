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

type CheckResultHandler struct {
	service usecase.CheckResultService
}

func NewCheckResultHandler(service usecase.CheckResultService) *CheckResultHandler {
	return &CheckResultHandler{service: service}
}

type checkResultCreateRequest struct {
	DocumentID       int64          `json:"document_id"`
	TemplateID       int64          `json:"template_id"`
	Passed           bool           `json:"passed"`
	OverallScore     *float64       `json:"overall_score"`
	Issues           []domain.Issue `json:"issues"`
	ProcessingTimeMs int            `json:"processing_time_ms"`
}

func (h *CheckResultHandler) Get(c echo.Context) error {
	checkResultID, err := pathID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	result, err := h.service.Get(c.Request().Context(), checkResultID, middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, result)
}

func (h *CheckResultHandler) GetForDocument(c echo.Context) error {
	documentID, err := pathID(c, "document_id")
	if err != nil {
		return respondError(c, err)
	}
	results, err := h.service.GetForDocument(c.Request().Context(), documentID, middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusOK, results)
}

func (h *CheckResultHandler) Create(c echo.Context) error {
	req := new(checkResultCreateRequest)
	if err := c.Bind(req); err != nil {
		return respondError(c, fmt.Errorf("%w: invalid payload", usecase.ErrValidation))
	}
	result, err := h.service.Create(c.Request().Context(), usecase.CheckResultInput{
		DocumentID:       req.DocumentID,
		TemplateID:       req.TemplateID,
		Passed:           req.Passed,
		OverallScore:     req.OverallScore,
		Issues:           req.Issues,
		ProcessingTimeMs: req.ProcessingTimeMs,
	}, middleware.CurrentUser(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return res.JSON(c, http.StatusCreated, result)
}
