package usecase

import (
	"context"
	"errors"
	"fmt"

	natsadapter "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/nats"
	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

// CheckResultInput is the checker's verdict. passed, score and issues are
// opaque to this service; it records them without interpretation.
type CheckResultInput struct {
	DocumentID       int64
	TemplateID       int64
	Passed           bool
	OverallScore     *float64
	Issues           []domain.Issue
	ProcessingTimeMs int
}

type CheckResultService interface {
	Get(ctx context.Context, checkResultID, userID int64) (*domain.CheckResult, error)
	GetForDocument(ctx context.Context, documentID, userID int64) ([]domain.CheckResult, error)
	Create(ctx context.Context, input CheckResultInput, userID int64) (*domain.CheckResult, error)
}

type checkResultService struct {
	logger    pkglog.Logger
	results   repo.CheckResultRepository
	documents repo.DocumentRepository
	templates repo.TemplateRepository
	events    *natsadapter.Publisher
}

func NewCheckResultService(logger pkglog.Logger, results repo.CheckResultRepository, documents repo.DocumentRepository, templates repo.TemplateRepository, events *natsadapter.Publisher) CheckResultService {
	return &checkResultService{logger: logger, results: results, documents: documents, templates: templates, events: events}
}

func (s *checkResultService) Get(ctx context.Context, checkResultID, userID int64) (*domain.CheckResult, error) {
	result, err := s.results.FindByID(ctx, checkResultID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("%w: check result %d", ErrNotFound, checkResultID)
	}
	if err != nil {
		return nil, err
	}
	// ownership lives on the document, not the result
	if _, err := s.ownedDocument(ctx, result.DocumentID, userID); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *checkResultService) GetForDocument(ctx context.Context, documentID, userID int64) ([]domain.CheckResult, error) {
	if _, err := s.ownedDocument(ctx, documentID, userID); err != nil {
		return nil, err
	}
	return s.results.FindByDocumentID(ctx, documentID)
}

func (s *checkResultService) Create(ctx context.Context, input CheckResultInput, userID int64) (*domain.CheckResult, error) {
	if input.OverallScore != nil && (*input.OverallScore < 0 || *input.OverallScore > 1) {
		return nil, fmt.Errorf("%w: overall_score must be within [0, 1]", ErrValidation)
	}
	if _, err := s.ownedDocument(ctx, input.DocumentID, userID); err != nil {
		return nil, err
	}
	if _, err := s.templates.FindByID(ctx, input.TemplateID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: template %d", ErrNotFound, input.TemplateID)
		}
		return nil, err
	}
	issues := input.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}
	result := &domain.CheckResult{
		DocumentID:       input.DocumentID,
		TemplateID:       input.TemplateID,
		Passed:           input.Passed,
		OverallScore:     input.OverallScore,
		IssuesCount:      len(issues),
		Issues:           issues,
		ProcessingTimeMs: input.ProcessingTimeMs,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}
	if err := s.events.PublishCheckResultCreated(natsadapter.CheckResultCreated{
		CheckResultID: result.ID,
		DocumentID:    result.DocumentID,
		TemplateID:    result.TemplateID,
		Passed:        result.Passed,
	}); err != nil {
		s.logger.Warn().Err(err).Int64("check_result_id", result.ID).Msg("publish check result event failed")
	}
	s.logger.Info().Int64("check_result_id", result.ID).Int64("document_id", result.DocumentID).Bool("passed", result.Passed).Msg("check result recorded")
	return result, nil
}

func (s *checkResultService) ownedDocument(ctx context.Context, documentID, userID int64) (*domain.Document, error) {
	doc, err := s.documents.FindByID(ctx, documentID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("%w: document %d", ErrNotFound, documentID)
	}
	if err != nil {
		return nil, err
	}
	if doc.UserID != userID {
		return nil, fmt.Errorf("%w: document %d", ErrForbidden, documentID)
	}
	return doc, nil
}
