package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	natsadapter "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/nats"
	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

type DocumentService interface {
	Get(ctx context.Context, documentID, userID int64) (*domain.Document, error)
	GetForUser(ctx context.Context, userID int64) ([]domain.Document, error)
	Create(ctx context.Context, userID int64, googleDocID string, title *string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, documentID, userID int64, status domain.DocumentStatus) (*domain.Document, error)
	Delete(ctx context.Context, documentID, userID int64) (*domain.Document, error)
}

type documentService struct {
	logger    pkglog.Logger
	documents repo.DocumentRepository
	events    *natsadapter.Publisher
}

func NewDocumentService(logger pkglog.Logger, documents repo.DocumentRepository, events *natsadapter.Publisher) DocumentService {
	return &documentService{logger: logger, documents: documents, events: events}
}

// Get returns the document with an ownership check: a foreign document is a
// 403, a missing one a 404, so existence leaks only to its owner's peers.
func (s *documentService) Get(ctx context.Context, documentID, userID int64) (*domain.Document, error) {
	return s.owned(ctx, documentID, userID)
}

func (s *documentService) GetForUser(ctx context.Context, userID int64) ([]domain.Document, error) {
	return s.documents.FindByUserID(ctx, userID)
}

func (s *documentService) Create(ctx context.Context, userID int64, googleDocID string, title *string) (*domain.Document, error) {
	googleDocID = strings.TrimSpace(googleDocID)
	if googleDocID == "" {
		return nil, fmt.Errorf("%w: google_doc_id is required", ErrValidation)
	}
	doc := &domain.Document{
		UserID:      userID,
		GoogleDocID: googleDocID,
		Title:       title,
		Status:      domain.DocumentPending,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: document with this google doc id", ErrConflict)
		}
		return nil, err
	}
	if err := s.events.PublishDocumentRegistered(natsadapter.DocumentRegistered{
		DocumentID:  doc.ID,
		UserID:      userID,
		GoogleDocID: googleDocID,
	}); err != nil {
		s.logger.Warn().Err(err).Int64("document_id", doc.ID).Msg("publish document event failed")
	}
	s.logger.Info().Int64("document_id", doc.ID).Int64("user_id", userID).Msg("document registered")
	return doc, nil
}

func (s *documentService) UpdateStatus(ctx context.Context, documentID, userID int64, status domain.DocumentStatus) (*domain.Document, error) {
	if !domain.ValidDocumentStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	doc, err := s.owned(ctx, documentID, userID)
	if err != nil {
		return nil, err
	}
	doc.Status = status
	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, documentID, userID int64) (*domain.Document, error) {
	doc, err := s.owned(ctx, documentID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.documents.Delete(ctx, doc); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("document_id", documentID).Msg("document deleted")
	return doc, nil
}

func (s *documentService) owned(ctx context.Context, documentID, userID int64) (*domain.Document, error) {
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
