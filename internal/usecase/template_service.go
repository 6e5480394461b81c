package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	repo "github.com/Maksym-Tomusiak/Diploma-API/internal/adapters/postgres"
	"github.com/Maksym-Tomusiak/Diploma-API/internal/domain"
	pkglog "github.com/Maksym-Tomusiak/Diploma-API/pkg/log"
)

// TemplateUpdate carries the mutable template fields; nil means "leave as is".
type TemplateUpdate struct {
	Name        *string
	Description *string
	Params      *domain.TemplateParams
	IsActive    *bool
}

type TemplateService interface {
	Get(ctx context.Context, templateID int64) (*domain.Template, error)
	GetAll(ctx context.Context, includeInactive bool) ([]domain.Template, error)
	Create(ctx context.Context, name, description string, params domain.TemplateParams) (*domain.Template, error)
	Update(ctx context.Context, templateID int64, update TemplateUpdate) (*domain.Template, error)
	Delete(ctx context.Context, templateID int64) (*domain.Template, error)
}

type templateService struct {
	logger    pkglog.Logger
	templates repo.TemplateRepository
}

func NewTemplateService(logger pkglog.Logger, templates repo.TemplateRepository) TemplateService {
	return &templateService{logger: logger, templates: templates}
}

func (s *templateService) Get(ctx context.Context, templateID int64) (*domain.Template, error) {
	tpl, err := s.templates.FindByID(ctx, templateID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("%w: template %d", ErrNotFound, templateID)
	}
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *templateService) GetAll(ctx context.Context, includeInactive bool) ([]domain.Template, error) {
	return s.templates.FindAll(ctx, !includeInactive)
}

func (s *templateService) Create(ctx context.Context, name, description string, params domain.TemplateParams) (*domain.Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: template name is required", ErrValidation)
	}
	tpl := &domain.Template{Name: name, Description: description, Params: params, IsActive: true}
	if err := s.templates.Create(ctx, tpl); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: template with this name", ErrConflict)
		}
		return nil, err
	}
	s.logger.Info().Int64("template_id", tpl.ID).Str("name", name).Msg("template created")
	return tpl, nil
}

func (s *templateService) Update(ctx context.Context, templateID int64, update TemplateUpdate) (*domain.Template, error) {
	tpl, err := s.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: template name is required", ErrValidation)
		}
		if existing, err := s.templates.FindByName(ctx, name); err == nil && existing.ID != templateID {
			return nil, fmt.Errorf("%w: template with this name", ErrConflict)
		}
		tpl.Name = name
	}
	if update.Description != nil {
		tpl.Description = *update.Description
	}
	if update.Params != nil {
		tpl.Params = *update.Params
	}
	if update.IsActive != nil {
		tpl.IsActive = *update.IsActive
	}
	if err := s.templates.Update(ctx, tpl); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: template with this name", ErrConflict)
		}
		return nil, err
	}
	return tpl, nil
}

func (s *templateService) Delete(ctx context.Context, templateID int64) (*domain.Template, error) {
	tpl, err := s.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if err := s.templates.Delete(ctx, tpl); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("template_id", templateID).Msg("template deleted")
	return tpl, nil
}
