package service

import (
	"context"
	"fmt"

	"prepwise/internal/model"
	"prepwise/internal/repository"
)

// TemplateService handles admin CRUD over interview templates and the
// candidate-facing active-only reads.
type TemplateService struct {
	templateRepo repository.TemplateRepo
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepo) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

func validateTemplate(tmpl *model.InterviewTemplate) error {
	if tmpl.CompanyName == "" {
		return fmt.Errorf("%w: companyName is required", ErrValidation)
	}
	if len(tmpl.Rounds) == 0 {
		return fmt.Errorf("%w: at least one round is required", ErrValidation)
	}
	for i := range tmpl.Rounds {
		round := &tmpl.Rounds[i]
		if !round.Type.Valid() {
			return fmt.Errorf("%w: unknown round type %q", ErrValidation, round.Type)
		}
		if round.PassingScore < 0 || round.PassingScore > 100 {
			return fmt.Errorf("%w: passingScore outside 0-100", ErrValidation)
		}
		if round.ID == "" {
			round.ID = fmt.Sprintf("r%d", i+1)
		}
	}
	return nil
}

// Create validates and stores a new template.
func (s *TemplateService) Create(ctx context.Context, tmpl *model.InterviewTemplate) (string, error) {
	if err := validateTemplate(tmpl); err != nil {
		return "", err
	}
	return s.templateRepo.Create(ctx, tmpl)
}

// GetByID loads a template. Inactive templates are hidden unless the caller
// is an admin.
func (s *TemplateService) GetByID(ctx context.Context, id string, includeInactive bool) (*model.InterviewTemplate, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, ErrTemplateNotFound
	}
	if !tmpl.IsActive && !includeInactive {
		return nil, ErrTemplateUnavailable
	}
	return tmpl, nil
}

// List returns templates, filtered to active ones for non-admins.
func (s *TemplateService) List(ctx context.Context, includeInactive bool) ([]*model.InterviewTemplate, error) {
	return s.templateRepo.List(ctx, includeInactive)
}

// Update validates and replaces an existing template.
func (s *TemplateService) Update(ctx context.Context, tmpl *model.InterviewTemplate) error {
	if err := validateTemplate(tmpl); err != nil {
		return err
	}
	existing, err := s.templateRepo.GetByID(ctx, tmpl.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}
	tmpl.CreatedAt = existing.CreatedAt
	return s.templateRepo.Update(ctx, tmpl)
}

// Delete removes a template.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	existing, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}
	return s.templateRepo.Delete(ctx, id)
}
