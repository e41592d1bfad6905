package service

import (
	"context"
	"fmt"

	"prepwise/internal/model"
	"prepwise/internal/repository"
)

// QuestionBankService handles admin CRUD over question banks.
type QuestionBankService struct {
	bankRepo repository.QuestionBankRepo
}

// NewQuestionBankService creates a new question bank service
func NewQuestionBankService(bankRepo repository.QuestionBankRepo) *QuestionBankService {
	return &QuestionBankService{bankRepo: bankRepo}
}

// Create validates and stores a new question bank.
func (s *QuestionBankService) Create(ctx context.Context, bank *model.QuestionBank) (string, error) {
	if bank.Name == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(bank.Questions) == 0 {
		return "", fmt.Errorf("%w: at least one question is required", ErrValidation)
	}
	for i := range bank.Questions {
		if bank.Questions[i].ID == "" {
			bank.Questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
	}
	return s.bankRepo.Create(ctx, bank)
}

// GetByID loads one question bank.
func (s *QuestionBankService) GetByID(ctx context.Context, id string) (*model.QuestionBank, error) {
	bank, err := s.bankRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, ErrQuestionBankNotFound
	}
	return bank, nil
}

// List returns all question banks.
func (s *QuestionBankService) List(ctx context.Context) ([]*model.QuestionBank, error) {
	return s.bankRepo.List(ctx)
}
