package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/model"
	"github.com/stemsi/trivia-backend/internal/repository"
)

// CatalogOptions tunes QuestionCatalog behavior.
type CatalogOptions struct {
	// StrictCategoryRefs rejects questions whose category is not registered.
	StrictCategoryRefs bool
}

// QuestionCatalog owns the question collection and its query operations.
type QuestionCatalog struct {
	store      repository.QuestionStore
	categories *CategoryRegistry
	opts       CatalogOptions
	log        zerolog.Logger
}

// NewQuestionCatalog creates a new QuestionCatalog.
func NewQuestionCatalog(store repository.QuestionStore, categories *CategoryRegistry, opts CatalogOptions, log zerolog.Logger) *QuestionCatalog {
	return &QuestionCatalog{
		store:      store,
		categories: categories,
		opts:       opts,
		log:        log.With().Str("component", "question_catalog").Logger(),
	}
}

// Insert validates nq and stores it under the next id.
func (s *QuestionCatalog) Insert(ctx context.Context, nq model.NewQuestion) (*model.Question, error) {
	if err := s.validate(ctx, nq); err != nil {
		return nil, err
	}

	q := &model.Question{
		Text:       nq.Text,
		Answer:     nq.Answer,
		CategoryID: *nq.CategoryID,
		Difficulty: *nq.Difficulty,
	}
	if err := s.store.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	s.log.Debug().Int("question_id", q.ID).Int("category", q.CategoryID).Msg("Question created")
	return q, nil
}

// Delete removes a question permanently.
func (s *QuestionCatalog) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: id %d", ErrQuestionNotFound, id)
		}
		return fmt.Errorf("delete question: %w", err)
	}

	s.log.Debug().Int("question_id", id).Msg("Question deleted")
	return nil
}

// List returns every question ordered by id.
func (s *QuestionCatalog) List(ctx context.Context) ([]model.Question, error) {
	questions, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return nonNil(questions), nil
}

// FilterByCategory returns the questions whose category equals categoryID.
// AnyCategory has no special meaning here.
func (s *QuestionCatalog) FilterByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	questions, err := s.store.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return nonNil(questions), nil
}

// Search returns questions whose text contains term, ignoring case.
// An empty term matches the whole catalog.
func (s *QuestionCatalog) Search(ctx context.Context, term string) ([]model.Question, error) {
	questions, err := s.store.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return nonNil(questions), nil
}

// Count returns the total number of questions.
func (s *QuestionCatalog) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (s *QuestionCatalog) validate(ctx context.Context, nq model.NewQuestion) error {
	fields := make(map[string]string)
	if strings.TrimSpace(nq.Text) == "" {
		fields["question"] = "question is a required field"
	}
	if strings.TrimSpace(nq.Answer) == "" {
		fields["answer"] = "answer is a required field"
	}
	if nq.CategoryID == nil {
		fields["category"] = "category is a required field"
	}
	if nq.Difficulty == nil {
		fields["difficulty"] = "difficulty is a required field"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	if s.opts.StrictCategoryRefs && s.categories != nil {
		ok, err := s.categories.Exists(ctx, *nq.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return &ValidationError{Fields: map[string]string{
				"category": fmt.Sprintf("category %d does not exist", *nq.CategoryID),
			}}
		}
	}
	return nil
}

func nonNil(questions []model.Question) []model.Question {
	if questions == nil {
		return []model.Question{}
	}
	return questions
}
