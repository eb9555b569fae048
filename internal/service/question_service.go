package service

import (
	"context"

	"gardrop/internal/models"
	"gardrop/internal/observability"
	"gardrop/internal/repository"
	"gardrop/internal/validation"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
	advertRepo   repository.AdvertRepository
}

type AskQuestionInput struct {
	UserID   uint
	AdvertID uint
	Content  string
}

type AnswerQuestionInput struct {
	UserID     uint
	QuestionID uint
	Content    string
}

func NewQuestionService(questionRepo repository.QuestionRepository, advertRepo repository.AdvertRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		advertRepo:   advertRepo,
	}
}

// AskQuestion attaches a new question to an advert. Owners may ask on their
// own adverts, e.g. to post clarifications visible in the thread.
func (s *QuestionService) AskQuestion(ctx context.Context, in AskQuestionInput) (*models.Question, error) {
	if err := validation.ValidateContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.advertRepo.GetByID(ctx, in.AdvertID, in.UserID); err != nil {
		return nil, err
	}

	question := &models.Question{
		AdvertID: in.AdvertID,
		UserID:   in.UserID,
		Content:  in.Content,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	observability.QuestionsAsked.WithLabelValues("question").Inc()
	return s.questionRepo.GetByID(ctx, question.ID)
}

// AnswerQuestion records the advert owner's single reply to a question.
func (s *QuestionService) AnswerQuestion(ctx context.Context, in AnswerQuestionInput) (*models.Question, error) {
	if err := validation.ValidateContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return nil, err
	}
	advert, err := s.advertRepo.GetByID(ctx, question.AdvertID, in.UserID)
	if err != nil {
		return nil, err
	}
	if advert.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("Only the advert owner can answer questions")
	}
	if question.Answer != nil {
		return nil, models.NewConflictError("Question already answered")
	}

	answer := &models.Answer{
		QuestionID: in.QuestionID,
		Content:    in.Content,
	}
	if err := s.questionRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}
	observability.QuestionsAsked.WithLabelValues("answer").Inc()
	return s.questionRepo.GetByID(ctx, in.QuestionID)
}

func (s *QuestionService) ListQuestions(ctx context.Context, advertID uint) ([]*models.Question, error) {
	if _, err := s.advertRepo.GetByID(ctx, advertID, 0); err != nil {
		return nil, err
	}
	return s.questionRepo.ListByAdvert(ctx, advertID)
}
