package service

import (
	"context"
	"strings"
	"testing"

	"gardrop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_AskQuestion_Validation(t *testing.T) {
	t.Parallel()

	svc := NewQuestionService(noopQuestionRepo(), noopAdvertRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty content", content: ""},
		{name: "whitespace only", content: "   "},
		{name: "content too long", content: strings.Repeat("x", 501)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AskQuestion(ctx, AskQuestionInput{UserID: 1, AdvertID: 2, Content: tt.content})
			assertValidationError(t, err)
		})
	}
}

func TestQuestionService_AskQuestion_AdvertMustExist(t *testing.T) {
	t.Parallel()

	advertRepo := noopAdvertRepo()
	advertRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Advert, error) {
		return nil, models.NewNotFoundError("Advert", id)
	}

	svc := NewQuestionService(noopQuestionRepo(), advertRepo)
	_, err := svc.AskQuestion(context.Background(), AskQuestionInput{UserID: 1, AdvertID: 2, Content: "Is this still available?"})
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestQuestionService_AskQuestion_OwnerMayAsk(t *testing.T) {
	t.Parallel()

	var created *models.Question
	questionRepo := noopQuestionRepo()
	questionRepo.createFn = func(_ context.Context, question *models.Question) error {
		question.ID = 10
		created = question
		return nil
	}

	advertRepo := noopAdvertRepo()
	advertRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Advert, error) {
		return &models.Advert{ID: id, UserID: 1}, nil
	}

	svc := NewQuestionService(questionRepo, advertRepo)
	_, err := svc.AskQuestion(context.Background(), AskQuestionInput{UserID: 1, AdvertID: 2, Content: "Pickup only, no shipping."})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(1), created.UserID)
	assert.Equal(t, uint(2), created.AdvertID)
}

func TestQuestionService_AnswerQuestion_OnlyOwnerMayAnswer(t *testing.T) {
	t.Parallel()

	questionRepo := noopQuestionRepo()
	questionRepo.getByIDFn = func(_ context.Context, id uint) (*models.Question, error) {
		return &models.Question{ID: id, AdvertID: 2, UserID: 5}, nil
	}

	advertRepo := noopAdvertRepo()
	advertRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Advert, error) {
		return &models.Advert{ID: id, UserID: 99}, nil
	}

	svc := NewQuestionService(questionRepo, advertRepo)
	_, err := svc.AnswerQuestion(context.Background(), AnswerQuestionInput{UserID: 1, QuestionID: 3, Content: "Yes, still available."})
	assertUnauthorizedError(t, err)
}

func TestQuestionService_AnswerQuestion_AlreadyAnswered(t *testing.T) {
	t.Parallel()

	questionRepo := noopQuestionRepo()
	questionRepo.getByIDFn = func(_ context.Context, id uint) (*models.Question, error) {
		return &models.Question{
			ID:       id,
			AdvertID: 2,
			Answer:   &models.Answer{ID: 1, QuestionID: id, Content: "Already answered"},
		}, nil
	}

	advertRepo := noopAdvertRepo()
	advertRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Advert, error) {
		return &models.Advert{ID: id, UserID: 1}, nil
	}

	svc := NewQuestionService(questionRepo, advertRepo)
	_, err := svc.AnswerQuestion(context.Background(), AnswerQuestionInput{UserID: 1, QuestionID: 3, Content: "Second answer"})
	assertConflictError(t, err)
}

func TestQuestionService_AnswerQuestion_Success(t *testing.T) {
	t.Parallel()

	var createdAnswer *models.Answer
	questionRepo := noopQuestionRepo()
	questionRepo.getByIDFn = func(_ context.Context, id uint) (*models.Question, error) {
		return &models.Question{ID: id, AdvertID: 2, UserID: 5}, nil
	}
	questionRepo.createAnswerFn = func(_ context.Context, answer *models.Answer) error {
		answer.ID = 7
		createdAnswer = answer
		return nil
	}

	advertRepo := noopAdvertRepo()
	advertRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Advert, error) {
		return &models.Advert{ID: id, UserID: 1}, nil
	}

	svc := NewQuestionService(questionRepo, advertRepo)
	_, err := svc.AnswerQuestion(context.Background(), AnswerQuestionInput{UserID: 1, QuestionID: 3, Content: "Yes, size M."})
	require.NoError(t, err)
	require.NotNil(t, createdAnswer)
	assert.Equal(t, uint(3), createdAnswer.QuestionID)
	assert.Equal(t, "Yes, size M.", createdAnswer.Content)
}

func TestQuestionService_AnswerQuestion_Validation(t *testing.T) {
	t.Parallel()

	svc := NewQuestionService(noopQuestionRepo(), noopAdvertRepo())
	_, err := svc.AnswerQuestion(context.Background(), AnswerQuestionInput{UserID: 1, QuestionID: 3, Content: ""})
	assertValidationError(t, err)
}

func TestQuestionService_ListQuestions_AdvertMustExist(t *testing.T) {
	t.Parallel()

	advertRepo := noopAdvertRepo()
	advertRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Advert, error) {
		return nil, models.NewNotFoundError("Advert", id)
	}

	svc := NewQuestionService(noopQuestionRepo(), advertRepo)
	_, err := svc.ListQuestions(context.Background(), 2)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestQuestionService_ListQuestions_EmptyThread(t *testing.T) {
	t.Parallel()

	questionRepo := noopQuestionRepo()
	questionRepo.listByAdvertFn = func(_ context.Context, _ uint) ([]*models.Question, error) {
		return []*models.Question{}, nil
	}

	svc := NewQuestionService(questionRepo, noopAdvertRepo())
	questions, err := svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
