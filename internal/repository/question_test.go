package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"gardrop/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepository_CreateAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("first answer inserts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewQuestionRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "answers" .* ON CONFLICT \("question_id"\) DO NOTHING`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.CreateAnswer(ctx, &models.Answer{QuestionID: 9, Content: "Still available"})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second answer is a conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewQuestionRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "answers" .* ON CONFLICT \("question_id"\) DO NOTHING`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		err := repo.CreateAnswer(ctx, &models.Answer{QuestionID: 9, Content: "Again"})
		require.Error(t, err)
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestQuestionRepository_ListByAdvert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	questionRows := sqlmock.NewRows([]string{"id", "advert_id", "user_id", "content"}).
		AddRow(1, 5, 2, "Is this still available?").
		AddRow(2, 5, 3, "What is the fit like?")
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "questions" WHERE advert_id = $1 ORDER BY created_at ASC`,
	)).WithArgs(5).WillReturnRows(questionRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "answers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "question_id", "content"}).
			AddRow(10, 1, "Yes it is"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(2, "ayse").AddRow(3, "mehmet"))

	questions, err := repo.ListByAdvert(ctx, 5)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	require.NotNil(t, questions[0].Answer)
	assert.Equal(t, "Yes it is", questions[0].Answer.Content)
	assert.Nil(t, questions[1].Answer)
}
