package service

import (
	"context"
	"errors"
	"testing"

	"gardrop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advertRepoStub is a stub for repository.AdvertRepository.
type advertRepoStub struct {
	createFn          func(context.Context, *models.Advert) error
	getByIDFn         func(context.Context, uint, uint) (*models.Advert, error)
	getByUserIDFn     func(context.Context, uint, int, int, uint) ([]*models.Advert, error)
	listRecentFn      func(context.Context, int, uint) ([]*models.Advert, error)
	updateFn          func(context.Context, *models.Advert, []models.AdvertImage, bool) error
	deleteFn          func(context.Context, uint) error
	saveFn            func(context.Context, uint, uint) error
	unsaveFn          func(context.Context, uint, uint) error
	isSavedFn         func(context.Context, uint, uint) (bool, error)
	listSavedByUserFn func(context.Context, uint, int, int) ([]*models.Advert, error)
}

func (s *advertRepoStub) Create(ctx context.Context, advert *models.Advert) error {
	return s.createFn(ctx, advert)
}
func (s *advertRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Advert, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *advertRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Advert, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *advertRepoStub) ListRecent(ctx context.Context, limit int, currentUserID uint) ([]*models.Advert, error) {
	return s.listRecentFn(ctx, limit, currentUserID)
}
func (s *advertRepoStub) Update(ctx context.Context, advert *models.Advert, images []models.AdvertImage, replaceImages bool) error {
	return s.updateFn(ctx, advert, images, replaceImages)
}
func (s *advertRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *advertRepoStub) Save(ctx context.Context, userID, advertID uint) error {
	return s.saveFn(ctx, userID, advertID)
}
func (s *advertRepoStub) Unsave(ctx context.Context, userID, advertID uint) error {
	return s.unsaveFn(ctx, userID, advertID)
}
func (s *advertRepoStub) IsSaved(ctx context.Context, userID, advertID uint) (bool, error) {
	return s.isSavedFn(ctx, userID, advertID)
}
func (s *advertRepoStub) ListSavedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Advert, error) {
	return s.listSavedByUserFn(ctx, userID, limit, offset)
}

func noopAdvertRepo() *advertRepoStub {
	return &advertRepoStub{
		createFn:  func(_ context.Context, _ *models.Advert) error { return nil },
		getByIDFn: func(_ context.Context, _, _ uint) (*models.Advert, error) { return &models.Advert{}, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Advert, error) {
			return nil, nil
		},
		listRecentFn: func(_ context.Context, _ int, _ uint) ([]*models.Advert, error) { return nil, nil },
		updateFn: func(_ context.Context, _ *models.Advert, _ []models.AdvertImage, _ bool) error {
			return nil
		},
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		saveFn:    func(_ context.Context, _, _ uint) error { return nil },
		unsaveFn:  func(_ context.Context, _, _ uint) error { return nil },
		isSavedFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listSavedByUserFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Advert, error) {
			return nil, nil
		},
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn      func(context.Context) ([]models.Category, error)
	getByIDFn   func(context.Context, uint) (*models.Category, error)
	getBySlugFn func(context.Context, string) (*models.Category, error)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getBySlugFn(ctx, slug)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id}, nil
		},
		getBySlugFn: func(_ context.Context, slug string) (*models.Category, error) {
			return &models.Category{ID: 1, Slug: slug}, nil
		},
	}
}

// questionRepoStub is a stub for repository.QuestionRepository.
type questionRepoStub struct {
	createFn       func(context.Context, *models.Question) error
	getByIDFn      func(context.Context, uint) (*models.Question, error)
	listByAdvertFn func(context.Context, uint) ([]*models.Question, error)
	createAnswerFn func(context.Context, *models.Answer) error
}

func (s *questionRepoStub) Create(ctx context.Context, question *models.Question) error {
	return s.createFn(ctx, question)
}
func (s *questionRepoStub) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *questionRepoStub) ListByAdvert(ctx context.Context, advertID uint) ([]*models.Question, error) {
	return s.listByAdvertFn(ctx, advertID)
}
func (s *questionRepoStub) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	return s.createAnswerFn(ctx, answer)
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		createFn:       func(_ context.Context, _ *models.Question) error { return nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Question, error) { return &models.Question{ID: id}, nil },
		listByAdvertFn: func(_ context.Context, _ uint) ([]*models.Question, error) { return nil, nil },
		createAnswerFn: func(_ context.Context, _ *models.Answer) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "UNAUTHORIZED")
}

// assertConflictError asserts that err is an AppError with code CONFLICT.
func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "CONFLICT")
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
