package server

import (
	"gardrop/internal/models"
	"gardrop/internal/service"

	"github.com/gofiber/fiber/v2"
)

type contentRequest struct {
	Content string `json:"content"`
}

// AskQuestion handles POST /api/adverts/:id/questions
func (s *Server) AskQuestion(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	advertID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req contentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.AskQuestion(ctx, service.AskQuestionInput{
		UserID:   userID,
		AdvertID: advertID,
		Content:  req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// AnswerQuestion handles POST /api/questions/:id/answer
func (s *Server) AnswerQuestion(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req contentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	question, err := s.questionService.AnswerQuestion(ctx, service.AnswerQuestionInput{
		UserID:     userID,
		QuestionID: questionID,
		Content:    req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// GetAdvertQuestions handles GET /api/adverts/:id/questions
func (s *Server) GetAdvertQuestions(c *fiber.Ctx) error {
	ctx := c.Context()
	advertID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	questions, err := s.questionService.ListQuestions(ctx, advertID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(questions)
}
