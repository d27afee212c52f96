package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	questionUC "github.com/khoahotran/codetrackr/internal/application/usecase/question"
	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type QuestionHandler struct {
	createQuestionUseCase *questionUC.CreateQuestionUseCase
	listQuestionsUseCase  *questionUC.ListQuestionsUseCase
	getQuestionUseCase    *questionUC.GetQuestionUseCase
	updateQuestionUseCase *questionUC.UpdateQuestionUseCase
	deleteQuestionUseCase *questionUC.DeleteQuestionUseCase
	logger                logger.Logger
}

func NewQuestionHandler(
	createUC *questionUC.CreateQuestionUseCase,
	listUC *questionUC.ListQuestionsUseCase,
	getUC *questionUC.GetQuestionUseCase,
	updateUC *questionUC.UpdateQuestionUseCase,
	deleteUC *questionUC.DeleteQuestionUseCase,
	log logger.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		createQuestionUseCase: createUC,
		listQuestionsUseCase:  listUC,
		getQuestionUseCase:    getUC,
		updateQuestionUseCase: updateUC,
		deleteQuestionUseCase: deleteUC,
		logger:                log,
	}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := questionUC.CreateQuestionInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  question.Difficulty(req.Difficulty),
		Status:      question.Status(req.Status),
		Platform:    req.Platform,
		ProblemURL:  req.ProblemURL,
		SolutionURL: req.SolutionURL,
		Notes:       req.Notes,
		TimeSpent:   req.TimeSpent,
	}

	output, err := h.createQuestionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToQuestionDTO(output.Question))
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := questionUC.ListQuestionsInput{OwnerID: ownerID}
	output, err := h.listQuestionsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]QuestionDTO, len(output.Questions))
	for i, q := range output.Questions {
		dtos[i] = ToQuestionDTO(q)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid question ID", err))
		return
	}

	input := questionUC.GetQuestionInput{QuestionID: questionID, OwnerID: ownerID}
	output, err := h.getQuestionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToQuestionDTO(output.Question))
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid question ID", err))
		return
	}
	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := questionUC.UpdateQuestionInput{
		QuestionID: questionID,
		OwnerID:    ownerID,
		Update:     req.ToDomainUpdate(),
	}

	output, err := h.updateQuestionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToQuestionDTO(output.Question))
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid question ID", err))
		return
	}

	input := questionUC.DeleteQuestionInput{QuestionID: questionID, OwnerID: ownerID}
	if err := h.deleteQuestionUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
