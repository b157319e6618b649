package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/repository"
	"sysdesign_backend/internal/service"
	"sysdesign_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// List godoc
// @Summary 题目列表
// @Description 支持按分类、难度精确筛选，search 在标题/描述上做模糊匹配；各条件为AND关系
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   category query string false "分类"
// @Param   difficulty query string false "难度" Enums(Easy, Medium, Hard)
// @Param   search query string false "标题/描述关键字"
// @Success 200 {array} model.Question
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	filter := repository.QuestionFilter{
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
		Search:     ctx.Query("search"),
	}

	questions, err := c.QuestionService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, "Error fetching questions", err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary 题目详情
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} model.Question
// @Failure 404 {object} util.MessageResponse "题目不存在"
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	question, err := c.QuestionService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, "Error fetching question", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, question)
}

// QuestionRequest 新建/更新题目的载荷
// swagger:model QuestionRequest
type QuestionRequest struct {
	Title              string                      `json:"title" binding:"required"`
	Description        string                      `json:"description" binding:"required"`
	Difficulty         model.Difficulty            `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Category           string                      `json:"category"`
	Requirements       []string                    `json:"requirements"`
	Hints              []string                    `json:"hints"`
	EvaluationCriteria []model.EvaluationCriterion `json:"evaluationCriteria"`
	SampleSolution     string                      `json:"sampleSolution"`
}

func (r *QuestionRequest) toModel() *model.Question {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	category := r.Category
	if category == "" {
		category = "Other"
	}
	return &model.Question{
		Title:              r.Title,
		Description:        r.Description,
		Difficulty:         difficulty,
		Category:           category,
		Requirements:       r.Requirements,
		Hints:              r.Hints,
		EvaluationCriteria: r.EvaluationCriteria,
		SampleSolution:     r.SampleSolution,
	}
}

// Create godoc
// @Summary 新建题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuestionRequest true "题目内容"
// @Success 201 {object} model.Question
// @Failure 403 {object} util.MessageResponse "需要管理员权限"
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := req.toModel()
	question.CreatedByID = util.GetUserFromContext(ctx).UserID

	if err := c.QuestionService.Create(question); err != nil {
		util.LogInternalError(ctx, "Error creating question", err)
		return
	}

	ctx.JSON(http.StatusCreated, question)
}

// Update godoc
// @Summary 更新题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Param   body body QuestionRequest true "题目内容"
// @Success 200 {object} model.Question
// @Failure 404 {object} util.MessageResponse "题目不存在"
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(id, req.toModel())
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, "Error updating question", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, question)
}

// Delete godoc
// @Summary 删除题目
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse "题目不存在"
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.QuestionService.Delete(id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, "Error deleting question", err)
		}
		return
	}

	util.Message(ctx, http.StatusOK, "Question deleted successfully")
}

// SeedResponse 种子接口的响应
type SeedResponse struct {
	Message   string           `json:"message"`
	Questions []model.Question `json:"questions"`
}

// Seed godoc
// @Summary 重置示例题库
// @Description 清空现有题目并写入六道内置示例题。破坏性操作，用于环境初始化
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Success 201 {object} SeedResponse
// @Failure 403 {object} util.MessageResponse "需要管理员权限"
// @Router /questions/seed [post]
func (c *QuestionController) Seed(ctx *gin.Context) {
	questions, err := c.QuestionService.Seed(util.GetUserFromContext(ctx).UserID)
	if err != nil {
		util.LogInternalError(ctx, "Error seeding questions", err)
		return
	}

	ctx.JSON(http.StatusCreated, SeedResponse{
		Message:   fmt.Sprintf("Successfully seeded %d questions", len(questions)),
		Questions: questions,
	})
}

// parseID 路径参数转uint；非法id按404处理（与不存在等价）
func parseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		util.NotFound(ctx, "Resource not found")
		return 0, false
	}
	return uint(id), true
}
