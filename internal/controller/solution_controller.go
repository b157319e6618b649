package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/service"
	"sysdesign_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SolutionController struct {
	SolutionService *service.SolutionService
}

func NewSolutionController(solutionService *service.SolutionService) *SolutionController {
	return &SolutionController{SolutionService: solutionService}
}

// List godoc
// @Summary 当前用户的全部解答
// @Tags 解答
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {array} model.Solution
// @Router /solutions [get]
func (c *SolutionController) List(ctx *gin.Context) {
	solutions, err := c.SolutionService.List(util.GetUserFromContext(ctx).UserID)
	if err != nil {
		util.LogInternalError(ctx, "Error fetching solutions", err)
		return
	}

	ctx.JSON(http.StatusOK, solutions)
}

// ListByQuestion godoc
// @Summary 当前用户针对某题的解答
// @Tags 解答
// @Produce  json
// @Security ApiKeyAuth
// @Param   questionId path int true "题目ID"
// @Success 200 {array} model.Solution
// @Router /solutions/question/{questionId} [get]
func (c *SolutionController) ListByQuestion(ctx *gin.Context) {
	questionID, ok := parseID(ctx, "questionId")
	if !ok {
		return
	}

	solutions, err := c.SolutionService.ListByQuestion(util.GetUserFromContext(ctx).UserID, questionID)
	if err != nil {
		util.LogInternalError(ctx, "Error fetching solutions", err)
		return
	}

	ctx.JSON(http.StatusOK, solutions)
}

// Get godoc
// @Summary 解答详情
// @Description 题目完整展开。他人的解答一律按不存在处理
// @Tags 解答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "解答ID"
// @Success 200 {object} model.Solution
// @Failure 404 {object} util.MessageResponse "解答不存在"
// @Router /solutions/{id} [get]
func (c *SolutionController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	solution, err := c.SolutionService.Get(id, util.GetUserFromContext(ctx).UserID)
	if err != nil {
		if errors.Is(err, util.ErrSolutionNotFound) {
			util.NotFound(ctx, "Solution not found")
		} else {
			util.LogInternalError(ctx, "Error fetching solution", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, solution)
}

// CreateSolutionRequest 首次保存解答
// swagger:model CreateSolutionRequest
type CreateSolutionRequest struct {
	QuestionID      uint            `json:"questionId" binding:"required"`
	ExcalidrawData  json.RawMessage `json:"excalidrawData" binding:"required"`
	ExcalidrawImage string          `json:"excalidrawImage"`
}

// Create godoc
// @Summary 提交新解答
// @Tags 解答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateSolutionRequest true "画布数据"
// @Success 201 {object} model.Solution
// @Failure 404 {object} util.MessageResponse "题目不存在"
// @Router /solutions [post]
func (c *SolutionController) Create(ctx *gin.Context) {
	var req CreateSolutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	solution, err := c.SolutionService.Create(
		util.GetUserFromContext(ctx).UserID,
		req.QuestionID,
		req.ExcalidrawData,
		req.ExcalidrawImage,
	)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, "Error submitting solution", err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, solution)
}

// UpdateSolutionRequest 保存进度
// swagger:model UpdateSolutionRequest
type UpdateSolutionRequest struct {
	ExcalidrawData  json.RawMessage `json:"excalidrawData" binding:"required"`
	ExcalidrawImage string          `json:"excalidrawImage"`
}

// Update godoc
// @Summary 保存解答进度
// @Description 任何一次保存都会把状态重置为 pending，旧评测作废
// @Tags 解答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "解答ID"
// @Param   body body UpdateSolutionRequest true "画布数据"
// @Success 200 {object} model.Solution
// @Failure 404 {object} util.MessageResponse "解答不存在"
// @Router /solutions/{id} [put]
func (c *SolutionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req UpdateSolutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	solution, err := c.SolutionService.Update(
		id,
		util.GetUserFromContext(ctx).UserID,
		req.ExcalidrawData,
		req.ExcalidrawImage,
	)
	if err != nil {
		if errors.Is(err, util.ErrSolutionNotFound) {
			util.NotFound(ctx, "Solution not found")
		} else {
			util.LogInternalError(ctx, "Error updating solution", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, solution)
}

// EvaluationErrorResponse 评测失败时的响应：错误信息连同已落库的解答一起返回
type EvaluationErrorResponse struct {
	Message  string          `json:"message"`
	Error    string          `json:"error"`
	Solution *model.Solution `json:"solution"`
}

// Evaluate godoc
// @Summary 评测解答
// @Description 在请求内同步调用外部模型评分。失败时解答以 error 状态落库并返回500
// @Tags 解答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "解答ID"
// @Success 200 {object} model.Solution
// @Failure 404 {object} util.MessageResponse "解答不存在"
// @Failure 500 {object} EvaluationErrorResponse "评测失败"
// @Router /solutions/{id}/evaluate [post]
func (c *SolutionController) Evaluate(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	solution, err := c.SolutionService.Evaluate(ctx.Request.Context(), id, util.GetUserFromContext(ctx).UserID)
	if err != nil {
		if errors.Is(err, util.ErrSolutionNotFound) {
			util.NotFound(ctx, "Solution not found")
			return
		}
		if solution != nil {
			ctx.JSON(http.StatusInternalServerError, EvaluationErrorResponse{
				Message:  "Evaluation failed",
				Error:    err.Error(),
				Solution: solution,
			})
			return
		}
		util.LogInternalError(ctx, "Error evaluating solution", err)
		return
	}

	ctx.JSON(http.StatusOK, solution)
}

// Delete godoc
// @Summary 删除解答
// @Tags 解答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "解答ID"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse "解答不存在"
// @Router /solutions/{id} [delete]
func (c *SolutionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.SolutionService.Delete(id, util.GetUserFromContext(ctx).UserID); err != nil {
		if errors.Is(err, util.ErrSolutionNotFound) {
			util.NotFound(ctx, "Solution not found")
		} else {
			util.LogInternalError(ctx, "Error deleting solution", err)
		}
		return
	}

	util.Message(ctx, http.StatusOK, "Solution deleted successfully")
}
