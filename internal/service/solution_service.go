package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/repository"
	"sysdesign_backend/internal/util"
	"sysdesign_backend/pkg/logger"
	"sysdesign_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SolutionService struct {
	SolutionRepo *repository.SolutionRepository
	QuestionRepo *repository.QuestionRepository
	Evaluator    *EvaluationService
	Storage      *StorageService
}

func NewSolutionService(
	solutionRepo *repository.SolutionRepository,
	questionRepo *repository.QuestionRepository,
	evaluator *EvaluationService,
	storage *StorageService,
) *SolutionService {
	return &SolutionService{
		SolutionRepo: solutionRepo,
		QuestionRepo: questionRepo,
		Evaluator:    evaluator,
		Storage:      storage,
	}
}

func (s *SolutionService) List(userID uint) ([]model.Solution, error) {
	return s.SolutionRepo.FindByUser(userID)
}

func (s *SolutionService) ListByQuestion(userID, questionID uint) ([]model.Solution, error) {
	return s.SolutionRepo.FindByUserAndQuestion(userID, questionID)
}

func (s *SolutionService) Get(id, userID uint) (*model.Solution, error) {
	solution, err := s.SolutionRepo.FindOneForUser(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSolutionNotFound
	}
	return solution, err
}

// Create 新建解答，初始状态为 pending
func (s *SolutionService) Create(userID, questionID uint, data json.RawMessage, image string) (*model.Solution, error) {
	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	solution := &model.Solution{
		UserID:          userID,
		QuestionID:      questionID,
		ExcalidrawData:  data,
		ExcalidrawImage: image,
		Status:          model.StatusPending,
		SubmittedAt:     time.Now(),
	}
	solution.SnapshotURL = s.saveSnapshot(image)

	if err := s.SolutionRepo.Create(solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// Update 覆盖画布数据并把状态重置为 pending。
// 旧的评测结果保留在记录上（作废但不删除），再次评测时整体覆盖
func (s *SolutionService) Update(id, userID uint, data json.RawMessage, image string) (*model.Solution, error) {
	solution, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	solution.ExcalidrawData = data
	solution.ExcalidrawImage = image
	solution.Status = model.StatusPending
	if url := s.saveSnapshot(image); url != "" {
		solution.SnapshotURL = url
	}

	if err := s.SolutionRepo.Save(solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// Evaluate 同步执行评测：pending → evaluating → evaluated|error。
// 评测失败时解答以 error 状态落库，同时把失败的解答和错误一起返回
func (s *SolutionService) Evaluate(ctx context.Context, id, userID uint) (*model.Solution, error) {
	solution, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	// 题目可能在提交之后被管理员删除；没有题干和评分维度就没法评，
	// 不进入 evaluating，直接按失败落库
	if solution.Question == nil {
		return s.failEvaluation(solution, fmt.Errorf("question %d no longer exists", solution.QuestionID))
	}

	solution.Status = model.StatusEvaluating
	if err := s.SolutionRepo.UpdateFields(id, map[string]interface{}{"status": model.StatusEvaluating}); err != nil {
		return nil, err
	}

	evaluation, evalErr := s.Evaluator.Evaluate(ctx, solution.Question, solution.ExcalidrawData)
	if evalErr != nil {
		return s.failEvaluation(solution, evalErr)
	}

	solution.Status = model.StatusEvaluated
	solution.Evaluation = evaluation
	if err := s.SolutionRepo.Save(solution); err != nil {
		return nil, err
	}
	monitoring.EvaluationCounter.WithLabelValues("evaluated").Inc()
	return solution, nil
}

// failEvaluation 把评测失败落库为终态 error，合成的反馈文本随解答返回
func (s *SolutionService) failEvaluation(solution *model.Solution, evalErr error) (*model.Solution, error) {
	solution.Status = model.StatusError
	solution.Evaluation = &model.Evaluation{
		Feedback:    "Evaluation failed: " + evalErr.Error(),
		EvaluatedAt: time.Now(),
	}
	if err := s.SolutionRepo.Save(solution); err != nil {
		logger.Log.Error("persist failed evaluation", zap.Error(err), zap.Uint("solution_id", solution.ID))
	}
	monitoring.EvaluationCounter.WithLabelValues("error").Inc()
	return solution, evalErr
}

func (s *SolutionService) Delete(id, userID uint) error {
	affected, err := s.SolutionRepo.DeleteForUser(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrSolutionNotFound
	}
	return nil
}

// saveSnapshot 尽力而为：快照存储失败只记日志，不影响保存主流程
func (s *SolutionService) saveSnapshot(image string) string {
	if image == "" || s.Storage == nil {
		return ""
	}
	url, err := s.Storage.SaveSnapshot(context.Background(), image)
	if err != nil {
		logger.Log.Warn("snapshot upload failed", zap.Error(err))
		return ""
	}
	return url
}
