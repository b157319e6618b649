package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/repository"
	"sysdesign_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSolutionFixture(t *testing.T, graderURL string) (*SolutionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	solutions := repository.NewSolutionRepository(db)
	questions := repository.NewQuestionRepository(db, nil)
	evaluator := newTestEvaluator(graderURL)

	return NewSolutionService(solutions, questions, evaluator, nil), db
}

func seedQuestion(t *testing.T, db *gorm.DB) *model.Question {
	t.Helper()
	question := sampleQuestion()
	require.NoError(t, db.Create(question).Error)
	return question
}

func TestSolutionCreate(t *testing.T) {
	svc, db := newSolutionFixture(t, "http://localhost:0")
	question := seedQuestion(t, db)

	solution, err := svc.Create(1, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, solution.Status)
	assert.Nil(t, solution.Evaluation)
	assert.False(t, solution.SubmittedAt.IsZero())
	assert.NotZero(t, solution.ID)
}

func TestSolutionCreateUnknownQuestion(t *testing.T) {
	svc, _ := newSolutionFixture(t, "http://localhost:0")

	_, err := svc.Create(1, 9999, sampleDiagram(), "")
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestSolutionOwnership(t *testing.T) {
	svc, db := newSolutionFixture(t, "http://localhost:0")
	question := seedQuestion(t, db)

	solution, err := svc.Create(1, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	// 其他用户看不到也删不掉：一律按不存在处理
	_, err = svc.Get(solution.ID, 2)
	assert.ErrorIs(t, err, util.ErrSolutionNotFound)
	assert.ErrorIs(t, svc.Delete(solution.ID, 2), util.ErrSolutionNotFound)

	require.NoError(t, svc.Delete(solution.ID, 1))
	_, err = svc.Get(solution.ID, 1)
	assert.ErrorIs(t, err, util.ErrSolutionNotFound)
}

func TestSolutionListOrdering(t *testing.T) {
	svc, db := newSolutionFixture(t, "http://localhost:0")
	question := seedQuestion(t, db)

	first, err := svc.Create(1, question.ID, sampleDiagram(), "")
	require.NoError(t, err)
	first.SubmittedAt = time.Now().Add(-time.Hour)
	require.NoError(t, db.Omit("Question").Save(first).Error)

	second, err := svc.Create(1, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	listed, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// 最近提交在前
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)

	// 列表里的题目只带概要字段
	require.NotNil(t, listed[0].Question)
	assert.Equal(t, question.Title, listed[0].Question.Title)
	assert.Empty(t, listed[0].Question.Description)
}

func TestSolutionEvaluateSuccess(t *testing.T) {
	reply := `{"score": 90, "feedback": "great", "strengths": ["x"], "improvements": ["y"], "criteriaScores": [{"name": "Scalability", "score": 90, "feedback": "ok"}]}`
	srv, _ := newGraderStub(t, reply)

	svc, db := newSolutionFixture(t, srv.URL)
	question := seedQuestion(t, db)

	created, err := svc.Create(7, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	evaluated, err := svc.Evaluate(context.Background(), created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEvaluated, evaluated.Status)
	require.NotNil(t, evaluated.Evaluation)
	assert.Equal(t, 90.0, evaluated.Evaluation.Score)

	// 评测结果落库
	persisted, err := svc.Get(created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEvaluated, persisted.Status)
	require.NotNil(t, persisted.Evaluation)
	assert.Equal(t, "great", persisted.Evaluation.Feedback)
}

func TestSolutionEvaluateFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model overloaded"},
		})
	}))
	t.Cleanup(srv.Close)

	svc, db := newSolutionFixture(t, srv.URL)
	question := seedQuestion(t, db)

	created, err := svc.Create(7, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	failed, err := svc.Evaluate(context.Background(), created.ID, 7)
	require.Error(t, err)

	// 失败时解答连同错误一起返回，状态为 error
	require.NotNil(t, failed)
	assert.Equal(t, model.StatusError, failed.Status)
	require.NotNil(t, failed.Evaluation)
	assert.Contains(t, failed.Evaluation.Feedback, "Evaluation failed:")
	assert.Contains(t, failed.Evaluation.Feedback, "model overloaded")

	persisted, err := svc.Get(created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, model.StatusError, persisted.Status)
}

func TestSolutionEvaluateDeletedQuestion(t *testing.T) {
	svc, db := newSolutionFixture(t, "http://localhost:0")
	question := seedQuestion(t, db)

	created, err := svc.Create(7, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	// 题目在提交之后被删掉
	require.NoError(t, db.Delete(&model.Question{}, question.ID).Error)

	failed, err := svc.Evaluate(context.Background(), created.ID, 7)
	require.Error(t, err)

	// 不panic也不留在 evaluating：按评测失败处理
	require.NotNil(t, failed)
	assert.Equal(t, model.StatusError, failed.Status)
	require.NotNil(t, failed.Evaluation)
	assert.Contains(t, failed.Evaluation.Feedback, "Evaluation failed:")
	assert.Contains(t, failed.Evaluation.Feedback, "no longer exists")

	var persisted model.Solution
	require.NoError(t, db.First(&persisted, created.ID).Error)
	assert.Equal(t, model.StatusError, persisted.Status)
}

// failingProvider 上传永远失败的对象存储
type failingProvider struct{}

func (failingProvider) Upload(context.Context, string, io.Reader, int64, string) (string, error) {
	return "", errors.New("bucket offline")
}

func (failingProvider) Delete(context.Context, string) error { return nil }

func (failingProvider) GetURL(string) string { return "" }

func TestSolutionCreateSnapshotFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewSolutionService(
		repository.NewSolutionRepository(db),
		repository.NewQuestionRepository(db, nil),
		newTestEvaluator("http://localhost:0"),
		&StorageService{Provider: failingProvider{}},
	)
	question := seedQuestion(t, db)

	image := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	solution, err := svc.Create(1, question.ID, sampleDiagram(), image)

	// 快照是尽力而为：存储挂了保存照样成功，只是没有快照URL
	require.NoError(t, err)
	assert.Empty(t, solution.SnapshotURL)
	assert.Equal(t, model.StatusPending, solution.Status)
}

func TestSolutionEvaluateNotFound(t *testing.T) {
	svc, _ := newSolutionFixture(t, "http://localhost:0")

	_, err := svc.Evaluate(context.Background(), 42, 1)
	assert.ErrorIs(t, err, util.ErrSolutionNotFound)
}

func TestSolutionUpdateResetsStatus(t *testing.T) {
	reply := `{"score": 60, "feedback": "fine", "criteriaScores": []}`
	srv, _ := newGraderStub(t, reply)

	svc, db := newSolutionFixture(t, srv.URL)
	question := seedQuestion(t, db)

	created, err := svc.Create(7, question.ID, sampleDiagram(), "")
	require.NoError(t, err)
	_, err = svc.Evaluate(context.Background(), created.ID, 7)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, 7, json.RawMessage(`{"elements": []}`), "")
	require.NoError(t, err)

	// 改画布后回到 pending，旧评测保留在记录上等待覆盖
	assert.Equal(t, model.StatusPending, updated.Status)
	require.NotNil(t, updated.Evaluation)
	assert.Equal(t, 60.0, updated.Evaluation.Score)
	assert.JSONEq(t, `{"elements": []}`, string(updated.ExcalidrawData))
}

func TestSolutionUpdateForeignUser(t *testing.T) {
	svc, db := newSolutionFixture(t, "http://localhost:0")
	question := seedQuestion(t, db)

	created, err := svc.Create(1, question.ID, sampleDiagram(), "")
	require.NoError(t, err)

	_, err = svc.Update(created.ID, 2, sampleDiagram(), "")
	assert.ErrorIs(t, err, util.ErrSolutionNotFound)
}

func TestSolutionListByQuestion(t *testing.T) {
	svc, db := newSolutionFixture(t, "http://localhost:0")
	questionA := seedQuestion(t, db)
	questionB := seedQuestion(t, db)

	_, err := svc.Create(1, questionA.ID, sampleDiagram(), "")
	require.NoError(t, err)
	_, err = svc.Create(1, questionB.ID, sampleDiagram(), "")
	require.NoError(t, err)
	_, err = svc.Create(2, questionA.ID, sampleDiagram(), "")
	require.NoError(t, err)

	listed, err := svc.ListByQuestion(1, questionA.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, questionA.ID, listed[0].QuestionID)
}
