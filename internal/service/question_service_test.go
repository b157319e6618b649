package service

import (
	"testing"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/repository"
	"sysdesign_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuestionFixture(t *testing.T) (*QuestionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuestionService(repository.NewQuestionRepository(db, nil)), db
}

func catalogFixture() []model.Question {
	return []model.Question{
		{
			Title:       "Design a URL Shortener",
			Description: "Shorten links and track clicks.",
			Difficulty:  model.DifficultyMedium,
			Category:    "Scalability",
		},
		{
			Title:       "Design a Distributed Cache",
			Description: "An in-memory cache cluster with consistent hashing.",
			Difficulty:  model.DifficultyMedium,
			Category:    "Storage",
		},
		{
			Title:       "Design a Chat Application",
			Description: "Real-time messaging with delivery guarantees.",
			Difficulty:  model.DifficultyHard,
			Category:    "Real-time Systems",
		},
	}
}

func TestQuestionListFilters(t *testing.T) {
	svc, db := newQuestionFixture(t)
	catalog := catalogFixture()
	require.NoError(t, db.Create(&catalog).Error)

	// 各维度之间为 AND
	listed, err := svc.List(repository.QuestionFilter{Difficulty: "Medium", Search: "cache"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Design a Distributed Cache", listed[0].Title)

	// search 不区分大小写，标题和描述都算
	listed, err = svc.List(repository.QuestionFilter{Search: "CACHE"})
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	listed, err = svc.List(repository.QuestionFilter{Category: "Real-time Systems"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, model.DifficultyHard, listed[0].Difficulty)

	// 无匹配返回空列表而不是错误
	listed, err = svc.List(repository.QuestionFilter{Category: "Scalability", Difficulty: "Hard"})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestQuestionListHidesSampleSolution(t *testing.T) {
	svc, db := newQuestionFixture(t)
	question := &model.Question{
		Title:          "Design a CDN",
		Description:    "Content delivery at the edge.",
		Difficulty:     model.DifficultyHard,
		Category:       "Networking",
		SampleSolution: "Use anycast plus regional caches.",
	}
	require.NoError(t, db.Create(question).Error)

	listed, err := svc.List(repository.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Empty(t, listed[0].SampleSolution)

	// 详情页保留参考答案
	got, err := svc.Get(question.ID)
	require.NoError(t, err)
	assert.Equal(t, "Use anycast plus regional caches.", got.SampleSolution)
}

func TestQuestionGetNotFound(t *testing.T) {
	svc, _ := newQuestionFixture(t)
	_, err := svc.Get(404)
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestQuestionUpdate(t *testing.T) {
	svc, db := newQuestionFixture(t)
	question := &model.Question{Title: "Old", Description: "old", Difficulty: model.DifficultyEasy, Category: "Other"}
	require.NoError(t, db.Create(question).Error)

	updated, err := svc.Update(question.ID, &model.Question{
		Title:       "New",
		Description: "new",
		Difficulty:  model.DifficultyHard,
		Category:    "Storage",
		Hints:       []string{"think in shards"},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, model.DifficultyHard, updated.Difficulty)
	assert.Equal(t, []string{"think in shards"}, updated.Hints)

	_, err = svc.Update(999, &model.Question{})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestQuestionDelete(t *testing.T) {
	svc, db := newQuestionFixture(t)
	question := &model.Question{Title: "Disposable", Description: "x", Difficulty: model.DifficultyEasy, Category: "Other"}
	require.NoError(t, db.Create(question).Error)

	require.NoError(t, svc.Delete(question.ID))
	assert.ErrorIs(t, svc.Delete(question.ID), util.ErrQuestionNotFound)
}

func TestQuestionSeedReplacesCatalog(t *testing.T) {
	svc, db := newQuestionFixture(t)

	stray := &model.Question{Title: "Leftover", Description: "x", Difficulty: model.DifficultyEasy, Category: "Other"}
	require.NoError(t, db.Create(stray).Error)

	seeded, err := svc.Seed(3)
	require.NoError(t, err)
	assert.Len(t, seeded, 6)

	// 再次seed不累积，目录始终是六道内置题
	_, err = svc.Seed(3)
	require.NoError(t, err)

	listed, err := svc.List(repository.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 6)

	listed, err = svc.List(repository.QuestionFilter{Search: "Leftover"})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSeedCatalogShape(t *testing.T) {
	questions := sampleQuestions(1)
	require.Len(t, questions, 6)

	titles := make([]string, 0, len(questions))
	for _, q := range questions {
		titles = append(titles, q.Title)

		assert.NotEmpty(t, q.Description, q.Title)
		assert.NotEmpty(t, q.Requirements, q.Title)
		assert.NotEmpty(t, q.Hints, q.Title)
		assert.Equal(t, uint(1), q.CreatedByID)

		// 每道题的评分权重合计100
		total := 0
		for _, c := range q.EvaluationCriteria {
			total += c.Weight
		}
		assert.Equal(t, 100, total, q.Title)
	}

	assert.Contains(t, titles, "Design a URL Shortener")
	assert.Contains(t, titles, "Design Twitter/X Feed")
	assert.Contains(t, titles, "Design a Rate Limiter")
}
