package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sysdesign_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const questionCacheTTL = 10 * time.Minute

type QuestionRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewQuestionRepository(db *gorm.DB, rdb *redis.Client) *QuestionRepository {
	return &QuestionRepository{DB: db, Redis: rdb}
}

// QuestionFilter 目录筛选条件。各维度之间为AND关系，
// search 在标题与描述上做不区分大小写的子串匹配（OR）
type QuestionFilter struct {
	Category   string
	Difficulty string
	Search     string
}

func (r *QuestionRepository) Search(filter QuestionFilter) ([]model.Question, error) {
	q := r.DB.Model(&model.Question{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	var questions []model.Question
	err := q.Order("created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	if cached := r.cacheGet(id); cached != nil {
		return cached, nil
	}

	var question model.Question
	if err := r.DB.First(&question, id).Error; err != nil {
		return nil, err
	}

	r.cacheSet(&question)
	return &question, nil
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) Update(question *model.Question) error {
	if err := r.DB.Save(question).Error; err != nil {
		return err
	}
	r.cacheInvalidate(question.ID)
	return nil
}

func (r *QuestionRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Question{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	r.cacheInvalidate(id)
	return res.RowsAffected, nil
}

// ReplaceAll 清空目录并插入新题目集，整体在一个事务内完成
func (r *QuestionRepository) ReplaceAll(questions []model.Question) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return err
	}

	if r.Redis != nil {
		r.Redis.Del(context.Background(), r.cacheKeys()...)
	}
	return nil
}

func (r *QuestionRepository) cacheKey(id uint) string {
	return fmt.Sprintf("question:%d", id)
}

func (r *QuestionRepository) cacheKeys() []string {
	if r.Redis == nil {
		return nil
	}
	keys, err := r.Redis.Keys(context.Background(), "question:*").Result()
	if err != nil {
		return nil
	}
	return keys
}

func (r *QuestionRepository) cacheGet(id uint) *model.Question {
	if r.Redis == nil {
		return nil
	}
	data, err := r.Redis.Get(context.Background(), r.cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var question model.Question
	if err := json.Unmarshal(data, &question); err != nil {
		return nil
	}
	return &question
}

func (r *QuestionRepository) cacheSet(question *model.Question) {
	if r.Redis == nil {
		return
	}
	data, err := json.Marshal(question)
	if err != nil {
		return
	}
	r.Redis.Set(context.Background(), r.cacheKey(question.ID), data, questionCacheTTL)
}

func (r *QuestionRepository) cacheInvalidate(id uint) {
	if r.Redis == nil {
		return
	}
	r.Redis.Del(context.Background(), r.cacheKey(id))
}
