package repository

import (
	"sysdesign_backend/internal/model"

	"gorm.io/gorm"
)

type SolutionRepository struct {
	DB *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) *SolutionRepository {
	return &SolutionRepository{DB: db}
}

// FindByUser 当前用户的全部提交，题目仅带列表页需要的字段
func (r *SolutionRepository) FindByUser(userID uint) ([]model.Solution, error) {
	var solutions []model.Solution
	err := r.DB.
		Where("user_id = ?", userID).
		Preload("Question", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "difficulty", "category")
		}).
		Order("submitted_at DESC").
		Find(&solutions).Error
	return solutions, err
}

func (r *SolutionRepository) FindByUserAndQuestion(userID, questionID uint) ([]model.Solution, error) {
	var solutions []model.Solution
	err := r.DB.
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Order("submitted_at DESC").
		Find(&solutions).Error
	return solutions, err
}

// FindOneForUser 所有权随查询强制：不属于该用户的id等同于不存在
func (r *SolutionRepository) FindOneForUser(id, userID uint) (*model.Solution, error) {
	var solution model.Solution
	err := r.DB.
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Question").
		First(&solution).Error
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

func (r *SolutionRepository) Create(solution *model.Solution) error {
	return r.DB.Create(solution).Error
}

func (r *SolutionRepository) Save(solution *model.Solution) error {
	// 预加载过的 Question 不随提交一起写回
	return r.DB.Omit("Question").Save(solution).Error
}

// UpdateFields 局部更新，避免覆盖未读取的列
func (r *SolutionRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.Solution{}).Where("id = ?", id).Updates(fields).Error
}

func (r *SolutionRepository) DeleteForUser(id, userID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Solution{})
	return res.RowsAffected, res.Error
}
