package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// EvaluationCriterion 评分维度。权重为作者给定的百分比，不强制总和为100
type EvaluationCriterion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}

// swagger:model Question
type Question struct {
	BaseModel
	Title              string                `gorm:"size:255;not null" json:"title"`
	Description        string                `gorm:"type:text;not null" json:"description"`
	Difficulty         Difficulty            `gorm:"size:10;default:'Medium'" json:"difficulty"`
	Category           string                `gorm:"size:100;default:'Other'" json:"category"`
	Requirements       []string              `gorm:"serializer:json;type:json" json:"requirements"`
	Hints              []string              `gorm:"serializer:json;type:json" json:"hints"`
	EvaluationCriteria []EvaluationCriterion `gorm:"serializer:json;type:json" json:"evaluationCriteria"`
	SampleSolution     string                `gorm:"type:text" json:"sampleSolution,omitempty"`
	CreatedByID        uint                  `gorm:"index" json:"createdBy"`
}

// TableName 沿用旧库中的 problems 集合名
func (Question) TableName() string {
	return "problems"
}
