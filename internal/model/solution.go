package model

import (
	"encoding/json"
	"time"
)

type SolutionStatus string

const (
	StatusPending    SolutionStatus = "pending"
	StatusEvaluating SolutionStatus = "evaluating"
	StatusEvaluated  SolutionStatus = "evaluated"
	StatusError      SolutionStatus = "error"
)

// CriterionScore 单个评分维度的得分与点评
type CriterionScore struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Evaluation AI评测结果。整体作为JSON列持久化，仅保留最近一次评测
type Evaluation struct {
	Score          float64          `json:"score"`
	Feedback       string           `json:"feedback"`
	Strengths      []string         `json:"strengths"`
	Improvements   []string         `json:"improvements"`
	CriteriaScores []CriterionScore `json:"criteriaScores"`
	EvaluatedAt    time.Time        `json:"evaluatedAt"`
}

// swagger:model Solution
type Solution struct {
	BaseModel
	UserID          uint            `gorm:"index;not null" json:"user"`
	QuestionID      uint            `gorm:"index;not null" json:"questionId"`
	Question        *Question       `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	ExcalidrawData  json.RawMessage `gorm:"type:json" json:"excalidrawData"`
	ExcalidrawImage string          `gorm:"type:longtext" json:"excalidrawImage"`
	SnapshotURL     string          `gorm:"size:512" json:"snapshotUrl,omitempty"`
	Status          SolutionStatus  `gorm:"size:20;default:'pending';index" json:"status"`
	Evaluation      *Evaluation     `gorm:"serializer:json;type:json" json:"evaluation,omitempty"`
	SubmittedAt     time.Time       `json:"submittedAt"`
}

func (Solution) TableName() string {
	return "solutions"
}
