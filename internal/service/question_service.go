package service

import (
	"errors"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/repository"
	"sysdesign_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// List 按条件筛选目录。参考答案在列表里一律隐去
func (s *QuestionService) List(filter repository.QuestionFilter) ([]model.Question, error) {
	questions, err := s.QuestionRepo.Search(filter)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].SampleSolution = ""
	}
	return questions, nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return question, err
}

func (s *QuestionService) Create(question *model.Question) error {
	return s.QuestionRepo.Create(question)
}

func (s *QuestionService) Update(id uint, updated *model.Question) (*model.Question, error) {
	question, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	question.Title = updated.Title
	question.Description = updated.Description
	question.Difficulty = updated.Difficulty
	question.Category = updated.Category
	question.Requirements = updated.Requirements
	question.Hints = updated.Hints
	question.EvaluationCriteria = updated.EvaluationCriteria
	question.SampleSolution = updated.SampleSolution

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id uint) error {
	affected, err := s.QuestionRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

// Seed 用内置的六道示例题目整体替换现有目录。破坏性操作，仅用于环境初始化
func (s *QuestionService) Seed(createdBy uint) ([]model.Question, error) {
	questions := sampleQuestions(createdBy)
	if err := s.QuestionRepo.ReplaceAll(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func sampleQuestions(createdBy uint) []model.Question {
	return []model.Question{
		{
			Title:       "Design a URL Shortener",
			Description: "Design a URL shortening service like bit.ly. The service should be able to create short URLs, redirect users to the original URL, and track click statistics.",
			Difficulty:  model.DifficultyMedium,
			Category:    "Scalability",
			Requirements: []string{
				"Generate unique short URLs",
				"Redirect users to original URLs efficiently",
				"Handle high read traffic (more reads than writes)",
				"Track click analytics",
				"URLs should expire after a configurable time",
			},
			Hints: []string{
				"Consider using base62 encoding for short URLs",
				"Think about caching strategies for hot URLs",
				"Consider database sharding for scalability",
			},
			EvaluationCriteria: []model.EvaluationCriterion{
				{Name: "Scalability", Description: "Can handle millions of URLs and requests", Weight: 25},
				{Name: "Data Model", Description: "Efficient database schema design", Weight: 20},
				{Name: "API Design", Description: "RESTful API with proper endpoints", Weight: 15},
				{Name: "Caching Strategy", Description: "Appropriate caching for performance", Weight: 20},
				{Name: "Reliability", Description: "Handles failures gracefully", Weight: 20},
			},
			CreatedByID: createdBy,
		},
		{
			Title:       "Design Twitter/X Feed",
			Description: "Design the home timeline feature of Twitter. Users should see tweets from people they follow in reverse chronological order with support for likes, retweets, and replies.",
			Difficulty:  model.DifficultyHard,
			Category:    "Real-time Systems",
			Requirements: []string{
				"Display tweets from followed users",
				"Support for likes, retweets, and replies",
				"Handle celebrity users with millions of followers",
				"Near real-time feed updates",
				"Support pagination",
			},
			Hints: []string{
				"Consider fan-out on write vs fan-out on read",
				"Think about hybrid approaches for celebrities",
				"Message queues for async processing",
			},
			EvaluationCriteria: []model.EvaluationCriterion{
				{Name: "Feed Generation", Description: "Efficient feed generation strategy", Weight: 30},
				{Name: "Scalability", Description: "Handles millions of users", Weight: 25},
				{Name: "Data Storage", Description: "Appropriate database choices", Weight: 20},
				{Name: "Caching", Description: "Smart caching for hot data", Weight: 15},
				{Name: "Real-time Updates", Description: "Near real-time feed updates", Weight: 10},
			},
			CreatedByID: createdBy,
		},
		{
			Title:       "Design a Rate Limiter",
			Description: "Design a rate limiting service that can be used to protect APIs from abuse. It should support different rate limiting strategies and be distributed.",
			Difficulty:  model.DifficultyMedium,
			Category:    "API Design",
			Requirements: []string{
				"Support multiple rate limiting algorithms (Token Bucket, Sliding Window, etc.)",
				"Work in a distributed environment",
				"Handle different rate limits per user/API",
				"Return appropriate headers and status codes",
				"Minimal latency impact",
			},
			Hints: []string{
				"Consider Redis for distributed state",
				"Think about race conditions in distributed systems",
				"HTTP 429 for rate limited requests",
			},
			EvaluationCriteria: []model.EvaluationCriterion{
				{Name: "Algorithm Choice", Description: "Appropriate rate limiting algorithm", Weight: 25},
				{Name: "Distributed Design", Description: "Works across multiple servers", Weight: 25},
				{Name: "Performance", Description: "Minimal latency overhead", Weight: 20},
				{Name: "Flexibility", Description: "Supports different configurations", Weight: 15},
				{Name: "Edge Cases", Description: "Handles edge cases properly", Weight: 15},
			},
			CreatedByID: createdBy,
		},
		{
			Title:       "Design a Chat Application",
			Description: "Design a real-time chat application like WhatsApp or Slack that supports one-on-one and group messaging.",
			Difficulty:  model.DifficultyHard,
			Category:    "Real-time Systems",
			Requirements: []string{
				"One-on-one messaging",
				"Group chats up to 1000 members",
				"Message delivery status (sent, delivered, read)",
				"Online/offline presence",
				"Message history and search",
			},
			Hints: []string{
				"Consider WebSocket for real-time communication",
				"Think about message ordering guarantees",
				"Consider how to handle offline users",
			},
			EvaluationCriteria: []model.EvaluationCriterion{
				{Name: "Real-time Messaging", Description: "Efficient real-time message delivery", Weight: 25},
				{Name: "Data Model", Description: "Efficient storage for messages", Weight: 20},
				{Name: "Presence System", Description: "Accurate online/offline tracking", Weight: 15},
				{Name: "Scalability", Description: "Handles millions of concurrent users", Weight: 25},
				{Name: "Reliability", Description: "Message delivery guarantees", Weight: 15},
			},
			CreatedByID: createdBy,
		},
		{
			Title:       "Design a CDN",
			Description: "Design a Content Delivery Network that can efficiently serve static content to users worldwide with low latency.",
			Difficulty:  model.DifficultyHard,
			Category:    "CDN",
			Requirements: []string{
				"Serve static content (images, videos, JS, CSS)",
				"Global distribution of content",
				"Cache invalidation strategy",
				"Handle cache misses efficiently",
				"SSL/TLS termination",
			},
			Hints: []string{
				"Consider DNS-based load balancing",
				"Think about cache hierarchy (L1, L2 caches)",
				"Consider consistent hashing for cache distribution",
			},
			EvaluationCriteria: []model.EvaluationCriterion{
				{Name: "Architecture", Description: "Well-designed CDN architecture", Weight: 25},
				{Name: "Caching Strategy", Description: "Efficient multi-tier caching", Weight: 25},
				{Name: "Global Distribution", Description: "Smart edge server placement", Weight: 20},
				{Name: "Performance", Description: "Low latency content delivery", Weight: 20},
				{Name: "Cache Invalidation", Description: "Proper cache invalidation strategy", Weight: 10},
			},
			CreatedByID: createdBy,
		},
		{
			Title:       "Design a Notification Service",
			Description: "Design a notification service that can send notifications via multiple channels (push, email, SMS) with high reliability and at scale.",
			Difficulty:  model.DifficultyMedium,
			Category:    "Message Queues",
			Requirements: []string{
				"Support multiple notification channels",
				"User notification preferences",
				"Rate limiting per user",
				"Retry mechanism for failed deliveries",
				"Template management",
			},
			Hints: []string{
				"Consider message queues for async processing",
				"Think about priority queues for urgent notifications",
				"Consider DLQ for failed messages",
			},
			EvaluationCriteria: []model.EvaluationCriterion{
				{Name: "Architecture", Description: "Clean service architecture", Weight: 20},
				{Name: "Message Queue Design", Description: "Proper use of queues", Weight: 25},
				{Name: "Reliability", Description: "High delivery success rate", Weight: 25},
				{Name: "Scalability", Description: "Handles millions of notifications", Weight: 20},
				{Name: "Extensibility", Description: "Easy to add new channels", Weight: 10},
			},
			CreatedByID: createdBy,
		},
	}
}
