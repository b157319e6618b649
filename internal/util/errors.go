package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSolutionNotFound   = errors.New("solution not found")
	ErrMissingAPIKey      = errors.New("AI API key not configured")
)
