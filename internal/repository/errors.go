package repository

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrNoMoreQuestions   = errors.New("no more questions")
	ErrQuestionChanged   = errors.New("question changed since it was answered")
	ErrPersistence       = errors.New("persistence failure")
)
