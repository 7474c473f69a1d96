package services

import "errors"

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInternal           = errors.New("internal server error")
)
