package services

import (
	"context"
	"errors"

	"quizmaster/models"
)

// ErrNotFound is returned by stores when no record exists for the key.
var ErrNotFound = errors.New("not found")

// ProfileStore persists one User record per email.
type ProfileStore interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
	SaveProfile(ctx context.Context, user *models.User) error
}

// HistoryStore is the append-only log of completed quiz results per
// email. Results are returned in completion order.
type HistoryStore interface {
	AppendResult(ctx context.Context, email string, result models.QuizResult) error
	ListResults(ctx context.Context, email string) ([]models.QuizResult, error)
}

// SavedQuizStore holds at most one in-progress snapshot per email.
// Saves overwrite; loading with no snapshot returns (nil, nil).
type SavedQuizStore interface {
	SaveQuiz(ctx context.Context, email string, state models.SavedQuizState) error
	LoadQuiz(ctx context.Context, email string) (*models.SavedQuizState, error)
	ClearQuiz(ctx context.Context, email string) error
}
