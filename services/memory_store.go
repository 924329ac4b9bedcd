package services

import (
	"context"
	"sync"

	"quizmaster/models"
)

// MemoryStore is an in-memory implementation of all three store
// interfaces. It backs tests and lets a session keep running when the
// database is unreachable.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]models.User
	history  map[string][]models.QuizResult
	saved    map[string]models.SavedQuizState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]models.User),
		history:  make(map[string][]models.QuizResult),
		saved:    make(map[string]models.SavedQuizState),
	}
}

func (m *MemoryStore) GetProfile(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.profiles[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := user
	copied.UnlockedAchievements = append([]string(nil), user.UnlockedAchievements...)
	return &copied, nil
}

func (m *MemoryStore) SaveProfile(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	copied.UnlockedAchievements = append([]string(nil), user.UnlockedAchievements...)
	m.profiles[user.Email] = copied
	return nil
}

func (m *MemoryStore) AppendResult(ctx context.Context, email string, result models.QuizResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history[email] = append(m.history[email], result)
	return nil
}

func (m *MemoryStore) ListResults(ctx context.Context, email string) ([]models.QuizResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.QuizResult(nil), m.history[email]...), nil
}

func (m *MemoryStore) SaveQuiz(ctx context.Context, email string, state models.SavedQuizState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[email] = state
	return nil
}

func (m *MemoryStore) LoadQuiz(ctx context.Context, email string) (*models.SavedQuizState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.saved[email]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (m *MemoryStore) ClearQuiz(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saved, email)
	return nil
}
