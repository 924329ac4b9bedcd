package services

import (
	"sync"
	"time"

	"quizmaster/catalog"
	"quizmaster/models"
)

// AchievementEngine evaluates the unlock rules at the two session
// checkpoints and owns the FIFO queue of toasts awaiting display.
// Evaluation mutates the user's unlocked set; persisting the profile
// is the caller's responsibility, and only needed when something
// actually changed.
type AchievementEngine struct {
	mu            sync.Mutex
	queue         []models.Achievement
	toastDuration time.Duration
	broadcast     func(models.AchievementEvent)

	// expiry is the countdown for the queue head; expiryGen invalidates
	// a scheduled expiry whenever the head changes hands.
	expiry    *time.Timer
	expiryGen int
}

// NewAchievementEngine creates an engine. toastDuration is how long a
// toast stays at the head of the queue before it is dequeued; zero
// disables automatic dequeueing (the queue is then drained via
// DismissToast). broadcast may be nil.
func NewAchievementEngine(toastDuration time.Duration, broadcast func(models.AchievementEvent)) *AchievementEngine {
	return &AchievementEngine{
		toastDuration: toastDuration,
		broadcast:     broadcast,
	}
}

// EvaluateMidQuiz is checkpoint A, run after every answer. It returns
// the achievements newly unlocked by this evaluation.
func (e *AchievementEngine) EvaluateMidQuiz(user *models.User, history []models.QuizResult, state QuizState) []models.Achievement {
	var newly []models.Achievement

	if len(history) == 0 && state.CurrentQuestionIndex == 0 {
		e.unlock(user, "FIRST_QUIZ", &newly)
	}
	if state.Streak == 5 {
		e.unlock(user, "STREAK_5", &newly)
	}
	if state.Streak == 10 {
		e.unlock(user, "STREAK_10", &newly)
	}

	return newly
}

// EvaluateQuizEnd is checkpoint B, run once the quiz is completed.
// history must already include this run's result. The returned bool
// reports whether the longest-streak record on the profile changed.
func (e *AchievementEngine) EvaluateQuizEnd(user *models.User, history []models.QuizResult, state QuizState) ([]models.Achievement, bool) {
	var newly []models.Achievement

	if state.SelectedLevel != nil && len(state.Questions) > 0 {
		percentage := float64(state.Score) / float64(len(state.Questions)) * 100
		if percentage == 100 {
			switch state.SelectedLevel.Difficulty {
			case models.DifficultyBeginner:
				e.unlock(user, "PERFECT_BEGINNER", &newly)
			case models.DifficultyIntermediate:
				e.unlock(user, "PERFECT_INTERMEDIATE", &newly)
			case models.DifficultyAdvanced:
				e.unlock(user, "PERFECT_ADVANCED", &newly)
			}
		}
	}

	languages := make(map[string]struct{})
	for _, r := range history {
		languages[r.LanguageName] = struct{}{}
	}
	if len(languages) >= 3 {
		e.unlock(user, "POLYGLOT_3", &newly)
	}
	if len(history) >= 10 {
		e.unlock(user, "DEDICATION", &newly)
	}

	streakUpdated := false
	if state.LongestStreak > user.LongestStreakEver {
		user.LongestStreakEver = state.LongestStreak
		streakUpdated = true
	}

	return newly, streakUpdated
}

// unlock adds the achievement to the user's set and the toast queue.
// An id already on the profile never re-unlocks; an id already pending
// in the queue never enqueues a second toast.
func (e *AchievementEngine) unlock(user *models.User, id string, newly *[]models.Achievement) {
	if user.HasAchievement(id) {
		return
	}
	achievement, ok := catalog.FindAchievement(id)
	if !ok {
		return
	}

	user.UnlockedAchievements = append(user.UnlockedAchievements, id)
	*newly = append(*newly, achievement)
	e.enqueueToast(achievement)

	if e.broadcast != nil {
		event := models.AchievementEvent{
			Type:        "achievement_unlocked",
			Email:       user.Email,
			Achievement: id,
			Timestamp:   time.Now(),
		}
		// WriteJSON can block on a slow peer; deliver off the unlock path.
		go e.broadcast(event)
	}
}

func (e *AchievementEngine) enqueueToast(achievement models.Achievement) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, pending := range e.queue {
		if pending.ID == achievement.ID {
			return
		}
	}
	e.queue = append(e.queue, achievement)
	if len(e.queue) == 1 {
		e.rescheduleExpiryLocked()
	}
}

// rescheduleExpiryLocked invalidates any scheduled expiry and arms a
// fresh countdown for the current head.
func (e *AchievementEngine) rescheduleExpiryLocked() {
	e.expiryGen++
	if e.expiry != nil {
		e.expiry.Stop()
		e.expiry = nil
	}
	if e.toastDuration <= 0 || len(e.queue) == 0 {
		return
	}
	gen := e.expiryGen
	e.expiry = time.AfterFunc(e.toastDuration, func() { e.expireToast(gen) })
}

// expireToast pops the head once its display time is over, unless the
// head already changed hands in the meantime.
func (e *AchievementEngine) expireToast(gen int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.expiryGen || len(e.queue) == 0 {
		return
	}
	e.queue = e.queue[1:]
	e.rescheduleExpiryLocked()
}

// PendingToasts returns the toasts currently awaiting display, oldest
// first.
func (e *AchievementEngine) PendingToasts() []models.Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.Achievement(nil), e.queue...)
}

// DismissToast removes the head of the queue, for clients that dismiss
// toasts explicitly instead of waiting out the display timeout. The
// next toast gets a full display window of its own.
func (e *AchievementEngine) DismissToast() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return
	}
	e.queue = e.queue[1:]
	e.rescheduleExpiryLocked()
}
