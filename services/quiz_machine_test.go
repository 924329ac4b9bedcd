package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"quizmaster/models"
)

type stubProvider struct {
	payload string
	err     error
	calls   int
}

func (p *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.payload, nil
}

// stubQuizJSON builds a provider payload of n questions whose correct
// answer is always "right".
func stubQuizJSON(n int) string {
	questions := make([]generatedQuestion, n)
	for i := range questions {
		questions[i] = generatedQuestion{
			Text:          fmt.Sprintf("Question %d", i+1),
			Options:       []string{"right", "wrong-a", "wrong-b", "wrong-c"},
			CorrectAnswer: "right",
		}
	}
	payload, _ := json.Marshal(questions)
	return string(payload)
}

func seedProfile(t *testing.T, store *MemoryStore, email string) {
	t.Helper()
	err := store.SaveProfile(context.Background(), &models.User{
		Name:                 "Test User",
		Email:                email,
		UnlockedAchievements: []string{},
	})
	if err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
}

func newTestMachine(t *testing.T, email string, provider QuestionProvider) (*QuizMachine, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	seedProfile(t, store, email)
	machine := NewQuizMachine(email, MachineDeps{
		Questions: NewQuestionService(provider),
		Profiles:  store,
		History:   store,
		Saved:     store,
	})
	return machine, store
}

func startQuiz(t *testing.T, m *QuizMachine, code, levelName string) {
	t.Helper()
	ctx := context.Background()
	if err := m.SelectLanguage(code); err != nil {
		t.Fatalf("failed to select language %s: %v", code, err)
	}
	if err := m.StartSetup(); err != nil {
		t.Fatalf("failed to start setup: %v", err)
	}
	if err := m.SetupComplete(ctx, levelName); err != nil {
		t.Fatalf("failed to complete setup: %v", err)
	}
	if got := m.State().Status; got != StatusInProgress {
		t.Fatalf("expected status in_progress after setup, got %s", got)
	}
}

func playQuiz(t *testing.T, m *QuizMachine, answers []string) {
	t.Helper()
	ctx := context.Background()
	for _, answer := range answers {
		if err := m.AnswerQuestion(ctx, answer); err != nil {
			t.Fatalf("failed to answer: %v", err)
		}
		if err := m.NextQuestion(ctx); err != nil {
			t.Fatalf("failed to advance: %v", err)
		}
	}
}

func allCorrect(n int) []string {
	answers := make([]string, n)
	for i := range answers {
		answers[i] = "right"
	}
	return answers
}

func TestPerfectBeginnerRun(t *testing.T) {
	m, store := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")
	playQuiz(t, m, allCorrect(5))

	state := m.State()
	if state.Status != StatusFinished {
		t.Errorf("expected finished, got %s", state.Status)
	}
	if state.Score != 5 {
		t.Errorf("expected score 5, got %d", state.Score)
	}

	user, err := store.GetProfile(ctx, "alex@example.com")
	if err != nil {
		t.Fatalf("failed to fetch profile: %v", err)
	}
	if !user.HasAchievement("PERFECT_BEGINNER") {
		t.Error("expected PERFECT_BEGINNER to be unlocked")
	}
	if !user.HasAchievement("FIRST_QUIZ") {
		t.Error("expected FIRST_QUIZ to be unlocked")
	}
	unlockCount := 0
	for _, id := range user.UnlockedAchievements {
		if id == "PERFECT_BEGINNER" {
			unlockCount++
		}
	}
	if unlockCount != 1 {
		t.Errorf("expected PERFECT_BEGINNER exactly once, got %d", unlockCount)
	}

	history, _ := store.ListResults(ctx, "alex@example.com")
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	if history[0].Percentage() != 100 {
		t.Errorf("expected 100%%, got %v", history[0].Percentage())
	}

	if saved, _ := store.LoadQuiz(ctx, "alex@example.com"); saved != nil {
		t.Error("expected snapshot to be cleared after finishing")
	}
}

func TestTimeoutAnswerResetsStreak(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")

	// The timer submits an empty answer, which matches no option.
	if err := m.AnswerQuestion(ctx, ""); err != nil {
		t.Fatalf("failed to submit timeout answer: %v", err)
	}

	state := m.State()
	if state.Score != 0 {
		t.Errorf("expected score unchanged, got %d", state.Score)
	}
	if state.Streak != 0 {
		t.Errorf("expected streak 0, got %d", state.Streak)
	}

	if err := m.NextQuestion(ctx); err != nil {
		t.Fatalf("failed to advance: %v", err)
	}
	if got := m.State().CurrentQuestionIndex; got != 1 {
		t.Errorf("expected to be on question 1, got %d", got)
	}
}

func TestAnswerIsWriteOnce(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")

	if err := m.AnswerQuestion(ctx, "right"); err != nil {
		t.Fatalf("first answer failed: %v", err)
	}
	// A redundant call for the same slot is a no-op, not an error.
	if err := m.AnswerQuestion(ctx, "right"); err != nil {
		t.Fatalf("second answer errored: %v", err)
	}

	state := m.State()
	if state.Score != 1 {
		t.Errorf("expected score counted once, got %d", state.Score)
	}
	if state.Streak != 1 {
		t.Errorf("expected streak counted once, got %d", state.Streak)
	}
}

func TestScoreAndStreakInvariants(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")

	answers := []string{"right", "right", "wrong-a", "right", "right"}
	wantScore := []int{1, 2, 2, 3, 4}
	wantStreak := []int{1, 2, 0, 1, 2}

	for i, answer := range answers {
		if err := m.AnswerQuestion(ctx, answer); err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
		state := m.State()
		if state.Score != wantScore[i] {
			t.Errorf("after answer %d: score = %d, want %d", i, state.Score, wantScore[i])
		}
		if state.Streak != wantStreak[i] {
			t.Errorf("after answer %d: streak = %d, want %d", i, state.Streak, wantStreak[i])
		}
		if state.LongestStreak < state.Streak {
			t.Errorf("after answer %d: longest streak %d below current %d", i, state.LongestStreak, state.Streak)
		}
		if err := m.NextQuestion(ctx); err != nil {
			t.Fatalf("advance %d failed: %v", i, err)
		}
	}

	if got := m.State().LongestStreak; got != 2 {
		t.Errorf("expected longest streak 2, got %d", got)
	}
}

func TestStreakFiveUnlocksOnce(t *testing.T) {
	m, store := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")
	playQuiz(t, m, allCorrect(5))

	toastCount := 0
	for _, toast := range m.Engine().PendingToasts() {
		if toast.ID == "STREAK_5" {
			toastCount++
		}
	}
	if toastCount != 1 {
		t.Errorf("expected STREAK_5 toast exactly once, got %d", toastCount)
	}

	user, _ := store.GetProfile(ctx, "alex@example.com")
	if !user.HasAchievement("STREAK_5") {
		t.Error("expected STREAK_5 to be unlocked")
	}
}

func TestResumeRoundTrip(t *testing.T) {
	email := "alex@example.com"
	m, store := newTestMachine(t, email, &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")
	playQuiz(t, m, []string{"right", "wrong-a"})
	before := m.State()

	// A new machine over the same stores stands in for a reload.
	resumed := NewQuizMachine(email, MachineDeps{
		Questions: NewQuestionService(nil),
		Profiles:  store,
		History:   store,
		Saved:     store,
	})
	if err := resumed.ResumeQuiz(ctx); err != nil {
		t.Fatalf("failed to resume: %v", err)
	}

	after := resumed.State()
	if after.Status != StatusInProgress {
		t.Fatalf("expected in_progress after resume, got %s", after.Status)
	}
	if after.CurrentQuestionIndex != before.CurrentQuestionIndex {
		t.Errorf("index = %d, want %d", after.CurrentQuestionIndex, before.CurrentQuestionIndex)
	}
	if after.Score != before.Score {
		t.Errorf("score = %d, want %d", after.Score, before.Score)
	}
	if len(after.Questions) != len(before.Questions) {
		t.Fatalf("question count = %d, want %d", len(after.Questions), len(before.Questions))
	}
	for i := range before.Questions {
		if after.Questions[i].Text != before.Questions[i].Text {
			t.Errorf("question %d differs after resume", i)
		}
	}
	for i := range before.UserAnswers {
		got, want := after.UserAnswers[i], before.UserAnswers[i]
		if (got == nil) != (want == nil) {
			t.Errorf("answer slot %d presence differs after resume", i)
		} else if got != nil && *got != *want {
			t.Errorf("answer slot %d = %q, want %q", i, *got, *want)
		}
	}
}

func TestLateTimerExpiryCannotAnswerNextQuestion(t *testing.T) {
	email := "alex@example.com"
	store := NewMemoryStore()
	seedProfile(t, store, email)
	m := NewQuizMachine(email, MachineDeps{
		Questions:    NewQuestionService(&stubProvider{payload: stubQuizJSON(5)}),
		Profiles:     store,
		History:      store,
		Saved:        store,
		QuestionTime: 50 * time.Millisecond,
	})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")

	// Hold the machine lock through the countdown's deadline, so the
	// expiry callback fires and queues up behind it, then answer and
	// advance before letting it in.
	m.mu.Lock()
	time.Sleep(120 * time.Millisecond)
	answer := "right"
	m.state = reduceQuiz(m.state, answerQuestionAction{answer: answer, isCorrect: true})
	m.timer.Stop()
	m.state = reduceQuiz(m.state, nextQuestionAction{})
	m.mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	state := m.State()
	if state.CurrentQuestionIndex != 1 {
		t.Fatalf("expected to be on question 1, got %d", state.CurrentQuestionIndex)
	}
	if state.UserAnswers[1] != nil {
		t.Errorf("late expiry answered question 1 with %q", *state.UserAnswers[1])
	}
	if state.Streak != 1 {
		t.Errorf("late expiry reset the streak, got %d", state.Streak)
	}

	if err := m.AnswerQuestion(ctx, "right"); err != nil {
		t.Fatalf("failed to answer question 1: %v", err)
	}
	if got := m.State().Score; got != 2 {
		t.Errorf("expected score 2, got %d", got)
	}
}

func TestForceTimeoutValidatesEpochAndIndex(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")
	epoch := m.epoch

	// A countdown armed for the current question forces an empty
	// answer that scores as incorrect.
	m.forceTimeout(ctx, epoch, 0)
	state := m.State()
	if state.UserAnswers[0] == nil || *state.UserAnswers[0] != "" {
		t.Fatal("expected question 0 to be force-answered empty")
	}
	if state.Score != 0 || state.Streak != 0 {
		t.Errorf("forced answer scored: score=%d streak=%d", state.Score, state.Streak)
	}

	if err := m.NextQuestion(ctx); err != nil {
		t.Fatalf("failed to advance: %v", err)
	}

	// The same countdown replayed against a later question is ignored.
	m.forceTimeout(ctx, epoch, 0)
	if got := m.State().UserAnswers[1]; got != nil {
		t.Errorf("stale countdown answered question 1 with %q", *got)
	}

	// A countdown from a previous run is ignored even at a matching
	// index.
	m.RestartQuiz(ctx)
	startQuiz(t, m, "EN", "A1 - Beginner")
	m.forceTimeout(ctx, epoch, 1)
	if got := m.State().UserAnswers[1]; got != nil {
		t.Errorf("previous run's countdown answered question 1 with %q", *got)
	}
}

func TestResumeDiscardsMalformedSnapshot(t *testing.T) {
	email := "alex@example.com"
	ctx := context.Background()

	snapshots := map[string]models.SavedQuizState{
		"no questions": {
			LanguageCode: "EN",
			LevelName:    "A1 - Beginner",
		},
		"answer slice length mismatch": {
			LanguageCode: "EN",
			LevelName:    "A1 - Beginner",
			Questions:    []models.Question{{ID: 1, Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"}},
			UserAnswers:  make([]*string, 3),
		},
		"index out of range": {
			LanguageCode:         "EN",
			LevelName:            "A1 - Beginner",
			Questions:            []models.Question{{ID: 1, Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"}},
			UserAnswers:          make([]*string, 1),
			CurrentQuestionIndex: 5,
		},
	}

	for name, snapshot := range snapshots {
		t.Run(name, func(t *testing.T) {
			m, store := newTestMachine(t, email, nil)
			if err := store.SaveQuiz(ctx, email, snapshot); err != nil {
				t.Fatalf("failed to plant snapshot: %v", err)
			}

			if err := m.ResumeQuiz(ctx); !errors.Is(err, ErrNoSavedQuiz) {
				t.Fatalf("expected ErrNoSavedQuiz, got %v", err)
			}
			if got := m.State().Status; got != StatusIdle {
				t.Errorf("expected status idle after refused resume, got %s", got)
			}
			if saved, _ := store.LoadQuiz(ctx, email); saved != nil {
				t.Error("expected malformed snapshot to be discarded")
			}
		})
	}
}

func TestResumeDiscardsStaleSnapshot(t *testing.T) {
	email := "alex@example.com"
	m, store := newTestMachine(t, email, nil)
	ctx := context.Background()

	// Snapshot referencing a language that is no longer in the catalog.
	err := store.SaveQuiz(ctx, email, models.SavedQuizState{
		LanguageCode: "XX",
		LevelName:    "A1 - Beginner",
	})
	if err != nil {
		t.Fatalf("failed to plant snapshot: %v", err)
	}

	if err := m.ResumeQuiz(ctx); !errors.Is(err, ErrNoSavedQuiz) {
		t.Fatalf("expected ErrNoSavedQuiz, got %v", err)
	}
	if got := m.State().Status; got != StatusIdle {
		t.Errorf("expected status idle after refused resume, got %s", got)
	}
	if saved, _ := store.LoadQuiz(ctx, email); saved != nil {
		t.Error("expected stale snapshot to be discarded")
	}
}

func TestPolyglotUnlocksOnThirdLanguage(t *testing.T) {
	email := "alex@example.com"
	m, store := newTestMachine(t, email, &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	runs := []struct {
		code  string
		level string
	}{
		{"EN", "A1 - Beginner"},
		{"ES", "A1 - Beginner"},
		{"FR", "A1 - Beginner"},
	}

	for i, run := range runs {
		startQuiz(t, m, run.code, run.level)
		playQuiz(t, m, allCorrect(5))

		user, _ := store.GetProfile(ctx, email)
		unlocked := user.HasAchievement("POLYGLOT_3")
		if i < 2 && unlocked {
			t.Errorf("POLYGLOT_3 unlocked after %d languages", i+1)
		}
		if i == 2 && !unlocked {
			t.Error("expected POLYGLOT_3 after the third distinct language")
		}
		m.RestartQuiz(ctx)
	}
}

func TestDedicationUnlocksAtTenQuizzes(t *testing.T) {
	email := "alex@example.com"
	m, store := newTestMachine(t, email, &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		startQuiz(t, m, "EN", "A1 - Beginner")
		playQuiz(t, m, allCorrect(5))

		user, _ := store.GetProfile(ctx, email)
		unlocked := user.HasAchievement("DEDICATION")
		if i < 9 && unlocked {
			t.Fatalf("DEDICATION unlocked after only %d quizzes", i+1)
		}
		if i == 9 && !unlocked {
			t.Error("expected DEDICATION after the tenth quiz")
		}
		m.RestartQuiz(ctx)
	}
}

func TestInvalidTransitions(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	if err := m.AnswerQuestion(ctx, "right"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition answering while idle, got %v", err)
	}
	if err := m.NextQuestion(ctx); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition advancing while idle, got %v", err)
	}
	if err := m.StartSetup(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition starting setup while idle, got %v", err)
	}

	startQuiz(t, m, "EN", "A1 - Beginner")

	// Advancing with the current slot unanswered is refused.
	if err := m.NextQuestion(ctx); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition advancing unanswered, got %v", err)
	}
}

func TestUnknownLevelIsSilentlyRefused(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	if err := m.SelectLanguage("EN"); err != nil {
		t.Fatalf("failed to select language: %v", err)
	}
	if err := m.StartSetup(); err != nil {
		t.Fatalf("failed to start setup: %v", err)
	}
	if err := m.SetupComplete(ctx, "Z9 - Nope"); err != nil {
		t.Fatalf("expected silent refusal, got %v", err)
	}
	if got := m.State().Status; got != StatusSelectingLevel {
		t.Errorf("expected status selecting_level, got %s", got)
	}
}

func TestUnknownLanguage(t *testing.T) {
	m, _ := newTestMachine(t, "alex@example.com", nil)
	if err := m.SelectLanguage("XX"); !errors.Is(err, ErrLanguageNotFound) {
		t.Errorf("expected ErrLanguageNotFound, got %v", err)
	}
}

func TestRestartPreservesHistory(t *testing.T) {
	m, store := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")
	playQuiz(t, m, allCorrect(5))
	m.RestartQuiz(ctx)

	state := m.State()
	if state.Status != StatusIdle {
		t.Errorf("expected idle after restart, got %s", state.Status)
	}
	if state.SelectedLanguage != nil || len(state.Questions) != 0 || state.Score != 0 {
		t.Error("expected session state to be cleared by restart")
	}

	history, _ := store.ListResults(ctx, "alex@example.com")
	if len(history) != 1 {
		t.Errorf("expected history to survive restart, got %d entries", len(history))
	}
	if len(m.History()) != 1 {
		t.Errorf("expected machine history to survive restart, got %d entries", len(m.History()))
	}
}

func TestSnapshotWrittenWhileInProgress(t *testing.T) {
	m, store := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	startQuiz(t, m, "EN", "A1 - Beginner")
	if err := m.AnswerQuestion(ctx, "right"); err != nil {
		t.Fatalf("failed to answer: %v", err)
	}

	saved, err := store.LoadQuiz(ctx, "alex@example.com")
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
	}
	if saved == nil {
		t.Fatal("expected a snapshot after answering")
	}
	if saved.Score != 1 || saved.CurrentQuestionIndex != 0 {
		t.Errorf("snapshot has score=%d index=%d, want score=1 index=0", saved.Score, saved.CurrentQuestionIndex)
	}
	if saved.LanguageCode != "EN" || saved.LevelName != "A1 - Beginner" {
		t.Errorf("snapshot identifies %s/%s", saved.LanguageCode, saved.LevelName)
	}
}

func TestStartingNewQuizClearsOldSnapshot(t *testing.T) {
	m, store := newTestMachine(t, "alex@example.com", &stubProvider{payload: stubQuizJSON(5)})
	ctx := context.Background()

	// Plant a leftover snapshot from an older run.
	if err := store.SaveQuiz(ctx, "alex@example.com", models.SavedQuizState{
		LanguageCode: "ES",
		LevelName:    "A1 - Beginner",
	}); err != nil {
		t.Fatalf("failed to plant snapshot: %v", err)
	}

	startQuiz(t, m, "EN", "A1 - Beginner")

	saved, _ := store.LoadQuiz(ctx, "alex@example.com")
	if saved != nil && saved.LanguageCode == "ES" {
		t.Error("expected the old snapshot to be invalidated by the new quiz")
	}
}
