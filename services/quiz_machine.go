package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizmaster/catalog"
	"quizmaster/models"
)

var (
	// ErrInvalidTransition is returned when an operation is not valid
	// in the session's current status.
	ErrInvalidTransition = errors.New("invalid quiz transition")
	// ErrLanguageNotFound is returned when a language code does not
	// resolve in the catalog.
	ErrLanguageNotFound = errors.New("language not found")
	// ErrNoSavedQuiz is returned by ResumeQuiz when no usable snapshot
	// exists.
	ErrNoSavedQuiz = errors.New("no saved quiz")
)

// MachineDeps are the collaborators a QuizMachine is wired with.
type MachineDeps struct {
	Questions *QuestionService
	Profiles  ProfileStore
	History   HistoryStore
	Saved     SavedQuizStore
	Broadcast func(models.AchievementEvent)

	QuestionTime  time.Duration
	ToastDuration time.Duration
}

// QuizMachine owns one user's quiz session. Every operation locks the
// machine, so transitions are serialized: no two of them, including
// timer expiries, ever interleave. Store failures are non-fatal; the
// session keeps running in memory and the error is logged.
type QuizMachine struct {
	mu      sync.Mutex
	email   string
	state   QuizState
	history []models.QuizResult
	engine  *AchievementEngine
	timer   *SessionTimer
	deps    MachineDeps

	// genRequestID stamps the in-flight generation call; a response
	// carrying a stale stamp is discarded.
	genRequestID string

	// epoch identifies the current run. A timer callback armed in an
	// earlier run carries a stale epoch and is discarded.
	epoch int
}

func NewQuizMachine(email string, deps MachineDeps) *QuizMachine {
	m := &QuizMachine{
		email:  email,
		state:  initialQuizState(),
		engine: NewAchievementEngine(deps.ToastDuration, deps.Broadcast),
		timer:  NewSessionTimer(deps.QuestionTime),
		deps:   deps,
	}

	history, err := deps.History.ListResults(context.Background(), email)
	if err != nil {
		log.Printf("Failed to load quiz history for %s, starting empty: %v", email, err)
	} else {
		m.history = history
	}
	return m
}

// State returns a copy of the current session state.
func (m *QuizMachine) State() QuizState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// History returns the completed-quiz log as known to this machine.
func (m *QuizMachine) History() []models.QuizResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.QuizResult(nil), m.history...)
}

// Engine exposes the achievement engine, for toast queries and
// explicit dismissal.
func (m *QuizMachine) Engine() *AchievementEngine {
	return m.engine
}

// SelectLanguage sets the selected language and moves the session to
// language selection. No questions are generated yet.
func (m *QuizMachine) SelectLanguage(code string) error {
	lang, ok := catalog.FindLanguage(code)
	if !ok {
		return ErrLanguageNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = reduceQuiz(m.state, selectLanguageAction{language: lang})
	return nil
}

// StartSetup moves the session from language selection to level
// selection.
func (m *QuizMachine) StartSetup() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != StatusSelectingLanguage {
		return ErrInvalidTransition
	}
	m.state = reduceQuiz(m.state, startSetupAction{})
	return nil
}

// SetupComplete resolves the level, fetches the question list and
// starts the quiz. A level name that does not resolve under the
// selected language is refused without error. While the question
// fetch is in flight the session holds generating_questions and no
// answer/advance operation is valid; a fetch result arriving after
// the session has moved on is discarded.
func (m *QuizMachine) SetupComplete(ctx context.Context, levelName string) error {
	m.mu.Lock()
	if m.state.Status != StatusSelectingLevel || m.state.SelectedLanguage == nil {
		m.mu.Unlock()
		return ErrInvalidTransition
	}
	lang := *m.state.SelectedLanguage
	level, ok := catalog.FindLevel(lang, levelName)
	if !ok {
		m.mu.Unlock()
		return nil
	}

	// A fresh quiz invalidates any old resume point.
	if err := m.deps.Saved.ClearQuiz(ctx, m.email); err != nil {
		log.Printf("Failed to clear saved quiz for %s: %v", m.email, err)
	}

	m.state = reduceQuiz(m.state, setGeneratingAction{})
	requestID := uuid.NewString()
	m.genRequestID = requestID
	m.mu.Unlock()

	questions := m.deps.Questions.Fetch(ctx, lang, level)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.genRequestID != requestID || m.state.Status != StatusGeneratingQuestions {
		// The user navigated away while generation was in flight.
		return nil
	}
	m.epoch++
	m.state = reduceQuiz(m.state, startQuizAction{level: level, questions: questions})
	m.saveSnapshotLocked(ctx)
	m.startTimerLocked()
	return nil
}

// AnswerQuestion writes the answer into the current slot. Correctness
// is exact, case-sensitive string equality. The slot is write-once: a
// second call for the same question is a no-op, not an error. The
// session timer submits "" on expiry, which can never match a real
// option.
func (m *QuizMachine) AnswerQuestion(ctx context.Context, answer string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status != StatusInProgress {
		return ErrInvalidTransition
	}
	if m.state.currentAnswered() {
		return nil
	}

	question := m.state.Questions[m.state.CurrentQuestionIndex]
	isCorrect := answer == question.CorrectAnswer
	m.state = reduceQuiz(m.state, answerQuestionAction{answer: answer, isCorrect: isCorrect})
	m.timer.Stop()

	m.runMidQuizCheckpoint(ctx)
	m.saveSnapshotLocked(ctx)
	return nil
}

// NextQuestion advances to the next question, or past the final one:
// the result is appended to history, the end-of-quiz checkpoint runs,
// the snapshot is cleared and the session finishes.
func (m *QuizMachine) NextQuestion(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status != StatusInProgress {
		return ErrInvalidTransition
	}
	if !m.state.currentAnswered() {
		return ErrInvalidTransition
	}

	if m.state.CurrentQuestionIndex < len(m.state.Questions)-1 {
		m.state = reduceQuiz(m.state, nextQuestionAction{})
		m.saveSnapshotLocked(ctx)
		m.startTimerLocked()
		return nil
	}

	result := models.QuizResult{
		LanguageName:   m.state.SelectedLanguage.Name,
		LevelName:      m.state.SelectedLevel.Name,
		Difficulty:     m.state.SelectedLevel.Difficulty,
		Score:          m.state.Score,
		TotalQuestions: len(m.state.Questions),
		Date:           time.Now(),
	}
	m.history = append(m.history, result)
	if err := m.deps.History.AppendResult(ctx, m.email, result); err != nil {
		log.Printf("Failed to persist quiz result for %s: %v", m.email, err)
	}

	m.runQuizEndCheckpoint(ctx)

	if err := m.deps.Saved.ClearQuiz(ctx, m.email); err != nil {
		log.Printf("Failed to clear saved quiz for %s: %v", m.email, err)
	}
	m.timer.Stop()
	m.epoch++
	m.state = reduceQuiz(m.state, finishQuizAction{})
	return nil
}

// RestartQuiz abandons the current run and returns the session to
// idle. History is preserved; the saved snapshot is not.
func (m *QuizMachine) RestartQuiz(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timer.Stop()
	m.epoch++
	m.genRequestID = ""
	if err := m.deps.Saved.ClearQuiz(ctx, m.email); err != nil {
		log.Printf("Failed to clear saved quiz for %s: %v", m.email, err)
	}
	m.state = reduceQuiz(m.state, restartAction{})
}

// ResumeQuiz reconstitutes an in-progress session from the stored
// snapshot. A snapshot whose language or level no longer resolves in
// the catalog is discarded without a transition.
func (m *QuizMachine) ResumeQuiz(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status != StatusIdle {
		return ErrInvalidTransition
	}

	saved, err := m.deps.Saved.LoadQuiz(ctx, m.email)
	if err != nil {
		log.Printf("Failed to load saved quiz for %s: %v", m.email, err)
		return ErrNoSavedQuiz
	}
	if saved == nil {
		return ErrNoSavedQuiz
	}

	lang, ok := catalog.FindLanguage(saved.LanguageCode)
	var level models.Level
	if ok {
		level, ok = catalog.FindLevel(lang, saved.LevelName)
	}
	if !ok || !snapshotConsistent(*saved) {
		if err := m.deps.Saved.ClearQuiz(ctx, m.email); err != nil {
			log.Printf("Failed to discard stale saved quiz for %s: %v", m.email, err)
		}
		return ErrNoSavedQuiz
	}

	m.epoch++
	m.state = reduceQuiz(m.state, resumeQuizAction{language: lang, level: level, saved: *saved})
	m.startTimerLocked()
	return nil
}

// snapshotConsistent rejects stored state whose shape cannot be
// stepped: no questions, an answer slice of the wrong length, or an
// index outside the question range.
func snapshotConsistent(s models.SavedQuizState) bool {
	return len(s.Questions) > 0 &&
		len(s.UserAnswers) == len(s.Questions) &&
		s.CurrentQuestionIndex >= 0 &&
		s.CurrentQuestionIndex < len(s.Questions)
}

// HasSavedQuiz reports whether a usable snapshot exists.
func (m *QuizMachine) HasSavedQuiz(ctx context.Context) bool {
	saved, err := m.deps.Saved.LoadQuiz(ctx, m.email)
	return err == nil && saved != nil
}

// Teardown stops the timer; called when the session owner logs out.
func (m *QuizMachine) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timer.Stop()
	m.epoch++
	m.genRequestID = ""
}

// startTimerLocked arms the countdown for the current question. The
// expiry forces an empty answer, which scores as incorrect. The epoch
// and question index captured at arming are re-validated under the
// machine lock, so a countdown that fires while an answer or advance
// holds the lock can never land on a different question.
func (m *QuizMachine) startTimerLocked() {
	epoch := m.epoch
	index := m.state.CurrentQuestionIndex
	m.timer.Start(func() {
		m.forceTimeout(context.Background(), epoch, index)
	})
}

// forceTimeout applies the countdown's empty answer, but only if the
// session is still on the question the countdown was armed for.
func (m *QuizMachine) forceTimeout(ctx context.Context, epoch, index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.epoch != epoch || m.state.Status != StatusInProgress {
		return
	}
	if m.state.CurrentQuestionIndex != index || m.state.currentAnswered() {
		return
	}
	m.state = reduceQuiz(m.state, answerQuestionAction{answer: "", isCorrect: false})
	m.runMidQuizCheckpoint(ctx)
	m.saveSnapshotLocked(ctx)
}

// saveSnapshotLocked persists the resumable snapshot while the quiz is
// in progress. Persistence failures only cost resume-on-reload.
func (m *QuizMachine) saveSnapshotLocked(ctx context.Context) {
	if m.state.Status != StatusInProgress {
		return
	}
	snapshot := models.SavedQuizState{
		LanguageCode:         m.state.SelectedLanguage.Code,
		LevelName:            m.state.SelectedLevel.Name,
		Questions:            m.state.Questions,
		CurrentQuestionIndex: m.state.CurrentQuestionIndex,
		Score:                m.state.Score,
		UserAnswers:          m.state.UserAnswers,
	}
	if err := m.deps.Saved.SaveQuiz(ctx, m.email, snapshot); err != nil {
		log.Printf("Failed to save quiz snapshot for %s: %v", m.email, err)
	}
}

func (m *QuizMachine) runMidQuizCheckpoint(ctx context.Context) {
	user, err := m.deps.Profiles.GetProfile(ctx, m.email)
	if err != nil {
		log.Printf("Skipping mid-quiz achievement checkpoint for %s: %v", m.email, err)
		return
	}
	newly := m.engine.EvaluateMidQuiz(user, m.history, m.state)
	if len(newly) == 0 {
		return
	}
	if err := m.deps.Profiles.SaveProfile(ctx, user); err != nil {
		log.Printf("Failed to persist unlocked achievements for %s: %v", m.email, err)
	}
}

func (m *QuizMachine) runQuizEndCheckpoint(ctx context.Context) {
	user, err := m.deps.Profiles.GetProfile(ctx, m.email)
	if err != nil {
		log.Printf("Skipping end-of-quiz achievement checkpoint for %s: %v", m.email, err)
		return
	}
	newly, streakUpdated := m.engine.EvaluateQuizEnd(user, m.history, m.state)
	if len(newly) == 0 && !streakUpdated {
		return
	}
	if err := m.deps.Profiles.SaveProfile(ctx, user); err != nil {
		log.Printf("Failed to persist achievement progress for %s: %v", m.email, err)
	}
}
