package services

import (
	"quizmaster/models"
)

// QuizStatus is the lifecycle state of a quiz session.
type QuizStatus string

const (
	StatusIdle                QuizStatus = "idle"
	StatusSelectingLanguage   QuizStatus = "selecting_language"
	StatusSelectingLevel      QuizStatus = "selecting_level"
	StatusGeneratingQuestions QuizStatus = "generating_questions"
	StatusInProgress          QuizStatus = "in_progress"
	StatusFinished            QuizStatus = "finished"
)

// QuizState is the authoritative in-memory state of one user's quiz
// session. UserAnswers has one slot per question; nil means the slot
// is still unanswered.
type QuizState struct {
	Status               QuizStatus        `json:"status"`
	SelectedLanguage     *models.Language  `json:"selectedLanguage,omitempty"`
	SelectedLevel        *models.Level     `json:"selectedLevel,omitempty"`
	Questions            []models.Question `json:"questions"`
	CurrentQuestionIndex int               `json:"currentQuestionIndex"`
	UserAnswers          []*string         `json:"userAnswers"`
	Score                int               `json:"score"`
	Streak               int               `json:"streak"`
	LongestStreak        int               `json:"longestStreak"`
}

func initialQuizState() QuizState {
	return QuizState{Status: StatusIdle}
}

// Tagged action set for the reducer. Every state transition goes
// through one of these.
type quizAction interface {
	isQuizAction()
}

type selectLanguageAction struct{ language models.Language }
type startSetupAction struct{}
type setGeneratingAction struct{}
type startQuizAction struct {
	level     models.Level
	questions []models.Question
}
type answerQuestionAction struct {
	answer    string
	isCorrect bool
}
type nextQuestionAction struct{}
type finishQuizAction struct{}
type restartAction struct{}
type resumeQuizAction struct {
	language models.Language
	level    models.Level
	saved    models.SavedQuizState
}

func (selectLanguageAction) isQuizAction() {}
func (startSetupAction) isQuizAction()     {}
func (setGeneratingAction) isQuizAction()  {}
func (startQuizAction) isQuizAction()      {}
func (answerQuestionAction) isQuizAction() {}
func (nextQuestionAction) isQuizAction()   {}
func (finishQuizAction) isQuizAction()     {}
func (restartAction) isQuizAction()        {}
func (resumeQuizAction) isQuizAction()     {}

// reduceQuiz is the pure transition function. It never performs side
// effects; persistence, timers and achievement checkpoints are wired
// around it by the QuizMachine.
func reduceQuiz(state QuizState, action quizAction) QuizState {
	switch a := action.(type) {
	case selectLanguageAction:
		lang := a.language
		state.Status = StatusSelectingLanguage
		state.SelectedLanguage = &lang
		return state

	case startSetupAction:
		state.Status = StatusSelectingLevel
		return state

	case setGeneratingAction:
		state.Status = StatusGeneratingQuestions
		return state

	case startQuizAction:
		level := a.level
		state.Status = StatusInProgress
		state.SelectedLevel = &level
		state.Questions = a.questions
		state.CurrentQuestionIndex = 0
		state.UserAnswers = make([]*string, len(a.questions))
		state.Score = 0
		state.Streak = 0
		state.LongestStreak = 0
		return state

	case answerQuestionAction:
		answers := append([]*string(nil), state.UserAnswers...)
		answer := a.answer
		answers[state.CurrentQuestionIndex] = &answer
		state.UserAnswers = answers
		if a.isCorrect {
			state.Score++
			state.Streak++
		} else {
			state.Streak = 0
		}
		if state.Streak > state.LongestStreak {
			state.LongestStreak = state.Streak
		}
		return state

	case nextQuestionAction:
		state.CurrentQuestionIndex++
		return state

	case finishQuizAction:
		state.Status = StatusFinished
		return state

	case restartAction:
		return initialQuizState()

	case resumeQuizAction:
		lang := a.language
		level := a.level
		state.Status = StatusInProgress
		state.SelectedLanguage = &lang
		state.SelectedLevel = &level
		state.Questions = a.saved.Questions
		state.CurrentQuestionIndex = a.saved.CurrentQuestionIndex
		state.UserAnswers = a.saved.UserAnswers
		state.Score = a.saved.Score
		state.Streak = 0
		state.LongestStreak = 0
		return state
	}
	return state
}

// currentAnswered reports whether the current question's slot has been
// written.
func (s QuizState) currentAnswered() bool {
	if s.CurrentQuestionIndex >= len(s.UserAnswers) {
		return false
	}
	return s.UserAnswers[s.CurrentQuestionIndex] != nil
}
