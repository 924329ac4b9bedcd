package models

import (
	"time"
)

// Difficulty is the ordered tier of a quiz level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Question is a single multiple-choice item. CorrectAnswer must equal
// exactly one of the four options.
type Question struct {
	ID            int      `bson:"id" json:"id"`
	Text          string   `bson:"text" json:"text"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer string   `bson:"correctAnswer" json:"correctAnswer"`
}

// Level belongs to exactly one Language. Questions is the static pool
// used as the generation fallback; it is provisioned with at least
// QuizLength entries.
type Level struct {
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	QuizLength int        `json:"quizLength"`
	Questions  []Question `json:"questions"`
}

// Language is a static catalog entry.
type Language struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Flag        string  `json:"flag"`
	Description string  `json:"description"`
	Levels      []Level `json:"levels"`
}

// QuizResult is an immutable record of one completed quiz.
type QuizResult struct {
	LanguageName   string     `bson:"languageName" json:"languageName"`
	LevelName      string     `bson:"levelName" json:"levelName"`
	Difficulty     Difficulty `bson:"difficulty" json:"difficulty"`
	Score          int        `bson:"score" json:"score"`
	TotalQuestions int        `bson:"totalQuestions" json:"totalQuestions"`
	Date           time.Time  `bson:"date" json:"date"`
}

// Percentage returns the score as a whole-number percentage of the
// total question count, or 0 for an empty quiz.
func (r QuizResult) Percentage() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions) * 100
}

// SavedQuizState is the serializable snapshot of an in-progress quiz,
// one per user, overwritten after every answer and advance.
type SavedQuizState struct {
	LanguageCode         string     `bson:"languageCode" json:"languageCode"`
	LevelName            string     `bson:"levelName" json:"levelName"`
	Questions            []Question `bson:"questions" json:"questions"`
	CurrentQuestionIndex int        `bson:"currentQuestionIndex" json:"currentQuestionIndex"`
	Score                int        `bson:"score" json:"score"`
	UserAnswers          []*string  `bson:"userAnswers" json:"userAnswers"`
}

// LeaderboardEntry is a single row of the leaderboard response.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Score         int    `json:"score"`
	IsCurrentUser bool   `json:"isCurrentUser,omitempty"`
}
