package services

import (
	"quizmaster/models"
)

// DifficultyStat aggregates correct/total answers across one tier.
type DifficultyStat struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ProfileStats is the derived view of a user's quiz history shown on
// the profile screen.
type ProfileStats struct {
	TotalQuizzes      int                                  `json:"totalQuizzes"`
	AverageScore      int                                  `json:"averageScore"`
	HighestScore      int                                  `json:"highestScore"`
	FavoriteLanguage  string                               `json:"favoriteLanguage"`
	DistinctLanguages int                                  `json:"distinctLanguages"`
	DifficultyStats   map[models.Difficulty]DifficultyStat `json:"difficultyStats"`
}

// ComputeStats derives profile statistics from the full history.
// AverageScore and HighestScore are whole-number percentages.
func ComputeStats(history []models.QuizResult) ProfileStats {
	stats := ProfileStats{
		FavoriteLanguage: "N/A",
		DifficultyStats: map[models.Difficulty]DifficultyStat{
			models.DifficultyBeginner:     {},
			models.DifficultyIntermediate: {},
			models.DifficultyAdvanced:     {},
		},
	}
	if len(history) == 0 {
		return stats
	}

	stats.TotalQuizzes = len(history)

	totalPercentage := 0.0
	langCounts := make(map[string]int)
	for _, r := range history {
		pct := r.Percentage()
		totalPercentage += pct
		if int(pct) > stats.HighestScore {
			stats.HighestScore = int(pct)
		}
		langCounts[r.LanguageName]++

		ds := stats.DifficultyStats[r.Difficulty]
		ds.Correct += r.Score
		ds.Total += r.TotalQuestions
		stats.DifficultyStats[r.Difficulty] = ds
	}
	stats.AverageScore = int(totalPercentage / float64(len(history)))
	stats.DistinctLanguages = len(langCounts)

	best := 0
	for lang, count := range langCounts {
		if count > best || (count == best && lang < stats.FavoriteLanguage) {
			best = count
			stats.FavoriteLanguage = lang
		}
	}
	return stats
}

// LeaderboardScore is the user's aggregate score: ten points for every
// correct answer across the whole history.
func LeaderboardScore(history []models.QuizResult) int {
	total := 0
	for _, r := range history {
		total += r.Score
	}
	return total * 10
}
