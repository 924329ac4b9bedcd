// Package catalog holds the immutable configuration tables: the
// language/level/question bank, the achievement definitions, the mock
// login accounts and the leaderboard seed. Nothing here is mutated at
// runtime.
package catalog

import (
	"quizmaster/models"
)

// Achievements is the full badge catalog. Unlock state is tracked on
// the user profile by id.
var Achievements = []models.Achievement{
	{ID: "FIRST_QUIZ", Name: "First Steps", Description: "Complete your first quiz.", Icon: "🎓"},
	{ID: "PERFECT_BEGINNER", Name: "Beginner's Perfection", Description: "Get 100% on a Beginner quiz.", Icon: "⭐"},
	{ID: "PERFECT_INTERMEDIATE", Name: "Intermediate Ace", Description: "Get 100% on an Intermediate quiz.", Icon: "🌟"},
	{ID: "PERFECT_ADVANCED", Name: "Advanced Scholar", Description: "Get 100% on an Advanced quiz.", Icon: "🏆"},
	{ID: "STREAK_5", Name: "On a Roll!", Description: "Achieve a 5-answer streak in a single quiz.", Icon: "🔥"},
	{ID: "STREAK_10", Name: "Unstoppable", Description: "Achieve a 10-answer streak in a single quiz.", Icon: "🚀"},
	{ID: "POLYGLOT_3", Name: "Globetrotter", Description: "Complete quizzes in 3 different languages.", Icon: "🌍"},
	{ID: "DEDICATION", Name: "Dedicated Learner", Description: "Complete 10 quizzes in total.", Icon: "📚"},
}

// FindAchievement looks up a badge definition by id.
func FindAchievement(id string) (models.Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}

// AvatarList are the selectable profile pictures.
var AvatarList = []string{
	"https://api.dicebear.com/8.x/bottts-neutral/svg?seed=Gizmo",
	"https://api.dicebear.com/8.x/bottts-neutral/svg?seed=Zorp",
	"https://api.dicebear.com/8.x/bottts-neutral/svg?seed=Orbit",
	"https://api.dicebear.com/8.x/bottts-neutral/svg?seed=Comet",
	"https://api.dicebear.com/8.x/bottts-neutral/svg?seed=Pulsar",
	"https://api.dicebear.com/8.x/bottts-neutral/svg?seed=Quasar",
}

// MockUsers back the simulated social login.
var MockUsers = []models.User{
	{Name: "Alex Chen", Email: "alex.chen@example.com", Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=Alex"},
	{Name: "Brenda Smith", Email: "brenda.smith@example.com", Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=Brenda"},
	{Name: "Carlos Garcia", Email: "carlos.garcia@example.com", Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=Carlos"},
	{Name: "Diana Ivanova", Email: "diana.ivanova@example.com", Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=Diana"},
	{Name: "CodeNinja", Email: "codeninja@example.dev", Picture: "https://api.dicebear.com/8.x/bottts/svg?seed=CodeNinja"},
	{Name: "Eve Jobs", Email: "eve.jobs@icloud.com", Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=Eve"},
}

// FindMockUser looks up a simulated login account by email.
func FindMockUser(email string) (models.User, bool) {
	for _, u := range MockUsers {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// LeaderboardSeed are the static competitors shown alongside the
// current user on the leaderboard.
var LeaderboardSeed = []models.LeaderboardEntry{
	{Name: "CosmicCoder", Score: 2500, Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=CosmicCoder"},
	{Name: "GalacticGamer", Score: 2310, Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=GalacticGamer"},
	{Name: "QuantumQuizzer", Score: 2150, Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=QuantumQuizzer"},
	{Name: "LogicLion", Score: 1980, Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=LogicLion"},
	{Name: "PuzzlePioneer", Score: 1800, Picture: "https://api.dicebear.com/8.x/adventurer/svg?seed=PuzzlePioneer"},
}

// FindLanguage resolves a language by its short code.
func FindLanguage(code string) (models.Language, bool) {
	for _, lang := range Languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return models.Language{}, false
}

// FindLevel resolves a level by name under the given language.
func FindLevel(lang models.Language, levelName string) (models.Level, bool) {
	for _, lvl := range lang.Levels {
		if lvl.Name == levelName {
			return lvl, true
		}
	}
	return models.Level{}, false
}
