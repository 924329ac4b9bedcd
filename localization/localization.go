// Package localization resolves opaque message keys into user-facing
// text. The rest of the application never hardcodes display strings;
// it passes keys plus structured params.
package localization

import (
	"fmt"
	"strings"
)

var messages = map[string]map[string]string{
	"en": {
		"quiz.question_counter":  "Question {current} of {total}",
		"quiz.streak":            "{streak} in a row!",
		"quiz.time_up":           "Time's up!",
		"results.score":          "You scored {score} out of {total}",
		"results.percentage":     "{percentage}% correct",
		"leaderboard.points":     "{score} pts",
		"achievement.unlocked":   "Achievement unlocked: {name}",
		"history.empty":          "No quizzes completed yet",
		"profile.total_quizzes":  "{count} quizzes completed",
		"profile.longest_streak": "Longest streak: {streak}",
	},
	"es": {
		"quiz.question_counter":  "Pregunta {current} de {total}",
		"quiz.streak":            "¡{streak} seguidas!",
		"quiz.time_up":           "¡Se acabó el tiempo!",
		"results.score":          "Acertaste {score} de {total}",
		"results.percentage":     "{percentage}% correcto",
		"leaderboard.points":     "{score} pts",
		"achievement.unlocked":   "Logro desbloqueado: {name}",
		"history.empty":          "Aún no has completado ningún cuestionario",
		"profile.total_quizzes":  "{count} cuestionarios completados",
		"profile.longest_streak": "Racha más larga: {streak}",
	},
}

const defaultLanguage = "en"

// Translate resolves key for the given UI language, substituting
// {param} placeholders. Unknown languages fall back to English;
// unknown keys come back as the key itself so a missing translation
// never breaks a response.
func Translate(lang, key string, params map[string]interface{}) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[defaultLanguage]
	}
	msg, ok := table[key]
	if !ok {
		if msg, ok = messages[defaultLanguage][key]; !ok {
			return key
		}
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return msg
}

// SupportedLanguages lists the UI languages with a message table.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(messages))
	for lang := range messages {
		langs = append(langs, lang)
	}
	return langs
}
