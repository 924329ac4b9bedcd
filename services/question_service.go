package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"quizmaster/models"
)

// QuestionProvider is the external generative backend. It receives a
// fully built prompt and returns raw model text.
type QuestionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiProvider generates quiz questions with the Gemini API.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: modelName}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.modelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates returned")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", errors.New("no text part returned")
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// generatedQuestion is the schema the model is asked to produce.
type generatedQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionService supplies the question list for a quiz run. The
// generative provider is optional; with no provider, or on any
// provider failure, the level's static pool serves the request.
type QuestionService struct {
	provider QuestionProvider
}

func NewQuestionService(provider QuestionProvider) *QuestionService {
	return &QuestionService{provider: provider}
}

// Fetch returns exactly level.QuizLength questions. Generation
// failures are logged and recovered via the static pool; the caller
// always receives a complete quiz.
func (s *QuestionService) Fetch(ctx context.Context, language models.Language, level models.Level) []models.Question {
	if s.provider != nil {
		questions, err := s.fetchGenerated(ctx, language, level)
		if err == nil {
			return questions
		}
		log.Printf("Question generation failed for %s/%s, falling back to static pool: %v",
			language.Name, level.Name, err)
	}
	return fallbackQuestions(level)
}

func (s *QuestionService) fetchGenerated(ctx context.Context, language models.Language, level models.Level) ([]models.Question, error) {
	prompt := fmt.Sprintf(
		`Generate %d unique, high-quality, and logical quiz questions for a %s language test at the "%s" (%s) level. The questions should be varied and test grammar, vocabulary, or comprehension. For each question, provide 4 distinct options. One of the options must be unambiguously the correct answer. Do not generate questions that require an image.
Required Output Format (JSON):
[
  {"text": "question text", "options": ["a", "b", "c", "d"], "correctAnswer": "a"},
  ...
]
The 'correctAnswer' value must exactly match one of the strings in the 'options' array. Return only the JSON array.`,
		level.QuizLength, language.Name, level.Name, level.Difficulty,
	)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(cleanModelOutput(raw)), &generated); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}
	if len(generated) < level.QuizLength {
		return nil, fmt.Errorf("provider returned %d questions, expected %d", len(generated), level.QuizLength)
	}

	questions := make([]models.Question, 0, level.QuizLength)
	for i, g := range generated[:level.QuizLength] {
		if g.Text == "" || len(g.Options) != 4 {
			return nil, fmt.Errorf("question %d violates the schema", i+1)
		}
		answer := g.CorrectAnswer
		if !contains(g.Options, answer) {
			answer = g.Options[0]
		}
		questions = append(questions, models.Question{
			ID:            i + 1,
			Text:          g.Text,
			Options:       g.Options,
			CorrectAnswer: answer,
		})
	}
	return questions, nil
}

// fallbackQuestions takes a random sample without replacement from the
// level's static pool. Pools are provisioned with at least QuizLength
// questions, so the fallback always satisfies the request.
func fallbackQuestions(level models.Level) []models.Question {
	shuffled := append([]models.Question(nil), level.Questions...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > level.QuizLength {
		shuffled = shuffled[:level.QuizLength]
	}
	return shuffled
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
