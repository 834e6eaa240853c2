package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/DuongAty/workout-planner/internal/config"
	"github.com/DuongAty/workout-planner/internal/models"
	"github.com/DuongAty/workout-planner/internal/pkg/log"
)

const mealSystemPrompt = `You are a nutrition analyzer. Given a free-text meal description,
reply with a single JSON object: {"calories": <kcal>, "protein_g": <g>, "carbs_g": <g>, "fat_g": <g>}.
Reply with JSON only, no prose.`

const workoutSystemPrompt = `You are a fitness coach. Given a user profile, reply with a single JSON
object describing one workout: {"title": string, "estimated_calories": <kcal>,
"exercises": [{"name": string, "muscle_group": string, "sets": int, "reps": int}]}.
Reply with JSON only, no prose.`

// openaiAssistant — реализация Assistant поверх OpenAI-совместимого chat-completion API.
type openaiAssistant struct {
	client *openai.Client
	model  string
}

// NewOpenAI создаёт клиент ассистента. Пустой APIKey означает,
// что ассистент не сконфигурирован: все вызовы вернут ErrUnavailable.
func NewOpenAI(cfg config.AssistantConfig) Assistant {
	if cfg.APIKey == "" {
		return disabled{}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openaiAssistant{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// AnalyzeMeal разбирает свободное описание приёма пищи в макронутриенты.
// Ошибки поставщика пробрасываются (обёрнутые в ErrUnavailable), а не
// заменяются нулевыми значениями.
func (a *openaiAssistant) AnalyzeMeal(ctx context.Context, text string) (*models.Macros, error) {
	const op = "assistant.openai.AnalyzeMeal"

	raw, err := a.complete(ctx, mealSystemPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	var out models.Macros
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.From(ctx).Warn("assistant_bad_meal_reply",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrBadReply)
	}

	return &out, nil
}

// GenerateWorkout генерирует план тренировки под профиль и цель.
func (a *openaiAssistant) GenerateWorkout(ctx context.Context, profile ProfileSummary) (*WorkoutPlan, error) {
	const op = "assistant.openai.GenerateWorkout"

	user := fmt.Sprintf("goal: %s; gender: %s; weight_kg: %.1f; height_cm: %.1f; age: %d",
		profile.Goal, profile.Gender, profile.WeightKg, profile.HeightCm, profile.Age)

	raw, err := a.complete(ctx, workoutSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}

	var out WorkoutPlan
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.From(ctx).Warn("assistant_bad_workout_reply",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrBadReply)
	}

	return &out, nil
}

// complete выполняет один chat-completion запрос с детерминированной температурой.
func (a *openaiAssistant) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// disabled — заглушка несконфигурированного ассистента.
type disabled struct{}

func (disabled) AnalyzeMeal(ctx context.Context, text string) (*models.Macros, error) {
	return nil, ErrUnavailable
}

func (disabled) GenerateWorkout(ctx context.Context, profile ProfileSummary) (*WorkoutPlan, error) {
	return nil, ErrUnavailable
}
