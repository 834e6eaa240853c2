package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DuongAty/workout-planner/internal/config"
)

// fakeCompletionServer — минимальный OpenAI-совместимый сервер,
// отдающий заранее заданный content в единственном choice.
func fakeCompletionServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := map[string]any{
			"id":     "cmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestAssistant(t *testing.T, srv *httptest.Server) Assistant {
	t.Helper()
	return NewOpenAI(config.AssistantConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: srv.URL + "/v1",
	})
}

func TestAnalyzeMeal_OK(t *testing.T) {
	t.Parallel()

	srv := fakeCompletionServer(t, `{"calories": 650, "protein_g": 42, "carbs_g": 55.5, "fat_g": 20}`, http.StatusOK)
	defer srv.Close()

	a := newTestAssistant(t, srv)

	got, err := a.AnalyzeMeal(context.Background(), "grilled chicken with rice")
	require.NoError(t, err)
	require.Equal(t, 650.0, got.Calories)
	require.Equal(t, 42.0, got.ProteinG)
	require.Equal(t, 55.5, got.CarbsG)
	require.Equal(t, 20.0, got.FatG)
}

func TestAnalyzeMeal_BadReply(t *testing.T) {
	t.Parallel()

	srv := fakeCompletionServer(t, `I think it is about 650 kcal.`, http.StatusOK)
	defer srv.Close()

	a := newTestAssistant(t, srv)

	_, err := a.AnalyzeMeal(context.Background(), "grilled chicken with rice")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadReply)
}

func TestAnalyzeMeal_ProviderError(t *testing.T) {
	t.Parallel()

	srv := fakeCompletionServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	a := newTestAssistant(t, srv)

	_, err := a.AnalyzeMeal(context.Background(), "toast")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateWorkout_ParsesPlan(t *testing.T) {
	t.Parallel()

	content := `{
		"title": "Upper body strength",
		"estimated_calories": 420,
		"exercises": [
			{"name": "Bench press", "muscle_group": "chest", "sets": 4, "reps": 8},
			{"name": "Barbell row", "muscle_group": "back", "sets": 4, "reps": 8}
		]
	}`

	srv := fakeCompletionServer(t, content, http.StatusOK)
	defer srv.Close()

	a := newTestAssistant(t, srv)

	plan, err := a.GenerateWorkout(context.Background(), ProfileSummary{Goal: "gain_muscle", WeightKg: 80})
	require.NoError(t, err)
	require.Equal(t, "Upper body strength", plan.Title)
	require.Equal(t, 420.0, plan.EstimatedCalories)
	require.Len(t, plan.Exercises, 2)
	require.Equal(t, "Bench press", plan.Exercises[0].Name)
}

func TestGenerateWorkout_BadReply(t *testing.T) {
	t.Parallel()

	srv := fakeCompletionServer(t, `not a json`, http.StatusOK)
	defer srv.Close()

	a := newTestAssistant(t, srv)

	_, err := a.GenerateWorkout(context.Background(), ProfileSummary{Goal: "maintain"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBadReply)
}

func TestDisabledAssistant(t *testing.T) {
	t.Parallel()

	a := NewOpenAI(config.AssistantConfig{})

	_, err := a.AnalyzeMeal(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = a.GenerateWorkout(context.Background(), ProfileSummary{})
	require.ErrorIs(t, err, ErrUnavailable)
}
