package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/slate/internal/dialogue"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, dialogue.DefaultConfig(), cfg.Dialogue)
	assert.Equal(t, 0.75, cfg.Thresholds.AdvanceThreshold)
	assert.Equal(t, 10, cfg.Thresholds.MaxAttemptsWindow)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
dialogue:
  mode: hints_only
  max_questions_per_minute: 4
mastery:
  advance_threshold: 0.9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dialogue.ModeHintsOnly, cfg.Dialogue.Mode)
	assert.Equal(t, 4, cfg.Dialogue.MaxQuestionsPerMinute)
	assert.Equal(t, 0.9, cfg.Thresholds.AdvanceThreshold)

	// Absent keys keep the built-in defaults.
	def := dialogue.DefaultConfig()
	assert.Equal(t, def.MinTimeBetweenQuestions, cfg.Dialogue.MinTimeBetweenQuestions)
	assert.Equal(t, def.StrategicQuestionProbability, cfg.Dialogue.StrategicQuestionProbability)
	assert.Equal(t, 3, cfg.Thresholds.ConsecutiveSolvedToAdvance)
}

func TestLoad_DurationsInSeconds(t *testing.T) {
	path := writeConfig(t, `
dialogue:
  min_seconds_between_questions: 20
  speaking_cooldown_seconds: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, cfg.Dialogue.MinTimeBetweenQuestions)
	assert.Equal(t, 5*time.Second, cfg.Dialogue.SpeakingCooldown)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
dialogue:
  mode: conversational
db_path: /tmp/from-file.db
`)
	t.Setenv("SLATE_DIALOGUE_MODE", "silent")
	t.Setenv("SLATE_DB", "/tmp/from-env.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dialogue.ModeSilent, cfg.Dialogue.Mode)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
}

func TestLoad_EnvNumericOverrides(t *testing.T) {
	t.Setenv("SLATE_MAX_QUESTIONS_PER_MINUTE", "0")
	t.Setenv("SLATE_STRATEGIC_PROBABILITY", "0.8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Dialogue.MaxQuestionsPerMinute)
	assert.Equal(t, 0.8, cfg.Dialogue.StrategicQuestionProbability)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "dialogue: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
}
