package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/slate/internal/dialogue"
	"github.com/abhisek/slate/internal/mastery"
)

// Config is the resolved configuration for the policy core.
type Config struct {
	Dialogue   dialogue.Config
	Thresholds mastery.Thresholds
	DBPath     string
}

// fileConfig is the YAML config file shape. Every field is a pointer:
// absent keys keep the built-in defaults, mirroring the gate's partial
// config-update rule.
type fileConfig struct {
	Dialogue struct {
		Mode                         *string  `yaml:"mode"`
		MinSecondsBetweenQuestions   *int     `yaml:"min_seconds_between_questions"`
		MaxQuestionsPerMinute        *int     `yaml:"max_questions_per_minute"`
		SpeakingCooldownSeconds      *int     `yaml:"speaking_cooldown_seconds"`
		StrategicQuestionProbability *float64 `yaml:"strategic_question_probability"`
		AlwaysAskOnStrategicMoment   *bool    `yaml:"always_ask_on_strategic_moment"`
		CheckInOnInactivity          *bool    `yaml:"check_in_on_inactivity"`
	} `yaml:"dialogue"`
	Mastery struct {
		AdvanceThreshold           *float64 `yaml:"advance_threshold"`
		ConsecutiveSolvedToAdvance *int     `yaml:"consecutive_solved_to_advance"`
		MaxAttemptsWindow          *int     `yaml:"max_attempts_window"`
	} `yaml:"mastery"`
	DBPath *string `yaml:"db_path"`
}

// envConfig holds the environment variable overrides. Env wins over the
// config file, matching the rest of the pack's tooling.
type envConfig struct {
	DBPath                string  `env:"SLATE_DB"`
	Mode                  string  `env:"SLATE_DIALOGUE_MODE"`
	MaxQuestionsPerMinute int     `env:"SLATE_MAX_QUESTIONS_PER_MINUTE" envDefault:"-1"`
	StrategicProbability  float64 `env:"SLATE_STRATEGIC_PROBABILITY" envDefault:"-1"`
}

// DefaultPath returns the default config file location:
// $XDG_CONFIG_HOME/slate/config.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "slate", "config.yaml"), nil
}

// Load resolves the configuration: built-in defaults, then the YAML
// file at path (a missing file is fine), then environment variables.
// A .env file in the working directory is honored if present.
func Load(path string) (Config, error) {
	// Best effort; most setups use real environment variables.
	_ = godotenv.Load()

	cfg := Config{
		Dialogue:   dialogue.DefaultConfig(),
		Thresholds: mastery.DefaultThresholds(),
	}

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	d := fc.Dialogue
	if d.Mode != nil {
		cfg.Dialogue.Mode = dialogue.Mode(*d.Mode)
	}
	if d.MinSecondsBetweenQuestions != nil {
		cfg.Dialogue.MinTimeBetweenQuestions = time.Duration(*d.MinSecondsBetweenQuestions) * time.Second
	}
	if d.MaxQuestionsPerMinute != nil {
		cfg.Dialogue.MaxQuestionsPerMinute = *d.MaxQuestionsPerMinute
	}
	if d.SpeakingCooldownSeconds != nil {
		cfg.Dialogue.SpeakingCooldown = time.Duration(*d.SpeakingCooldownSeconds) * time.Second
	}
	if d.StrategicQuestionProbability != nil {
		cfg.Dialogue.StrategicQuestionProbability = *d.StrategicQuestionProbability
	}
	if d.AlwaysAskOnStrategicMoment != nil {
		cfg.Dialogue.AlwaysAskOnStrategicMoment = *d.AlwaysAskOnStrategicMoment
	}
	if d.CheckInOnInactivity != nil {
		cfg.Dialogue.CheckInOnInactivity = *d.CheckInOnInactivity
	}

	m := fc.Mastery
	if m.AdvanceThreshold != nil {
		cfg.Thresholds.AdvanceThreshold = *m.AdvanceThreshold
	}
	if m.ConsecutiveSolvedToAdvance != nil {
		cfg.Thresholds.ConsecutiveSolvedToAdvance = *m.ConsecutiveSolvedToAdvance
	}
	if m.MaxAttemptsWindow != nil {
		cfg.Thresholds.MaxAttemptsWindow = *m.MaxAttemptsWindow
	}

	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if ec.DBPath != "" {
		cfg.DBPath = ec.DBPath
	}
	if ec.Mode != "" {
		cfg.Dialogue.Mode = dialogue.Mode(ec.Mode)
	}
	if ec.MaxQuestionsPerMinute >= 0 {
		cfg.Dialogue.MaxQuestionsPerMinute = ec.MaxQuestionsPerMinute
	}
	if ec.StrategicProbability >= 0 {
		cfg.Dialogue.StrategicQuestionProbability = ec.StrategicProbability
	}
	return nil
}
