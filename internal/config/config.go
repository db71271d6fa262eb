package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Olgakatash/polish-trainer-bot/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	BotToken string         `mapstructure:"bot_token" validate:"required"`
	Vocab    VocabConfig    `mapstructure:"vocab"`
	Quiz     QuizConfig     `mapstructure:"quiz" validate:"required"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

// VocabConfig points at optional extra vocabulary sources merged over the
// built-in word list at startup. Empty paths are skipped.
type VocabConfig struct {
	CSVPath    string `mapstructure:"csv_path"`
	XLSXPath   string `mapstructure:"xlsx_path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type QuizConfig struct {
	Length int `mapstructure:"length" validate:"min=1,max=50"`
}

type ReminderConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Hour    int  `mapstructure:"hour" validate:"min=0,max=23"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("vocab.csv_path", "VOCAB_CSV_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAB_CSV_PATH: %w", err)
	}
	if err := v.BindEnv("vocab.xlsx_path", "VOCAB_XLSX_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAB_XLSX_PATH: %w", err)
	}
	if err := v.BindEnv("vocab.sqlite_path", "VOCAB_SQLITE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind VOCAB_SQLITE_PATH: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
