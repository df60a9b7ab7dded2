// Package config resolves file locations for the stores, the question
// generators, and the Tone Perfect asset index. Every path is explicit
// configuration: the stores receive their locations at construction,
// which keeps tests isolated and allows several banks side by side.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Bank       BankConfig       `mapstructure:"bank"`
	History    HistoryConfig    `mapstructure:"history"`
	Assets     AssetsConfig     `mapstructure:"assets"`
	Generation GenerationConfig `mapstructure:"generation"`
}

type BankConfig struct {
	// File is the bank consumed by the scheduler.
	File string `mapstructure:"file" validate:"required"`
	// QbankDirectory receives the generated per-type bank files.
	QbankDirectory string `mapstructure:"qbank_directory" validate:"required"`
}

type HistoryConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type AssetsConfig struct {
	// Root anchors the relative audio/XML paths recorded in the index.
	Root           string `mapstructure:"root" validate:"required"`
	AudioDirectory string `mapstructure:"audio_directory" validate:"required"`
	XMLDirectory   string `mapstructure:"xml_directory" validate:"required"`
	IndexFile      string `mapstructure:"index_file" validate:"required"`
}

type GenerationConfig struct {
	CommonSyllablesFile string `mapstructure:"common_syllables_file" validate:"required"`
	TrickySetsFile      string `mapstructure:"tricky_sets_file" validate:"required"`
	ToneSyllablesFile   string `mapstructure:"tone_syllables_file" validate:"required"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashbrain")
	}

	v.SetDefault("bank.file", "question_bank.jsonl")
	v.SetDefault("bank.qbank_directory", "Qbank")
	v.SetDefault("history.file", "progress.jsonl")
	v.SetDefault("assets.root", ".")
	v.SetDefault("assets.audio_directory", "tone_perfect")
	v.SetDefault("assets.xml_directory", "tone_perfect-2")
	v.SetDefault("assets.index_file", "syllables.json")
	v.SetDefault("generation.common_syllables_file", "mostCommonSyllables.txt")
	v.SetDefault("generation.tricky_sets_file", "trickySyllables.json")
	v.SetDefault("generation.tone_syllables_file", "tones.txt")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(trans))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// AudioDir resolves the Tone Perfect audio directory against the assets root.
func (c *Config) AudioDir() string {
	return filepath.Join(c.Assets.Root, c.Assets.AudioDirectory)
}

// XMLDir resolves the Tone Perfect metadata directory against the assets root.
func (c *Config) XMLDir() string {
	return filepath.Join(c.Assets.Root, c.Assets.XMLDirectory)
}
